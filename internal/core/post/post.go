package post

import (
	"time"

	"github.com/gofrs/uuid"
	"yatube/internal/core/group"
	"yatube/internal/core/user"
)

// Post must always have an author; CreatedAt is set once and never updated
// (there is no autoUpdateTime column on purpose).
type Post struct {
	ID        uuid.UUID   `gorm:"primary_key;type:char(36)"`
	Text      string      `gorm:"type:text;not null"`
	AuthorID  uuid.UUID   `gorm:"type:char(36);not null;index"`
	Author    user.User   `gorm:"foreignKey:AuthorID"`
	GroupID   *uuid.UUID  `gorm:"type:char(36);index"`
	Group     *group.Group `gorm:"foreignKey:GroupID"`
	Image     string      // path inside the media store, empty when absent
	CreatedAt time.Time   `gorm:"autoCreateTime;index"`
}
