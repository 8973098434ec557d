package follower

import (
	"time"

	"github.com/gofrs/uuid"
	"yatube/internal/core/user"
)

// Follower links a reader (UserID) to an author they follow. The unique index
// on the pair turns a concurrent double-follow into a constraint violation
// instead of a duplicate row.
type Follower struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_author"`
	User      user.User `gorm:"foreignKey:UserID"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_author"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
