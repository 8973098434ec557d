package comment

import (
	"time"

	"github.com/gofrs/uuid"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Text      string    `gorm:"type:text;not null"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Post      post.Post `gorm:"foreignKey:PostID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
