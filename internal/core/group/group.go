package group

import (
	"time"

	"github.com/gofrs/uuid"
)

// Group is a community posts may be filed under. Groups are created by an
// administrator; posts reference them but never own them.
type Group struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"not null"`
	Slug        string    `gorm:"unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
