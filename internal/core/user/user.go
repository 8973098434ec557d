package user

import (
	"time"

	"github.com/gofrs/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Username  string    `gorm:"unique;not null"`
	Email     string    `gorm:"unique;not null"`
	FirstName string
	LastName  string
	Password  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
