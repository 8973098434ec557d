package user

import "yatube/internal/core/user"

type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByID(id string) (*user.User, error)
	FindByUsername(username string) (*user.User, error)
	FindByUsernameOrEmail(username, email string) (*user.User, error)
	Count() (int64, error)
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
