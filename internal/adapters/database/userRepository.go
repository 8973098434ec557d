package database

import (
	"yatube/internal/config"
	"yatube/internal/core/user"
)

type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) Create(u *user.User) (*user.User, error) {
	if err := config.DB.Create(u).Error; err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(id string) (*user.User, error) {
	var u user.User
	if err := config.DB.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(username string) (*user.User, error) {
	var u user.User
	if err := config.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsernameOrEmail(username, email string) (*user.User, error) {
	var u user.User
	if err := config.DB.Where("username = ? OR email = ?", username, email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) Count() (int64, error) {
	var count int64
	if err := config.DB.Model(&user.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
