package database

import (
	"yatube/internal/config"
	"yatube/internal/core/group"
)

type GroupRepositoryDatabase struct{}

func NewGroupRepositoryDatabase() *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{}
}

func (repo *GroupRepositoryDatabase) Create(g *group.Group) (*group.Group, error) {
	if err := config.DB.Create(g).Error; err != nil {
		return nil, translate(err)
	}
	return g, nil
}

func (repo *GroupRepositoryDatabase) FindBySlug(slug string) (*group.Group, error) {
	var g group.Group
	if err := config.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) FindAll() ([]*group.Group, error) {
	var groups []*group.Group
	if err := config.DB.Order("title").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
