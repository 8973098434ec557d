package group

import "yatube/internal/core/group"

type GroupRepository interface {
	Create(group *group.Group) (*group.Group, error)
	FindBySlug(slug string) (*group.Group, error)
	FindAll() ([]*group.Group, error)
}

type GroupDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
