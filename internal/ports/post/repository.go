package post

import (
	"time"

	"yatube/internal/core/post"
	groupPort "yatube/internal/ports/group"
	userPort "yatube/internal/ports/user"
)

type PostRepository interface {
	Create(post *post.Post) (*post.Post, error)
	// Update rewrites text and group only; author, image and creation time
	// are immutable after the row exists.
	Update(id string, text string, groupID *string) (*post.Post, error)
	// Delete removes the post together with its comments in one transaction.
	Delete(id string) error
	FindByID(id string) (*post.Post, error)
	Count() (int64, error)
}

type PostDTO struct {
	ID        string             `json:"id"`
	Text      string             `json:"text"`
	AuthorID  string             `json:"author_id"`
	Author    *userPort.UserDTO  `json:"author,omitempty"`
	Group     *groupPort.GroupDTO `json:"group,omitempty"`
	Image     string             `json:"image,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// ToDTO flattens a preloaded Post row for controllers and templates.
func ToDTO(p *post.Post) *PostDTO {
	dto := &PostDTO{
		ID:        p.ID.String(),
		Text:      p.Text,
		AuthorID:  p.AuthorID.String(),
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
	if p.Author.Username != "" {
		dto.Author = &userPort.UserDTO{
			ID:        p.Author.ID.String(),
			Username:  p.Author.Username,
			FirstName: p.Author.FirstName,
			LastName:  p.Author.LastName,
		}
	}
	if p.Group != nil {
		dto.Group = &groupPort.GroupDTO{
			ID:          p.Group.ID.String(),
			Title:       p.Group.Title,
			Slug:        p.Group.Slug,
			Description: p.Group.Description,
		}
	}
	return dto
}
