package comment

import (
	"time"

	"yatube/internal/core/comment"
)

type CommentRepository interface {
	Create(comment *comment.Comment) (*comment.Comment, error)
	FindByPostID(postID string) ([]*comment.Comment, error)
	CountByPostID(postID string) (int64, error)
}

type CommentDTO struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	PostID         string    `json:"post_id"`
	CreatedAt      time.Time `json:"created_at"`
}
