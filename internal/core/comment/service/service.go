package commentapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	commentEntity "yatube/internal/core/comment"
	"yatube/internal/core/errs"
	commentPort "yatube/internal/ports/comment"
	postPort "yatube/internal/ports/post"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
	}
}

// CreateComment attaches a comment to an existing post.
func (s *CommentService) CreateComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", errs.ErrValidation)
	}

	if _, err := s.PostRepository.FindByID(postID); err != nil {
		return nil, err
	}

	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid authorID: %w", err)
	}

	c := &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     text,
		AuthorID: aid,
		PostID:   uuid.FromStringOrNil(postID),
	}

	created, err := s.CommentRepository.Create(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return toDTO(created), nil
}

// CommentsForPost returns a post's comments oldest first.
func (s *CommentService) CommentsForPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error) {
	comments, err := s.CommentRepository.FindByPostID(postID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	return dtos, nil
}

func toDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	return &commentPort.CommentDTO{
		ID:             c.ID.String(),
		Text:           c.Text,
		AuthorID:       c.AuthorID.String(),
		AuthorUsername: c.Author.Username,
		PostID:         c.PostID.String(),
		CreatedAt:      c.CreatedAt,
	}
}
