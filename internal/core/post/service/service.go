package postapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	postEntity "yatube/internal/core/post"
	"yatube/internal/core/errs"
	postPort "yatube/internal/ports/post"
)

type PostService struct {
	PostRepository postPort.PostRepository
}

func NewPostService(postRepo postPort.PostRepository) *PostService {
	return &PostService{PostRepository: postRepo}
}

// CreatePost stores a new post. The author is taken from the session by the
// caller and is not re-validated here. groupID and imagePath may be empty.
func (s *PostService) CreatePost(ctx context.Context, authorID, text, groupID, imagePath string) (*postPort.PostDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", errs.ErrValidation)
	}

	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid authorID: %w", err)
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     text,
		AuthorID: aid,
		Image:    imagePath,
	}
	if groupID != "" {
		gid, err := uuid.FromString(groupID)
		if err != nil {
			return nil, fmt.Errorf("invalid groupID: %w", err)
		}
		p.GroupID = &gid
	}

	created, err := s.PostRepository.Create(p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return postPort.ToDTO(created), nil
}

// UpdatePost rewrites text and group. The access check happened before this
// call; author, image and creation time stay as they were.
func (s *PostService) UpdatePost(ctx context.Context, postID, text, groupID string) (*postPort.PostDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", errs.ErrValidation)
	}

	var gid *string
	if groupID != "" {
		if _, err := uuid.FromString(groupID); err != nil {
			return nil, fmt.Errorf("invalid groupID: %w", err)
		}
		gid = &groupID
	}

	updated, err := s.PostRepository.Update(postID, text, gid)
	if err != nil {
		return nil, err
	}
	return postPort.ToDTO(updated), nil
}

func (s *PostService) GetPost(ctx context.Context, postID string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(postID)
	if err != nil {
		return nil, err
	}
	return postPort.ToDTO(p), nil
}

// DeletePost removes the post and, through the repository transaction, its
// comments.
func (s *PostService) DeletePost(ctx context.Context, postID string) error {
	return s.PostRepository.Delete(postID)
}
