package followerapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"yatube/internal/core/errs"
	followerEntity "yatube/internal/core/follower"
	followerPort "yatube/internal/ports/follower"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
}

func NewFollowerService(repo followerPort.FollowerRepository) *FollowerService {
	return &FollowerService{FollowerRepository: repo}
}

// Follow creates the (user, author) pair. Following yourself or following the
// same author twice is a conflict; a concurrent duplicate is caught by the
// unique index and reported the same way.
func (s *FollowerService) Follow(ctx context.Context, userID, authorID string) error {
	if userID == authorID {
		return fmt.Errorf("%w: cannot follow yourself", errs.ErrConflict)
	}

	already, err := s.FollowerRepository.IsFollowing(ctx, userID, authorID)
	if err != nil {
		return err
	}
	if already {
		return fmt.Errorf("%w: already following", errs.ErrConflict)
	}

	f := &followerEntity.Follower{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   uuid.FromStringOrNil(userID),
		AuthorID: uuid.FromStringOrNil(authorID),
	}

	_, err = s.FollowerRepository.Follow(ctx, f)
	return err
}

// Unfollow removes the pair if present; absence is not an error.
func (s *FollowerService) Unfollow(ctx context.Context, userID, authorID string) error {
	return s.FollowerRepository.Unfollow(ctx, userID, authorID)
}

func (s *FollowerService) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	return s.FollowerRepository.IsFollowing(ctx, userID, authorID)
}
