package follower

import (
	"context"

	"yatube/internal/core/follower"
)

type FollowerRepository interface {
	Follow(ctx context.Context, f *follower.Follower) (*follower.Follower, error)
	// Unfollow is idempotent: deleting an absent pair is not an error.
	Unfollow(ctx context.Context, userID, authorID string) error
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type FollowerDTO struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	AuthorID string `json:"authorId"`
}
