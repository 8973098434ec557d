package database

import (
	"context"

	"yatube/internal/config"
	"yatube/internal/core/follower"
)

type FollowerRepositoryDatabase struct{}

func NewFollowerRepositoryDatabase() *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{}
}

func (repo *FollowerRepositoryDatabase) Follow(ctx context.Context, f *follower.Follower) (*follower.Follower, error) {
	if err := config.DB.WithContext(ctx).Create(f).Error; err != nil {
		return nil, translate(err)
	}
	return f, nil
}

func (repo *FollowerRepositoryDatabase) Unfollow(ctx context.Context, userID, authorID string) error {
	return config.DB.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follower.Follower{}).Error
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	var count int64
	err := config.DB.WithContext(ctx).Model(&follower.Follower{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowerRepositoryDatabase) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&follower.Follower{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
