package database

import (
	"context"

	"gorm.io/gorm"
	"yatube/internal/config"
	"yatube/internal/core/follower"
	"yatube/internal/core/post"
	feedPort "yatube/internal/ports/feed"
)

// FeedRepositoryDatabase answers the paginated feed queries with plain
// count + offset/limit reads over the posts table.
type FeedRepositoryDatabase struct{}

func NewFeedRepositoryDatabase() *FeedRepositoryDatabase {
	return &FeedRepositoryDatabase{}
}

func (repo *FeedRepositoryDatabase) Count(ctx context.Context, f feedPort.Filter) (int64, error) {
	var count int64
	if err := repo.scope(ctx, f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *FeedRepositoryDatabase) FindPage(ctx context.Context, f feedPort.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.scope(ctx, f).
		Preload("Author").
		Preload("Group").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *FeedRepositoryDatabase) scope(ctx context.Context, f feedPort.Filter) *gorm.DB {
	tx := config.DB.WithContext(ctx).Model(&post.Post{})
	if f.GroupID != "" {
		tx = tx.Where("group_id = ?", f.GroupID)
	}
	if f.AuthorID != "" {
		tx = tx.Where("author_id = ?", f.AuthorID)
	}
	if f.FollowedBy != "" {
		followed := config.DB.Model(&follower.Follower{}).
			Select("author_id").
			Where("user_id = ?", f.FollowedBy)
		tx = tx.Where("author_id IN (?)", followed)
	}
	return tx
}
