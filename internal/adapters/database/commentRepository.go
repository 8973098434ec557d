package database

import (
	"yatube/internal/config"
	"yatube/internal/core/comment"
)

type CommentRepositoryDatabase struct{}

func NewCommentRepositoryDatabase() *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{}
}

func (repo *CommentRepositoryDatabase) Create(c *comment.Comment) (*comment.Comment, error) {
	if err := config.DB.Create(c).Error; err != nil {
		return nil, translate(err)
	}
	// Reload with the author so the DTO can show a username.
	var created comment.Comment
	if err := config.DB.Preload("Author").Where("id = ?", c.ID).First(&created).Error; err != nil {
		return nil, translate(err)
	}
	return &created, nil
}

func (repo *CommentRepositoryDatabase) FindByPostID(postID string) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	if err := config.DB.Preload("Author").Where("post_id = ?", postID).Order("created_at").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepositoryDatabase) CountByPostID(postID string) (int64, error) {
	var count int64
	if err := config.DB.Model(&comment.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
