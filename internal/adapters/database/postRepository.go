package database

import (
	"gorm.io/gorm"
	"yatube/internal/config"
	"yatube/internal/core/comment"
	"yatube/internal/core/post"
)

type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(p *post.Post) (*post.Post, error) {
	if err := config.DB.Create(p).Error; err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// Update touches text and group_id only, so author, image and created_at can
// never drift after creation.
func (repo *PostRepositoryDatabase) Update(id string, text string, groupID *string) (*post.Post, error) {
	updates := map[string]interface{}{
		"text":     text,
		"group_id": nil,
	}
	if groupID != nil {
		updates["group_id"] = *groupID
	}

	tx := config.DB.Model(&post.Post{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}

	return repo.FindByID(id)
}

// Delete removes the post and its comments in one transaction, standing in
// for an ON DELETE CASCADE that works the same on every driver.
func (repo *PostRepositoryDatabase) Delete(id string) error {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&comment.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&post.Post{}).Error
	})
	return translate(err)
}

func (repo *PostRepositoryDatabase) FindByID(id string) (*post.Post, error) {
	var p post.Post
	if err := config.DB.Preload("Author").Preload("Group").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Count() (int64, error) {
	var count int64
	if err := config.DB.Model(&post.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
