package dao

import (
	"context"

	"campuswall/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// Create 创建帖子
func (d *PostDAO) Create(ctx context.Context, post *models.Post) error {
	return d.Db.WithContext(ctx).Create(post).Error
}

// List 按创建时间倒序分页查询，tag 为空时不过滤
func (d *PostDAO) List(ctx context.Context, tag string, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	query := d.Db.WithContext(ctx)
	if tag != "" {
		query = query.Where("tag = ?", tag)
	}
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// FindByUserID 查询指定用户的帖子
func (d *PostDAO) FindByUserID(ctx context.Context, userID uint64, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// DeleteCascade 删除帖子及其点赞关系、评论和统计行，单事务
func (d *PostDAO) DeleteCascade(ctx context.Context, postID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostStats{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
}
