package dao

import (
	"context"

	"campuswall/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// CreateWithCount 写入评论并在同一个事务里把帖子的评论计数 +1
func (d *CommentDAO) CreateWithCount(ctx context.Context, comment *models.Comment) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return incrPostStat(tx, comment.PostID, statCommentCount, 1)
	})
}

// ListByPostID 按时间正序返回帖子的评论
func (d *CommentDAO) ListByPostID(ctx context.Context, postID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountByPostID 帖子的评论总数
func (d *CommentDAO) CountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
