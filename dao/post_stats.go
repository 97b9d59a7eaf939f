package dao

import (
	"context"
	"fmt"

	"campuswall/models"

	"gorm.io/gorm"
)

// 可计数的列，incrPostStat 只接受这里列出的名字
const (
	statLikeCount    = "like_count"
	statCommentCount = "comment_count"
	statViewCount    = "view_count"
)

type PostStatsDAO struct {
	Repo[models.PostStats]
}

func NewPostStatsDAO(db *gorm.DB) *PostStatsDAO {
	return &PostStatsDAO{Repo: NewRepo[models.PostStats](db)}
}

// incrPostStat 统计计数增减，UPSERT 且不允许为负。
// 计数必须和关系写入在同一个事务里配对调用，tx 由调用方传入。
func incrPostStat(tx *gorm.DB, postID uint64, column string, delta int64) error {
	switch column {
	case statLikeCount, statCommentCount, statViewCount:
	default:
		return fmt.Errorf("dao: unknown stat column %q", column)
	}
	return tx.Exec(
		fmt.Sprintf(
			"INSERT INTO post_stats (post_id, %s, created_at, updated_at) VALUES (?, GREATEST(?, 0), NOW(), NOW()) "+
				"ON DUPLICATE KEY UPDATE %s = GREATEST(%s + ?, 0), updated_at = NOW()",
			column, column, column,
		),
		postID, delta, delta,
	).Error
}

// IncrViewCount 浏览计数 +delta，单条原子语句，无需外层事务
func (d *PostStatsDAO) IncrViewCount(ctx context.Context, postID uint64, delta int64) error {
	return incrPostStat(d.Db.WithContext(ctx), postID, statViewCount, delta)
}

func (d *PostStatsDAO) GetByPostID(ctx context.Context, postID uint64) (*models.PostStats, error) {
	var item models.PostStats
	err := d.Db.WithContext(ctx).Where("post_id = ?", postID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.PostID == 0 {
		return &models.PostStats{PostID: postID}, nil
	}
	return &item, nil
}

// BatchGetByPostIDs 批量查询统计，缺失的帖子返回零值
func (d *PostStatsDAO) BatchGetByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]*models.PostStats, error) {
	result := make(map[uint64]*models.PostStats, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	var items []*models.PostStats
	err := d.Db.WithContext(ctx).Where("post_id IN ?", postIDs).Find(&items).Error
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		result[item.PostID] = item
	}
	for _, id := range postIDs {
		if result[id] == nil {
			result[id] = &models.PostStats{PostID: id}
		}
	}
	return result, nil
}
