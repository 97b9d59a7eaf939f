package dao

import (
	"context"
	"errors"

	"campuswall/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

// IsLiked 指定用户是否点赞过指定帖子
func (d *PostLikeDAO) IsLiked(ctx context.Context, postID, userID uint64) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ?", postID, userID)
}

// Toggle 翻转点赞关系，关系写入和计数更新在同一个事务里。
// 返回翻转后的状态。并发下重复创建撞唯一键时按“已点赞”处理，不重复计数。
func (d *PostLikeDAO) Toggle(ctx context.Context, postID, userID uint64) (liked bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.PostLike
		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Limit(1).Find(&item).Error; err != nil {
			return err
		}

		if item.ID != 0 {
			if err := tx.Delete(&models.PostLike{}, item.ID).Error; err != nil {
				return err
			}
			liked = false
			return incrPostStat(tx, postID, statLikeCount, -1)
		}

		item = models.PostLike{PostID: postID, UserID: userID}
		if err := tx.Create(&item).Error; err != nil {
			if isDuplicateKey(err) {
				// 并发的同名请求先写进去了，关系已存在
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return incrPostStat(tx, postID, statLikeCount, 1)
	})
	return liked, err
}

// BatchGetLikerIDs 批量查询每个帖子的点赞用户，用于列表页拼装 liked_by
func (d *PostLikeDAO) BatchGetLikerIDs(ctx context.Context, postIDs []uint64) (map[uint64][]uint64, error) {
	result := make(map[uint64][]uint64, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	var likes []*models.PostLike
	err := d.Db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, like := range likes {
		result[like.PostID] = append(result[like.PostID], like.UserID)
	}
	return result, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
