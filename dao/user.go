package dao

import (
	"context"
	"fmt"

	"campuswall/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// Create 创建用户
func (d *UserDAO) Create(ctx context.Context, user *models.User) error {
	return d.Db.WithContext(ctx).Create(user).Error
}

// FindByCredential 凭证登录查询
func (d *UserDAO) FindByCredential(ctx context.Context, credential string) (*models.User, error) {
	return d.FindByWhere(ctx, "credential = ?", credential)
}

// Update 更新资料字段
func (d *UserDAO) Update(ctx context.Context, userID uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	err := d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("dao.User.Update error: %w", err)
	}
	return nil
}

// FindByIDs 批量查询用户
func (d *UserDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	var users []*models.User
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}
