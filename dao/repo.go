package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各表 DAO 内嵌复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// IsExist 按条件判断记录是否存在
func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByWhere 按条件查询单条记录，未命中返回 nil
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByID 按主键查询
func (r *Repo[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	return r.FindByWhere(ctx, "id = ?", id)
}
