package dao

import (
	"context"

	"campuswall/models"

	"gorm.io/gorm"
)

type ResourceDAO struct {
	Repo[models.Resource]
}

func NewResourceDAO(db *gorm.DB) *ResourceDAO {
	return &ResourceDAO{Repo: NewRepo[models.Resource](db)}
}

// Create 写入资料元数据
func (d *ResourceDAO) Create(ctx context.Context, resource *models.Resource) error {
	return d.Db.WithContext(ctx).Create(resource).Error
}

// List 按上传时间倒序分页，category 为空时不过滤
func (d *ResourceDAO) List(ctx context.Context, category string, offset, limit int) ([]*models.Resource, error) {
	var resources []*models.Resource
	query := d.Db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&resources).Error
	return resources, err
}

// IncrDownloads 下载计数 +1，原子加，返回受影响行数让调用方判断资源是否存在
func (d *ResourceDAO) IncrDownloads(ctx context.Context, resourceID uint64) (int64, error) {
	result := d.Db.WithContext(ctx).Model(&models.Resource{}).
		Where("id = ?", resourceID).
		Update("downloads", gorm.Expr("downloads + ?", 1))
	return result.RowsAffected, result.Error
}
