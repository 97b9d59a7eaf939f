package service

import (
	"context"
	"time"

	"campuswall/dao"
	"campuswall/models"
	"campuswall/pkg/snowflake"
	"campuswall/types"
)

var _ IResourceService = (*ResourceService)(nil)

type IResourceService interface {
	CreateResource(ctx context.Context, userID uint64, req *types.CreateResourceRequest) (uint64, error)
	ListResources(ctx context.Context, category string, offset, limit int) (*types.ListResourcesResponse, error)
	RecordDownload(ctx context.Context, resourceID uint64) (int64, error)
}

// ResourceService 资料库:只管元数据和下载计数，文件本体在外部存储
type ResourceService struct {
	ResourceDAO *dao.ResourceDAO
	UserService IUserService
}

func (s *ResourceService) CreateResource(ctx context.Context, userID uint64, req *types.CreateResourceRequest) (uint64, error) {
	resource := &models.Resource{
		ID:          uint64(snowflake.GenID()),
		UserID:      userID,
		Name:        req.Name,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		FilePath:    req.FilePath,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.ResourceDAO.Create(ctx, resource); err != nil {
		return 0, err
	}
	return resource.ID, nil
}

func (s *ResourceService) ListResources(ctx context.Context, category string, offset, limit int) (*types.ListResourcesResponse, error) {
	resources, err := s.ResourceDAO.List(ctx, category, offset, limit)
	if err != nil {
		return nil, err
	}

	result := &types.ListResourcesResponse{Resources: make([]*types.ResourceResponse, 0, len(resources))}
	if len(resources) == 0 {
		return result, nil
	}

	userIDs := make([]uint64, 0, len(resources))
	for _, resource := range resources {
		userIDs = append(userIDs, resource.UserID)
	}
	userMap := s.UserService.BatchGetUserInfo(ctx, userIDs)

	for _, resource := range resources {
		result.Resources = append(result.Resources, &types.ResourceResponse{
			ID:          resource.ID,
			Name:        resource.Name,
			Category:    resource.Category,
			Subcategory: resource.Subcategory,
			FileType:    resource.FileType,
			FileSize:    resource.FileSize,
			FilePath:    resource.FilePath,
			Description: resource.Description,
			Downloads:   resource.Downloads,
			CreatedAt:   resource.CreatedAt,
			Uploader:    userMap[resource.UserID],
		})
	}
	return result, nil
}

// RecordDownload 下载计数 +1，返回最新计数
func (s *ResourceService) RecordDownload(ctx context.Context, resourceID uint64) (int64, error) {
	affected, err := s.ResourceDAO.IncrDownloads(ctx, resourceID)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, ErrResourceNotFound
	}

	resource, err := s.ResourceDAO.FindByID(ctx, resourceID)
	if err != nil {
		return 0, err
	}
	if resource == nil {
		return 0, ErrResourceNotFound
	}
	return resource.Downloads, nil
}
