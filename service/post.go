package service

import (
	"context"
	"time"

	"campuswall/dao"
	"campuswall/models"
	"campuswall/pkg/snowflake"
	"campuswall/types"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, userID uint64, req *types.CreatePostRequest) (uint64, error)
	DeletePost(ctx context.Context, userID, postID uint64) error
}

type PostService struct {
	PostDAO *dao.PostDAO
}

// CreatePost 发帖
func (s *PostService) CreatePost(ctx context.Context, userID uint64, req *types.CreatePostRequest) (uint64, error) {
	if req.Title == "" || req.Content == "" {
		return 0, ErrEmptyContent
	}

	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Tag:       req.Tag,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

// DeletePost 删帖，仅作者本人，点赞关系/评论/统计一并清理
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotOwner
	}
	return s.PostDAO.DeleteCascade(ctx, postID)
}
