package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"campuswall/dao"
	"campuswall/models"
	"campuswall/pkg/snowflake"
	"campuswall/types"

	"github.com/redis/go-redis/v9"
)

var _ IEngagementService = (*EngagementService)(nil)

type IEngagementService interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (*types.ToggleLikeResponse, error)
	HasLiked(ctx context.Context, userID, postID uint64) (bool, error)
	RecordComment(ctx context.Context, postID, userID uint64, content string) (*types.CommentResponse, error)
	ListComments(ctx context.Context, postID uint64) ([]*types.CommentResponse, error)
	RecordView(ctx context.Context, postID uint64) error
}

// EngagementService 维护帖子冗余计数和底层关系表的一致性:
// 计数更新总是和关系写入配对在同一个事务里，计数不会为负
type EngagementService struct {
	PostDAO     *dao.PostDAO
	LikeDAO     *dao.PostLikeDAO
	StatsDAO    *dao.PostStatsDAO
	CommentDAO  *dao.CommentDAO
	UserService IUserService
	Redis       *redis.Client
}

// ToggleLike 翻转点赞，返回翻转后的状态和最新点赞数
func (s *EngagementService) ToggleLike(ctx context.Context, userID, postID uint64) (*types.ToggleLikeResponse, error) {
	// 防重复提交锁，一致性由唯一键+事务保证，锁只挡连点
	lockKey := fmt.Sprintf("lock:post:like:%d:%d", userID, postID)
	lock, err := s.Redis.SetNX(ctx, lockKey, 1, 5*time.Second).Result()
	if err != nil || !lock {
		return nil, ErrTooFrequent
	}
	defer s.Redis.Del(ctx, lockKey)

	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrPostNotFound
	}

	liked, err := s.LikeDAO.Toggle(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.StatsDAO.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &types.ToggleLikeResponse{
		Liked: liked,
		Likes: stats.LikeCount,
	}, nil
}

// HasLiked 以关系表为准判断是否点赞过，不看计数
func (s *EngagementService) HasLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, ErrPostNotFound
	}
	return s.LikeDAO.IsLiked(ctx, postID, userID)
}

// RecordComment 写入评论并把评论计数 +1，校验失败时计数不变
func (s *EngagementService) RecordComment(ctx context.Context, postID, userID uint64, content string) (*types.CommentResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > types.MaxCommentLength {
		return nil, ErrContentTooLong
	}

	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrPostNotFound
	}

	comment := &models.Comment{
		ID:        uint64(snowflake.GenID()),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.CommentDAO.CreateWithCount(ctx, comment); err != nil {
		return nil, err
	}

	userMap := s.UserService.BatchGetUserInfo(ctx, []uint64{userID})

	return &types.CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		User:      userMap[userID],
	}, nil
}

// ListComments 按时间正序返回帖子的评论，带作者信息
func (s *EngagementService) ListComments(ctx context.Context, postID uint64) ([]*types.CommentResponse, error) {
	comments, err := s.CommentDAO.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	result := make([]*types.CommentResponse, 0, len(comments))
	if len(comments) == 0 {
		return result, nil
	}

	userIDs := make([]uint64, 0, len(comments))
	for _, comment := range comments {
		userIDs = append(userIDs, comment.UserID)
	}
	userMap := s.UserService.BatchGetUserInfo(ctx, userIDs)

	for _, comment := range comments {
		result = append(result, &types.CommentResponse{
			ID:        comment.ID,
			PostID:    comment.PostID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			User:      userMap[comment.UserID],
		})
	}
	return result, nil
}

// RecordView 浏览计数 +1，每次详情请求都计，不去重
func (s *EngagementService) RecordView(ctx context.Context, postID uint64) error {
	return s.StatsDAO.IncrViewCount(ctx, postID, 1)
}
