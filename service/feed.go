package service

import (
	"context"
	"slices"
	"sort"
	"time"

	"campuswall/dao"
	"campuswall/models"
	"campuswall/types"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	ListPosts(ctx context.Context, tag, sortBy string, offset, limit int, currentUserID uint64) (*types.ListPostsResponse, error)
	GetPost(ctx context.Context, postID, currentUserID uint64) (*types.PostSummary, error)
}

// FeedService 读侧门面，把帖子、统计、点赞关系和作者信息拼成展示视图。
// liked/liked_by 一律从关系表查出来，计数只用统计表
type FeedService struct {
	PostDAO     *dao.PostDAO
	StatsDAO    *dao.PostStatsDAO
	LikeDAO     *dao.PostLikeDAO
	UserService IUserService
	Engagement  IEngagementService
}

// ListPosts 分页查询帖子列表，tag 过滤可选，排序方式见 types.Sort*
func (s *FeedService) ListPosts(ctx context.Context, tag, sortBy string, offset, limit int, currentUserID uint64) (*types.ListPostsResponse, error) {
	posts, err := s.PostDAO.List(ctx, tag, offset, limit)
	if err != nil {
		return nil, err
	}

	summaries, err := s.assemble(ctx, posts, currentUserID)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case types.SortHot:
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].LikeCount > summaries[j].LikeCount
		})
	case types.SortAll:
		rankComposite(summaries, time.Now())
	}
	// SortLatest 就是存储序，不动

	return &types.ListPostsResponse{Posts: summaries}, nil
}

// GetPost 帖子详情，副作用:浏览计数 +1
func (s *FeedService) GetPost(ctx context.Context, postID, currentUserID uint64) (*types.PostSummary, error) {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err := s.Engagement.RecordView(ctx, postID); err != nil {
		return nil, err
	}

	summaries, err := s.assemble(ctx, []*models.Post{post}, currentUserID)
	if err != nil {
		return nil, err
	}
	return summaries[0], nil
}

// assemble 为一页帖子批量拼装统计、liked_by 和作者信息
func (s *FeedService) assemble(ctx context.Context, posts []*models.Post, currentUserID uint64) ([]*types.PostSummary, error) {
	result := make([]*types.PostSummary, 0, len(posts))
	if len(posts) == 0 {
		return result, nil
	}

	postIDs := make([]uint64, 0, len(posts))
	userIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		userIDs = append(userIDs, post.UserID)
	}

	statsMap, err := s.StatsDAO.BatchGetByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	likersMap, err := s.LikeDAO.BatchGetLikerIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	userMap := s.UserService.BatchGetUserInfo(ctx, userIDs)

	for _, post := range posts {
		stats := statsMap[post.ID]
		likers := likersMap[post.ID]
		if likers == nil {
			likers = make([]uint64, 0)
		}
		result = append(result, &types.PostSummary{
			ID:           post.ID,
			UserID:       post.UserID,
			Title:        post.Title,
			Content:      post.Content,
			Tag:          post.Tag,
			LikeCount:    stats.LikeCount,
			CommentCount: stats.CommentCount,
			ViewCount:    stats.ViewCount,
			Liked:        currentUserID != 0 && slices.Contains(likers, currentUserID),
			LikedBy:      likers,
			CreatedAt:    post.CreatedAt,
			User:         userMap[post.UserID],
		})
	}
	return result, nil
}

// rankComposite 综合排序:时间权重 0.3 + 热度权重 0.7，只对当前页重排
func rankComposite(posts []*types.PostSummary, now time.Time) {
	const (
		timeWeight = 0.3
		likeWeight = 0.7
	)
	score := func(p *types.PostSummary) float64 {
		age := now.Sub(p.CreatedAt).Hours() / 24
		return (1-age)*timeWeight + float64(p.LikeCount)/100*likeWeight
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return score(posts[i]) > score(posts[j])
	})
}
