package service

import (
	"context"
	"testing"
	"time"

	"campuswall/dao"
	"campuswall/testutils"
	"campuswall/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRankComposite(t *testing.T) {
	now := time.Now()

	// 一天前的高赞帖: (1-1)*0.3 + 100/100*0.7 = 0.7
	// 刚发的零赞帖:   (1-0)*0.3 + 0*0.7       = 0.3
	hot := &types.PostSummary{ID: 1, LikeCount: 100, CreatedAt: now.Add(-24 * time.Hour)}
	fresh := &types.PostSummary{ID: 2, LikeCount: 0, CreatedAt: now}
	posts := []*types.PostSummary{fresh, hot}

	rankComposite(posts, now)

	assert.Equal(t, uint64(1), posts[0].ID)
	assert.Equal(t, uint64(2), posts[1].ID)
}

func TestRankComposite_FresherWinsOnEqualLikes(t *testing.T) {
	now := time.Now()

	older := &types.PostSummary{ID: 1, LikeCount: 5, CreatedAt: now.Add(-12 * time.Hour)}
	newer := &types.PostSummary{ID: 2, LikeCount: 5, CreatedAt: now.Add(-time.Hour)}
	posts := []*types.PostSummary{older, newer}

	rankComposite(posts, now)

	assert.Equal(t, uint64(2), posts[0].ID)
}

func newFeedService(t *testing.T) (*FeedService, sqlmock.Sqlmock, func()) {
	db, mock, cleanup := testutils.SetupTestDB(t)

	statsDAO := dao.NewPostStatsDAO(db)
	s := &FeedService{
		PostDAO:  dao.NewPostDAO(db),
		StatsDAO: statsDAO,
		LikeDAO:  dao.NewPostLikeDAO(db),
		UserService: &fakeUserService{profiles: map[uint64]types.UserProfile{
			7: {ID: 7, Nickname: "机智的小狗42"},
		}},
		Engagement: &EngagementService{StatsDAO: statsDAO},
	}
	return s, mock, cleanup
}

func TestListPosts_HotOrder(t *testing.T) {
	s, mock, cleanup := newFeedService(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM `posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "tag", "created_at"}).
			AddRow(1, 7, "冷门帖", "内容", "", now).
			AddRow(2, 7, "热帖", "内容", "", now.Add(-time.Hour)))
	mock.ExpectQuery("SELECT (.+) FROM `post_stats` WHERE post_id IN").
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "like_count", "comment_count", "view_count"}).
			AddRow(1, 1, 0, 0).
			AddRow(2, 9, 0, 0))
	mock.ExpectQuery("SELECT (.+) FROM `post_likes` WHERE post_id IN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}).
			AddRow(11, 1, 7).
			AddRow(12, 2, 7).
			AddRow(13, 2, 8))

	result, err := s.ListPosts(context.Background(), "", types.SortHot, 0, 20, 7)
	assert.NoError(t, err)
	assert.Len(t, result.Posts, 2)
	assert.Equal(t, uint64(2), result.Posts[0].ID)
	assert.Equal(t, int64(9), result.Posts[0].LikeCount)
	assert.True(t, result.Posts[0].Liked)
	assert.Equal(t, []uint64{7, 8}, result.Posts[0].LikedBy)
}

// 没人点赞的帖子 liked_by 给空数组而不是 null
func TestListPosts_EmptyLikedBy(t *testing.T) {
	s, mock, cleanup := newFeedService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "tag", "created_at"}).
			AddRow(1, 7, "新帖", "内容", "", time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM `post_stats` WHERE post_id IN").
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "like_count", "comment_count", "view_count"}))
	mock.ExpectQuery("SELECT (.+) FROM `post_likes` WHERE post_id IN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}))

	result, err := s.ListPosts(context.Background(), "", types.SortLatest, 0, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, result.Posts, 1)
	assert.NotNil(t, result.Posts[0].LikedBy)
	assert.Empty(t, result.Posts[0].LikedBy)
	assert.False(t, result.Posts[0].Liked)
}

func TestGetPost_NotFound(t *testing.T) {
	s, mock, cleanup := newFeedService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "tag", "created_at"}))

	_, err := s.GetPost(context.Background(), 404, 0)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetPost_BumpsViewCount(t *testing.T) {
	s, mock, cleanup := newFeedService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "tag", "created_at"}).
			AddRow(1, 7, "标题", "内容", "", time.Now()))
	mock.ExpectExec("INSERT INTO post_stats \\(post_id, view_count").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT (.+) FROM `post_stats` WHERE post_id IN").
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "like_count", "comment_count", "view_count"}).
			AddRow(1, 0, 0, 5))
	mock.ExpectQuery("SELECT (.+) FROM `post_likes` WHERE post_id IN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}))

	post, err := s.GetPost(context.Background(), 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), post.ViewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
