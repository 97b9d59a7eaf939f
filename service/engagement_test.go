package service

import (
	"context"
	"strings"
	"testing"

	"campuswall/dao"
	"campuswall/testutils"
	"campuswall/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	profiles map[uint64]types.UserProfile
}

func (f *fakeUserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error) {
	return nil, nil
}

func (f *fakeUserService) Login(ctx context.Context, cred string) (*types.LoginResponse, error) {
	return nil, nil
}

func (f *fakeUserService) GetProfile(ctx context.Context, userID uint64) (*types.UserProfile, error) {
	return nil, nil
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error {
	return nil
}

func (f *fakeUserService) BatchGetUserInfo(ctx context.Context, userIDs []uint64) map[uint64]types.UserProfile {
	result := make(map[uint64]types.UserProfile, len(userIDs))
	for _, id := range userIDs {
		result[id] = f.profiles[id]
	}
	return result
}

func (f *fakeUserService) CreateInvite(ctx context.Context, userID uint64) (string, error) {
	return "", nil
}

func newEngagementService(t *testing.T) (*EngagementService, sqlmock.Sqlmock, *miniredis.Miniredis, func()) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s := &EngagementService{
		PostDAO:    dao.NewPostDAO(db),
		LikeDAO:    dao.NewPostLikeDAO(db),
		StatsDAO:   dao.NewPostStatsDAO(db),
		CommentDAO: dao.NewCommentDAO(db),
		UserService: &fakeUserService{profiles: map[uint64]types.UserProfile{
			7: {ID: 7, Nickname: "机智的小狗42"},
		}},
		Redis: rds,
	}
	return s, mock, mr, cleanup
}

func TestToggleLike_Add(t *testing.T) {
	s, mock, _, cleanup := newEngagementService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `post_likes` WHERE post_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}))
	mock.ExpectExec("INSERT INTO `post_likes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO post_stats (.+)like_count = GREATEST").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `post_stats` WHERE post_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "like_count", "comment_count", "view_count"}).
			AddRow(100, 1, 0, 0))

	resp, err := s.ToggleLike(context.Background(), 7, 100)
	assert.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, int64(1), resp.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLike_Remove(t *testing.T) {
	s, mock, _, cleanup := newEngagementService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `post_likes` WHERE post_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}).
			AddRow(5, 100, 7))
	mock.ExpectExec("DELETE FROM `post_likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO post_stats (.+)like_count = GREATEST").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `post_stats` WHERE post_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "like_count", "comment_count", "view_count"}).
			AddRow(100, 0, 0, 0))

	resp, err := s.ToggleLike(context.Background(), 7, 100)
	assert.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, int64(0), resp.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLike_PostNotFound(t *testing.T) {
	s, mock, _, cleanup := newEngagementService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	_, err := s.ToggleLike(context.Background(), 7, 100)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

// 防重复提交锁被占时直接拒绝，不碰数据库
func TestToggleLike_Locked(t *testing.T) {
	s, mock, mr, cleanup := newEngagementService(t)
	defer cleanup()

	mr.Set("lock:post:like:7:100", "1")

	_, err := s.ToggleLike(context.Background(), 7, 100)
	assert.ErrorIs(t, err, ErrTooFrequent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordComment_Empty(t *testing.T) {
	s, mock, _, cleanup := newEngagementService(t)
	defer cleanup()

	_, err := s.RecordComment(context.Background(), 100, 7, "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordComment_TooLong(t *testing.T) {
	s, mock, _, cleanup := newEngagementService(t)
	defer cleanup()

	content := strings.Repeat("评", types.MaxCommentLength+1)
	_, err := s.RecordComment(context.Background(), 100, 7, content)
	assert.ErrorIs(t, err, ErrContentTooLong)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordComment_Success(t *testing.T) {
	s, mock, _, cleanup := newEngagementService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comments`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO post_stats (.+)comment_count = GREATEST").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	comment, err := s.RecordComment(context.Background(), 100, 7, "今晚食堂有烤鱼")
	assert.NoError(t, err)
	assert.Equal(t, uint64(100), comment.PostID)
	assert.Equal(t, uint64(7), comment.UserID)
	assert.Equal(t, "今晚食堂有烤鱼", comment.Content)
	assert.Equal(t, "机智的小狗42", comment.User.Nickname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordView(t *testing.T) {
	s, mock, _, cleanup := newEngagementService(t)
	defer cleanup()

	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT INTO post_stats \\(post_id, view_count").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}

	for i := 0; i < 3; i++ {
		assert.NoError(t, s.RecordView(context.Background(), 100))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasLiked(t *testing.T) {
	s, mock, _, cleanup := newEngagementService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `post_likes` WHERE post_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	liked, err := s.HasLiked(context.Background(), 7, 100)
	assert.NoError(t, err)
	assert.True(t, liked)
}
