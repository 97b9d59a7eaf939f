package dao

import (
	"context"
	"testing"

	"campuswall/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestToggle_Add(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	d := NewPostLikeDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `post_likes` WHERE post_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}))
	mock.ExpectExec("INSERT INTO `post_likes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO post_stats (.+)ON DUPLICATE KEY UPDATE like_count = GREATEST").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	liked, err := d.Toggle(context.Background(), 100, 7)
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggle_Remove(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	d := NewPostLikeDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `post_likes` WHERE post_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}).
			AddRow(5, 100, 7))
	mock.ExpectExec("DELETE FROM `post_likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO post_stats (.+)ON DUPLICATE KEY UPDATE like_count = GREATEST").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	liked, err := d.Toggle(context.Background(), 100, 7)
	assert.NoError(t, err)
	assert.False(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 并发下两个首次点赞撞唯一键，后到的按“已点赞”返回且不再加计数
func TestToggle_DuplicateKey(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	d := NewPostLikeDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `post_likes` WHERE post_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id"}))
	mock.ExpectExec("INSERT INTO `post_likes`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectCommit()

	liked, err := d.Toggle(context.Background(), 100, 7)
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
