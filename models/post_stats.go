package models

import "time"

// PostStats 帖子统计
// 对应表 post_stats，计数是 post_likes/comments 的冗余缓存，
// 只能与关系写入配对更新，不允许单独改写
type PostStats struct {
	PostID       uint64    `gorm:"column:post_id;primaryKey" json:"post_id,string"`
	LikeCount    int64     `gorm:"column:like_count;default:0" json:"like_count"`
	CommentCount int64     `gorm:"column:comment_count;default:0" json:"comment_count"`
	ViewCount    int64     `gorm:"column:view_count;default:0" json:"view_count"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PostStats) TableName() string { return "post_stats" }
