package models

import "time"

// PostLike 点赞记录
// 对应表 post_likes
// 唯一键: post_id + user_id，每个用户对每个帖子至多一行
type PostLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_post_user,priority:1" json:"post_id,string"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_post_user,priority:2" json:"user_id,string"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PostLike) TableName() string { return "post_likes" }
