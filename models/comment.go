package models

import "time"

// Comment 评论，只增不改不删
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id,string"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post_id" json:"post_id,string"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id,string"`
	Content   string    `gorm:"column:content;type:varchar(500);not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
