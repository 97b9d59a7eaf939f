package models

import "time"

type Post struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id,string"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id,string"`
	Title     string    `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Tag       string    `gorm:"column:tag;type:varchar(32);not null;default:'';index:idx_tag" json:"tag"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string { return "posts" }
