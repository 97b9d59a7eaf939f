package models

import "time"

// Resource 资料库条目，只存元数据，文件本体在外部存储
type Resource struct {
	ID          uint64    `gorm:"column:id;primaryKey" json:"id,string"`
	UserID      uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id,string"`
	Name        string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Category    string    `gorm:"column:category;type:varchar(32);not null;index:idx_category" json:"category"`
	Subcategory string    `gorm:"column:subcategory;type:varchar(32);not null;default:''" json:"subcategory"`
	FileType    string    `gorm:"column:file_type;type:varchar(16);not null" json:"file_type"`
	FileSize    int64     `gorm:"column:file_size;not null;default:0" json:"file_size"`
	FilePath    string    `gorm:"column:file_path;type:varchar(255);not null" json:"file_path"`
	Description string    `gorm:"column:description;type:varchar(255);not null;default:''" json:"description"`
	Downloads   int64     `gorm:"column:downloads;not null;default:0" json:"downloads"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Resource) TableName() string { return "resources" }
