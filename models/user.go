package models

import "time"

// 用户角色
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAlumni  = "alumni"
	RolePending = "pending"
)

type User struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id,string"`
	Credential string    `gorm:"column:credential;type:varchar(32);not null;uniqueIndex:uk_credential" json:"-"`
	Nickname   string    `gorm:"column:nickname;type:varchar(64);not null" json:"nickname"`
	Role       string    `gorm:"column:role;type:varchar(16);not null;default:'pending'" json:"role"`
	Avatar     string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	Bio        string    `gorm:"column:bio;type:varchar(255);not null;default:''" json:"bio"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
