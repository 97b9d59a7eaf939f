package types

import "time"

// 注册请求，匿名注册，凭证由服务端生成
type RegisterRequest struct {
	Role       string `json:"role" binding:"omitempty,oneof=student teacher alumni"`
	InviteCode string `json:"invite_code"`
}

type RegisterResponse struct {
	User       UserProfile `json:"user"`
	Credential string      `json:"credential"` // 只在注册时下发一次
	Token      string      `json:"token"`
}

type LoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type LoginResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

type UpdateProfileRequest struct {
	Nickname *string `json:"nickname" binding:"omitempty,min=1,max=64"`
	Avatar   *string `json:"avatar" binding:"omitempty,max=255"`
	Bio      *string `json:"bio" binding:"omitempty,max=255"`
}

type UserProfile struct {
	ID        uint64    `json:"id,string"`
	Nickname  string    `json:"nickname"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

type InviteResponse struct {
	Code string `json:"code"`
}
