package service

import "errors"

// 业务错误，handler 层映射到 HTTP 状态码:
// 参数类 -> 400, 不存在类 -> 404, 权限类 -> 403, 其余 -> 500
var (
	ErrPostNotFound     = errors.New("帖子不存在")
	ErrUserNotFound     = errors.New("用户不存在")
	ErrResourceNotFound = errors.New("资源不存在")

	ErrEmptyContent   = errors.New("内容不能为空")
	ErrContentTooLong = errors.New("内容超出长度限制")

	ErrInvalidCredential = errors.New("凭证无效")
	ErrInviteCodeInvalid = errors.New("邀请码无效或已被使用")
	ErrNotOwner          = errors.New("没有权限操作")
	ErrTooFrequent       = errors.New("操作太频繁,请稍后重试")
)
