package handler

import (
	"errors"
	"net/http"

	"campuswall/pkg/response"
	"campuswall/service"
)

// wrapServiceError 业务错误到 HTTP 状态码的映射:
// 参数错误 400，未认证 401，无权限 403，不存在 404，其余按存储故障 500
func wrapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrContentTooLong),
		errors.Is(err, service.ErrInviteCodeInvalid):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredential):
		return response.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		return response.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrResourceNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTooFrequent):
		return response.NewError(http.StatusTooManyRequests, err.Error())
	default:
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
}
