package handler

import (
	"net/http"
	"strconv"

	"campuswall/config"
	"campuswall/middleware"
	"campuswall/pkg/context"
	"campuswall/pkg/response"
	"campuswall/service"
	"campuswall/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))

	g := r.Group("/v1/users")
	g.POST("/register", context.Wrap(u.Register))
	g.POST("/login", context.Wrap(u.Login))
	g.POST("/invite", authorize, context.Wrap(u.CreateInvite))
	g.GET("/:id", context.Wrap(u.GetUser))
	g.PATCH("/:id", authorize, context.Wrap(u.UpdateUser))
}

// Register 匿名注册，凭证只在响应里下发一次
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, result)
	return nil
}

// Login 凭证登录
func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	result, err := u.UserService.Login(c.Request.Context(), req.Credential)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, result)
	return nil
}

// CreateInvite 签发邀请码
func (u *User) CreateInvite(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	code, err := u.UserService.CreateInvite(c.Request.Context(), userID)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, types.InviteResponse{Code: code})
	return nil
}

// GetUser 查看用户资料
func (u *User) GetUser(c *gin.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}

	profile, err := u.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, profile)
	return nil
}

// UpdateUser 改自己的资料
func (u *User) UpdateUser(c *gin.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || targetID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	if targetID != userID {
		return response.NewError(http.StatusForbidden, service.ErrNotOwner.Error())
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := u.UserService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, nil)
	return nil
}
