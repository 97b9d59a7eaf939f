package service

import (
	"context"
	"time"

	"campuswall/config"
	"campuswall/dao"
	"campuswall/dao/cache"
	"campuswall/models"
	"campuswall/pkg/credential"
	"campuswall/pkg/jwt"
	"campuswall/pkg/log"
	"campuswall/pkg/snowflake"
	"campuswall/types"

	"go.uber.org/zap"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error)
	Login(ctx context.Context, cred string) (*types.LoginResponse, error)
	GetProfile(ctx context.Context, userID uint64) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error
	BatchGetUserInfo(ctx context.Context, userIDs []uint64) map[uint64]types.UserProfile
	CreateInvite(ctx context.Context, userID uint64) (string, error)
}

type UserService struct {
	UserDAO     *dao.UserDAO
	InviteCache *cache.InviteStorage
	Config      *config.Config
}

// Register 匿名注册:服务端生成凭证和昵称，凭证只下发这一次。
// 带有效邀请码的直接按申请的角色通过，否则进待验证状态
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error) {
	role := models.RolePending
	if req.InviteCode != "" {
		if _, ok := s.InviteCache.Take(ctx, req.InviteCode); !ok {
			return nil, ErrInviteCodeInvalid
		}
		role = models.RoleStudent
		if req.Role != "" {
			role = req.Role
		}
	}

	user := &models.User{
		ID:       uint64(snowflake.GenID()),
		Nickname: credential.GenNickname(),
		Role:     role,
	}

	// 凭证撞唯一键的概率可以忽略，但撞了就重新生成
	for attempt := 0; attempt < 3; attempt++ {
		user.Credential = credential.GenCredential()
		err := s.UserDAO.Create(ctx, user)
		if err == nil {
			break
		}
		if attempt == 2 {
			return nil, err
		}
		log.L.Warn("credential collision, regenerating", zap.Error(err))
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &types.RegisterResponse{
		User:       toProfile(user),
		Credential: user.Credential,
		Token:      token,
	}, nil
}

// Login 凭证登录
func (s *UserService) Login(ctx context.Context, cred string) (*types.LoginResponse, error) {
	user, err := s.UserDAO.FindByCredential(ctx, cred)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		User:  toProfile(user),
		Token: token,
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.UserProfile, error) {
	user, err := s.UserDAO.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	profile := toProfile(user)
	return &profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error {
	updates := map[string]any{}
	if req.Nickname != nil {
		updates["nickname"] = *req.Nickname
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	return s.UserDAO.Update(ctx, userID, updates)
}

// BatchGetUserInfo 批量查询用户信息，查不到的用零值占位
func (s *UserService) BatchGetUserInfo(ctx context.Context, userIDs []uint64) map[uint64]types.UserProfile {
	result := make(map[uint64]types.UserProfile, len(userIDs))
	users, err := s.UserDAO.FindByIDs(ctx, userIDs)
	if err != nil {
		log.L.Error("batch get user info", zap.Error(err))
		return result
	}
	for _, user := range users {
		result[user.ID] = toProfile(user)
	}
	return result
}

// CreateInvite 签发邀请码，存 redis 带过期时间
func (s *UserService) CreateInvite(ctx context.Context, userID uint64) (string, error) {
	code := credential.GenInviteCode()
	if err := s.InviteCache.Set(ctx, code, userID); err != nil {
		return "", err
	}
	return code, nil
}

func (s *UserService) issueToken(userID uint64) (string, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	return jwt.GenerateToken([]byte(s.Config.Jwt.Secret), userID, "access", expire)
}

func toProfile(user *models.User) types.UserProfile {
	return types.UserProfile{
		ID:        user.ID,
		Nickname:  user.Nickname,
		Role:      user.Role,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
	}
}
