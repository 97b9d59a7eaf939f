package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 邀请码有效期 - 7天
const inviteExpireAt = 7 * 24 * time.Hour

type InviteStorage struct {
	redis *redis.Client
}

func NewInviteStorage(rds *redis.Client) *InviteStorage {
	return &InviteStorage{rds}
}

// Set 存入邀请码，记录签发人
// @params code    邀请码
// @params issuer  签发人用户ID
func (i *InviteStorage) Set(ctx context.Context, code string, issuer uint64) error {
	return i.redis.Set(ctx, i.name(code), issuer, inviteExpireAt).Err()
}

// Take 消费邀请码，返回签发人；码不存在或已被用掉返回 false
func (i *InviteStorage) Take(ctx context.Context, code string) (uint64, bool) {
	pipe := i.redis.TxPipeline()
	get := pipe.Get(ctx, i.name(code))
	pipe.Del(ctx, i.name(code))
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, false
	}

	issuer, err := get.Uint64()
	if err != nil {
		return 0, false
	}
	return issuer, true
}

func (i *InviteStorage) name(code string) string {
	return fmt.Sprintf("invite:code:%s", code)
}
