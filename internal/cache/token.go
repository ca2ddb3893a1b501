package cache

import (
	"context"
	"time"

	"BistroHub/config"
	"BistroHub/storage/redis"
)

const (
	tokenPrefix = "token"
)

// SetRefreshToken 存储 refresh token 到 Redis
// Key: bh:token:refresh:{partner_id}
func SetRefreshToken(ctx context.Context, partnerID, refreshToken string) error {
	key := redis.Key(tokenPrefix, "refresh", partnerID)
	ttl := time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour

	return redis.Client().Set(ctx, key, refreshToken, ttl).Err()
}

// GetRefreshToken 从 Redis 获取 refresh token
func GetRefreshToken(ctx context.Context, partnerID string) (string, error) {
	key := redis.Key(tokenPrefix, "refresh", partnerID)
	return redis.Client().Get(ctx, key).Result()
}

// DeleteRefreshToken 删除 refresh token（登出、激活交接时失效会话）
func DeleteRefreshToken(ctx context.Context, partnerID string) error {
	key := redis.Key(tokenPrefix, "refresh", partnerID)
	return redis.Client().Del(ctx, key).Err()
}

// ValidateRefreshTokenExists 检查 refresh token 是否存在且匹配
func ValidateRefreshTokenExists(ctx context.Context, partnerID, refreshToken string) bool {
	storedToken, err := GetRefreshToken(ctx, partnerID)
	if err != nil {
		return false
	}
	return storedToken == refreshToken
}
