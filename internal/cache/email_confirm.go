package cache

import (
	"context"
	"time"

	"BistroHub/config"
	"BistroHub/storage/redis"
)

// 商户邮箱再确认：回顾步骤提交前必须完成。
// 确认码：bh:email_confirm:code:{partner_id}
// 确认标记：bh:email_confirm:done:{partner_id}，确认后短期有效
const (
	emailConfirm = "email_confirm"
)

func SetEmailConfirmCode(ctx context.Context, partnerID, code string) error {
	key := redis.Key(emailConfirm, "code", partnerID)
	ttl := time.Duration(config.Cfg.EmailConfirmExpireMinutes) * time.Minute

	return redis.Client().Set(ctx, key, code, ttl).Err()
}

func GetEmailConfirmCode(ctx context.Context, partnerID string) (string, error) {
	key := redis.Key(emailConfirm, "code", partnerID)
	return redis.Client().Get(ctx, key).Result()
}

// MarkEmailConfirmed 记录确认完成；回顾步骤的提交窗口内有效
func MarkEmailConfirmed(ctx context.Context, partnerID string) error {
	key := redis.Key(emailConfirm, "done", partnerID)
	ttl := time.Duration(config.Cfg.EmailConfirmExpireMinutes) * time.Minute

	return redis.Client().Set(ctx, key, "1", ttl).Err()
}

func IsEmailConfirmed(ctx context.Context, partnerID string) bool {
	key := redis.Key(emailConfirm, "done", partnerID)
	exists, _ := redis.Client().Exists(ctx, key).Result()
	return exists > 0
}
