package cache

import (
	"context"
	"time"

	"BistroHub/config"
	"BistroHub/storage/redis"
)

// 验证码存储：bh:otp:{phoneHash}:{scene}，TTL 可配置
// 每日发送计数：bh:otp:count:{phoneHash}:{date}，当天结束过期
// scene 决定短信模板：signup / password_reset
const (
	otp = "otp"
)

// SetOTP 存储验证码
func SetOTP(ctx context.Context, phoneHash, scene, code string) error {
	key := redis.Key(otp, phoneHash, scene)
	ttl := time.Duration(config.Cfg.OTPExpireSeconds) * time.Second

	return redis.Client().Set(ctx, key, code, ttl).Err()
}

func GetOTP(ctx context.Context, phoneHash, scene string) (string, error) {
	key := redis.Key(otp, phoneHash, scene)
	return redis.Client().Get(ctx, key).Result()
}

func DeleteOTP(ctx context.Context, phoneHash, scene string) error {
	key := redis.Key(otp, phoneHash, scene)
	return redis.Client().Del(ctx, key).Err()
}

// OTPTTL 剩余有效期；重发限流的 retry_after 从这里来
func OTPTTL(ctx context.Context, phoneHash, scene string) (time.Duration, error) {
	key := redis.Key(otp, phoneHash, scene)
	return redis.Client().TTL(ctx, key).Result()
}

// IncrOTPCount 增加今日发送计数，返回当前次数。
// 首次访问时把过期设到第二天零点。
func IncrOTPCount(ctx context.Context, phoneHash string) (int, error) {
	date := time.Now().Format("2006-01-02")
	key := redis.Key(otp, "count", phoneHash, date)

	count, err := redis.Client().Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		now := time.Now()
		tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		redis.Client().Expire(ctx, key, tomorrow.Sub(now))
	}

	return int(count), nil
}
