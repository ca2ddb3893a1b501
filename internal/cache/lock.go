package cache

import (
	"context"
	"time"

	"BistroHub/storage/redis"
)

// 分布式互斥，SetNX 实现。提交防抖依赖它：拿不到锁的请求直接丢弃，不排队。
const (
	lockPrefix = "lock"
)

func TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	fullkey := redis.Key(lockPrefix, key)

	result, err := redis.Client().SetNX(ctx, fullkey, 1, ttl).Result()
	if err != nil {
		return false, err
	}

	return result, nil
}

func Unlock(ctx context.Context, key string) error {
	fullkey := redis.Key(lockPrefix, key)

	return redis.Client().Del(ctx, fullkey).Err()
}

// TrySubmitLock 入驻提交的在途防抖锁；ttl 给到提交超时时间，避免崩溃后锁悬挂
func TrySubmitLock(ctx context.Context, partnerID string, ttl time.Duration) (bool, error) {
	return TryLock(ctx, "onboarding:submit:"+partnerID, ttl)
}

// ReleaseSubmitLock 提交结束（成功或失败）后释放
func ReleaseSubmitLock(ctx context.Context, partnerID string) error {
	return Unlock(ctx, "onboarding:submit:"+partnerID)
}
