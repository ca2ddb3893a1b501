package cache

import (
	"context"
	"fmt"
	"time"

	"BistroHub/storage/redis"
)

// 入驻催办去重标记：bh:reminder:onboarding:{day}:{partner_id}
// 每个商户每天最多催一次。
const (
	reminderPrefix = "reminder"
)

// TryMarkReminderSent 抢占当日催办标记；返回 false 表示今天已经催过
func TryMarkReminderSent(ctx context.Context, day string, partnerID int64) (bool, error) {
	key := redis.Key(reminderPrefix, "onboarding", day, fmt.Sprintf("%d", partnerID))
	return redis.Client().SetNX(ctx, key, 1, 48*time.Hour).Result()
}
