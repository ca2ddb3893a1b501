package cache

import (
	"context"
	"time"

	"BistroHub/storage/redis"
)

// 消息消费幂等标记：bh:message:processing:{message_id}
// SetNX 抢占，处理完成后延长 TTL 固化；失败则删除标记允许重试。
const (
	messagePrefix = "message"
)

// TryMarkMessageProcessing 尝试标记消息处理中；返回 false 表示已有消费者处理过
func TryMarkMessageProcessing(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	key := redis.Key(messagePrefix, "processing", messageID)
	return redis.Client().SetNX(ctx, key, 1, ttl).Result()
}

// MarkMessageProcessed 处理完成，延长标记有效期
func MarkMessageProcessed(ctx context.Context, messageID string, ttl time.Duration) error {
	key := redis.Key(messagePrefix, "processing", messageID)
	return redis.Client().Set(ctx, key, 1, ttl).Err()
}

// UnmarkMessageProcessing 处理失败，允许消息重投后重试
func UnmarkMessageProcessing(ctx context.Context, messageID string) error {
	key := redis.Key(messagePrefix, "processing", messageID)
	return redis.Client().Del(ctx, key).Err()
}
