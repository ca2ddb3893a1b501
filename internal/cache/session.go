package cache

import (
	"context"
	"encoding/json"
	"time"

	"BistroHub/config"
	"BistroHub/internal/model"
	"BistroHub/storage/redis"

	ri "github.com/redis/go-redis/v9"
)

// 入驻会话快照：bh:onboarding:session:{partner_id}
// 每次状态变更都整体覆盖写入，会话重建时整体读回。
// 瞬态字段（提交中、浮层开关）不进快照。
const (
	sessionPrefix = "onboarding:session"
)

// SaveSession 持久化入驻会话快照
func SaveSession(ctx context.Context, partnerID string, snap *model.OnboardingSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	key := redis.Key(sessionPrefix, partnerID)
	ttl := time.Duration(config.Cfg.SessionSnapshotTTLHours) * time.Hour

	return redis.Client().Set(ctx, key, raw, ttl).Err()
}

// LoadSession 读取会话快照；无快照返回 (nil, nil)，由调用方走档案冷启动
func LoadSession(ctx context.Context, partnerID string) (*model.OnboardingSnapshot, error) {
	key := redis.Key(sessionPrefix, partnerID)

	raw, err := redis.Client().Get(ctx, key).Bytes()
	if err == ri.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap model.OnboardingSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

// DeleteSession 清除会话快照（激活交接、重置）
func DeleteSession(ctx context.Context, partnerID string) error {
	key := redis.Key(sessionPrefix, partnerID)
	return redis.Client().Del(ctx, key).Err()
}
