package cache

import (
	"context"
	"time"

	"BistroHub/storage/redis"

	"github.com/google/uuid"
)

// 滑块验证通过后的放行 token：bh:slider:verify:{phoneHash}，10 分钟
const (
	sli = "slider"
)

// SetSliderVerificationToken 验证通过后生成放行 token，后续发码请求凭它绕过滑块
func SetSliderVerificationToken(ctx context.Context, phoneHash string) (string, error) {
	token := uuid.New().String()
	key := redis.Key(sli, "verify", phoneHash)
	err := redis.Client().Set(ctx, key, token, 10*time.Minute).Err()
	return token, err
}

func ValidateSliderVerificationToken(ctx context.Context, phoneHash, token string) bool {
	key := redis.Key(sli, "verify", phoneHash)
	storedToken, err := redis.Client().Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return storedToken == token
}
