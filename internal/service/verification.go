package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"BistroHub/config"
	"BistroHub/internal/cache"
	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/queue"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/pkg/logger"
	"BistroHub/pkg/slider"
	"BistroHub/utils"
)

var (
	verificationService *VerificationService
	verifyOnce          sync.Once
)

func Verification() *VerificationService {
	verifyOnce.Do(func() {
		verificationService = &VerificationService{}
	})

	return verificationService
}

type VerificationService struct{}

func generateOTPCode() string {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// SendOTP 发送验证码。
// 同一手机号已有未过期验证码时不算错误，返回 Resent=false 和剩余等待秒数；
// 超过每日上限返回限流错误，超过滑块阈值要求先通过滑块验证。
// 实际发送动作交给通知队列，由 worker 投递。
func (s *VerificationService) SendOTP(
	ctx context.Context,
	phone string,
	scene string,
	sliderToken string,
) (*dto.ResendResult, error) {
	phoneHash := utils.HashPhone(phone)

	if ttl, err := cache.OTPTTL(ctx, phoneHash, scene); err == nil && ttl > 0 {
		return &dto.ResendResult{
			Resent:            false,
			RetryAfterSeconds: int(ttl.Seconds()),
		}, nil
	}

	count, err := cache.IncrOTPCount(ctx, phoneHash)
	if err != nil {
		return nil, fmt.Errorf("failed to check OTP count: %w", err)
	}

	if count > config.Cfg.OTPMaxDaily {
		return nil, pkgerrors.OTPRateLimited
	}

	if count > config.Cfg.OTPSliderThreshold {
		if sliderToken == "" {
			return nil, pkgerrors.SliderRequired
		}

		if !cache.ValidateSliderVerificationToken(ctx, phoneHash, sliderToken) {
			return nil, pkgerrors.SliderFailed
		}
	}

	code := generateOTPCode()

	if err := cache.SetOTP(ctx, phoneHash, scene, code); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	err = queue.PublishNotification(model.NotificationMessage{
		Category:  "otp",
		Channel:   "sms",
		Recipient: phone,
		TemplateParams: map[string]string{
			"code":  code,
			"scene": scene,
		},
	})
	if err != nil {
		cache.DeleteOTP(ctx, phoneHash, scene)
		logger.Logger.Error("Failed to enqueue OTP notification",
			zap.String("phone_hash", phoneHash),
			zap.String("scene", scene),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to enqueue OTP: %w", err)
	}

	return &dto.ResendResult{Resent: true}, nil
}

// VerifySlider 校验滑块 token，通过后生成放行 token
func (s *VerificationService) VerifySlider(
	ctx context.Context,
	phone string,
	remoteIp string,
	sliderToken string,
) (string, time.Time, error) {
	phoneHash := utils.HashPhone(phone)

	valid, err := slider.Verify(ctx, sliderToken, remoteIp, config.Cfg.CaptchaSceneId)
	if err != nil {
		logger.Logger.Error("Failed to verify slider token",
			zap.String("phone_hash", phoneHash),
			zap.Error(err),
		)
		return "", time.Time{}, pkgerrors.SliderFailed
	}

	if !valid {
		logger.Logger.Warn("Slider verification failed",
			zap.String("phone_hash", phoneHash),
		)
		return "", time.Time{}, pkgerrors.SliderFailed
	}

	verifyToken, err := cache.SetSliderVerificationToken(ctx, phoneHash)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate verify token: %w", err)
	}

	expiresAt := time.Now().Add(10 * time.Minute)
	return verifyToken, expiresAt, nil
}

// VerifyOTP 校验验证码，成功后立即删除，防止复用
func (s *VerificationService) VerifyOTP(
	ctx context.Context,
	phone string,
	scene string,
	code string,
) error {
	phoneHash := utils.HashPhone(phone)

	storedCode, err := cache.GetOTP(ctx, phoneHash, scene)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pkgerrors.VerificationCodeExpired
		}
		return fmt.Errorf("failed to get OTP: %w", err)
	}

	if storedCode != code {
		return pkgerrors.VerificationCodeInvalid
	}

	cache.DeleteOTP(ctx, phoneHash, scene)
	return nil
}
