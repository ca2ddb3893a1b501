package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"BistroHub/internal/cache"
	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/repository"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/pkg/logger"
	"BistroHub/pkg/snowflake"
	"BistroHub/pkg/token"
	"BistroHub/utils"
)

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{}
	})
	return authService
}

type AuthService struct{}

// Signup 注册商户账号并触发手机验证码。
// 账号创建后处于 pending_verification，验证码通过后才发放会话。
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if !utils.ValidateEmail(req.Email) || !utils.ValidatePhone(req.Phone) {
		return nil, pkgerrors.InvalidCredentials
	}

	if _, err := repository.Partner().GetByEmail(ctx, req.Email); err == nil {
		return nil, pkgerrors.EmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query partner by email: %w", err)
	}

	phoneHash := utils.HashPhone(req.Phone)
	if _, err := repository.Partner().GetByPhoneHash(ctx, phoneHash); err == nil {
		return nil, pkgerrors.PhoneAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query partner by phone: %w", err)
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate partner ID: %w", err)
	}

	phoneCipherBase64, err := utils.EncryptSensitive(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt phone: %w", err)
	}
	phoneCipherBytes, err := base64.StdEncoding.DecodeString(phoneCipherBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode phone cipher: %w", err)
	}

	partner := &model.Partner{
		PublicID:     publicID,
		Email:        req.Email,
		ContactName:  req.ContactName,
		PasswordHash: utils.HashPassword(req.Password),
		PhoneCipher:  phoneCipherBytes,
		PhoneHash:    &phoneHash,
		Status:       model.PartnerStatusPendingVerification,
		Timezone:     "Asia/Kolkata",
	}

	if err := repository.Partner().Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}

	logger.Logger.Info("New partner created",
		zap.Int64("public_id", publicID),
		zap.String("email", req.Email),
	)

	otpSent := true
	if _, err := Verification().SendOTP(ctx, req.Phone, "signup", ""); err != nil {
		logger.Logger.Warn("Failed to send signup OTP",
			zap.Int64("public_id", publicID),
			zap.Error(err),
		)
		otpSent = false
	}

	return &dto.SignupResponse{
		PartnerID: fmt.Sprintf("%d", publicID),
		Status:    model.StatusToStringMap[partner.Status],
		OTPSent:   otpSent,
	}, nil
}

// VerifySignupOTP 校验注册验证码，通过后账号进入 onboarding 并发放会话
func (s *AuthService) VerifySignupOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.AuthTokensResponse, error) {
	if err := Verification().VerifyOTP(ctx, req.Phone, req.Scene, req.VerifyCode); err != nil {
		return nil, err
	}

	phoneHash := utils.HashPhone(req.Phone)
	partner, err := repository.Partner().GetByPhoneHash(ctx, phoneHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.PartnerNotFound
		}
		return nil, fmt.Errorf("failed to query partner: %w", err)
	}

	isNew := partner.Status == model.PartnerStatusPendingVerification
	if isNew {
		if err := repository.Partner().UpdateStatus(ctx, partner.PublicID, model.PartnerStatusOnboarding); err != nil {
			return nil, fmt.Errorf("failed to update partner status: %w", err)
		}
		partner.Status = model.PartnerStatusOnboarding
	}

	return s.issueTokens(ctx, partner, isNew)
}

// Login 邮箱密码登录
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthTokensResponse, error) {
	partner, err := repository.Partner().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.InvalidCredentials
		}
		return nil, fmt.Errorf("failed to query partner: %w", err)
	}

	if partner.PasswordHash != utils.HashPassword(req.Password) {
		return nil, pkgerrors.InvalidCredentials
	}

	return s.issueTokens(ctx, partner, false)
}

// RefreshToken 刷新会话
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthTokensResponse, error) {
	partnerIDStr, err := token.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, pkgerrors.Unauthorized
	}

	if !cache.ValidateRefreshTokenExists(ctx, partnerIDStr, refreshToken) {
		return nil, pkgerrors.Unauthorized
	}

	var partnerID int64
	fmt.Sscanf(partnerIDStr, "%d", &partnerID)
	partner, err := repository.Partner().GetByPublicID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.PartnerNotFound
		}
		return nil, fmt.Errorf("failed to query partner: %w", err)
	}

	return s.issueTokens(ctx, partner, false)
}

// ResetPassword 验证码通过后重置密码，旧会话全部失效
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.PasswordResetRequest) error {
	if err := Verification().VerifyOTP(ctx, req.Phone, "password_reset", req.VerifyCode); err != nil {
		return err
	}

	phoneHash := utils.HashPhone(req.Phone)
	partner, err := repository.Partner().GetByPhoneHash(ctx, phoneHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.PartnerNotFound
		}
		return fmt.Errorf("failed to query partner: %w", err)
	}

	if err := repository.Partner().UpdatePassword(ctx, partner.PublicID, utils.HashPassword(req.NewPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	partnerIDStr := fmt.Sprintf("%d", partner.PublicID)
	if err := cache.DeleteRefreshToken(ctx, partnerIDStr); err != nil {
		logger.Logger.Warn("Failed to revoke refresh token after password reset",
			zap.String("partner_id", partnerIDStr),
			zap.Error(err),
		)
	}

	return nil
}

// Logout 吊销 refresh token
func (s *AuthService) Logout(ctx context.Context, partnerID string) error {
	return cache.DeleteRefreshToken(ctx, partnerID)
}

func (s *AuthService) issueTokens(ctx context.Context, partner *model.Partner, isNew bool) (*dto.AuthTokensResponse, error) {
	partnerIDStr := fmt.Sprintf("%d", partner.PublicID)

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(partnerIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := cache.SetRefreshToken(ctx, partnerIDStr, refreshToken); err != nil {
		logger.Logger.Warn("Failed to store refresh token in Redis",
			zap.String("partner_id", partnerIDStr),
			zap.Error(err),
		)
		// token 已经生成成功，不阻塞登录
	}

	phoneVerified := partner.Status != model.PartnerStatusPendingVerification

	return &dto.AuthTokensResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		Partner: dto.PartnerSnapshot{
			ID:            partnerIDStr,
			ContactName:   partner.ContactName,
			Status:        model.StatusToStringMap[partner.Status],
			PhoneVerified: phoneVerified,
			IsNewPartner:  isNew,
		},
	}, nil
}
