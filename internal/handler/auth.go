package handler

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"

	"BistroHub/internal/middleware"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/service"
	"BistroHub/pkg/response"
)

// Signup 商户注册
// POST /v1/auth/signup
func Signup(ctx context.Context, c *app.RequestContext) {
	var req dto.SignupRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().Signup(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// Login 邮箱密码登录
// POST /v1/auth/login
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().Login(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SendOTP 发送手机验证码
// POST /v1/auth/otp/send
func SendOTP(ctx context.Context, c *app.RequestContext) {
	var req dto.SendOTPRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Verification().SendOTP(ctx, req.Phone, req.Scene, req.SliderToken)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// VerifyOTP 验证码校验（注册场景通过后发放会话）
// POST /v1/auth/otp/verify
func VerifyOTP(ctx context.Context, c *app.RequestContext) {
	var req dto.VerifyOTPRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().VerifySignupOTP(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// VerifySlider 滑块验证，通过后返回验证票据用于后续发码
// POST /v1/auth/slider/verify
func VerifySlider(ctx context.Context, c *app.RequestContext) {
	var req dto.VerifySliderRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	verificationToken, expiresAt, err := service.Verification().VerifySlider(
		ctx, req.Phone, c.ClientIP(), req.SliderToken)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.VerifySliderResponse{
		SliderVerificationToken: verificationToken,
		ExpiresAt:               expiresAt,
	})
}

// RefreshToken 刷新访问令牌
// POST /v1/auth/token/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ResetPassword 重置密码
// POST /v1/auth/password/reset
func ResetPassword(ctx context.Context, c *app.RequestContext) {
	var req dto.PasswordResetRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Auth().ResetPassword(ctx, &req); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// Logout 登出并吊销 refresh token
// POST /v1/auth/logout
func Logout(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerID(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	if err := service.Auth().Logout(ctx, partnerID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
