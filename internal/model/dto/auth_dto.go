package dto

import "time"

// ========== Auth 相关 DTO ==========

// SignupRequest 商户注册请求
type SignupRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	ContactName string `json:"contact_name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
}

// SignupResponse 注册响应；注册完成即发送手机验证码
type SignupResponse struct {
	PartnerID string `json:"partner_id"`
	Status    string `json:"status"`
	OTPSent   bool   `json:"otp_sent"`
}

// LoginRequest 密码登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PartnerSnapshot 认证接口返回的商户快照
type PartnerSnapshot struct {
	ID            string `json:"id"`
	ContactName   string `json:"contact_name"`
	Status        string `json:"status"`
	PhoneMasked   string `json:"phone_masked,omitempty"`
	PhoneVerified bool   `json:"phone_verified"`
	IsNewPartner  bool   `json:"is_new_partner"`
}

// AuthTokensResponse 登录/验证成功后的令牌响应
type AuthTokensResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int             `json:"expires_in"`
	Partner      PartnerSnapshot `json:"partner"`
}

// SendOTPRequest 发送验证码请求
type SendOTPRequest struct {
	Phone       string `json:"phone" binding:"required"`
	Scene       string `json:"scene" binding:"required"` // signup, password_reset
	SliderToken string `json:"slider_token,omitempty"`
}

// ResendResult 重发验证码的显式结果值；重发成功不是错误，不走错误通道
type ResendResult struct {
	Resent            bool `json:"resent"`
	RetryAfterSeconds int  `json:"retry_after_seconds,omitempty"`
}

// VerifyOTPRequest 验证码校验请求
type VerifyOTPRequest struct {
	Phone      string `json:"phone" binding:"required"`
	VerifyCode string `json:"verify_code" binding:"required"`
	Scene      string `json:"scene" binding:"required"`
}

// PasswordResetRequest 重置密码请求，验证码通过后生效
type PasswordResetRequest struct {
	Phone       string `json:"phone" binding:"required"`
	VerifyCode  string `json:"verify_code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// VerifySliderRequest 滑块验证请求
type VerifySliderRequest struct {
	Phone       string `json:"phone" binding:"required"`
	SliderToken string `json:"slider_token" binding:"required"`
}

// VerifySliderResponse 滑块验证响应
type VerifySliderResponse struct {
	SliderVerificationToken string    `json:"slider_verification_token"`
	ExpiresAt               time.Time `json:"expires_at"`
}

// RefreshTokenRequest 刷新 token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
