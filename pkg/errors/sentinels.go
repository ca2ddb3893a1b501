package errors

import "errors"

// 非业务类的内部哨兵错误，供各 pkg 层包装使用。
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrPartnerIDNotFound            = errors.New("partner id not found in token claims")

	ErrCaptchaTokenRequired       = errors.New("captcha verify token required")
	ErrCaptchaResponseNil         = errors.New("captcha response is nil")
	ErrCaptchaVerificationFailed  = errors.New("captcha verification failed")
	ErrUnsupportedCaptchaProvider = errors.New("unsupported captcha provider")
)

// SMS 发送参数缺失
var (
	ErrSignNameRequired     = errors.New("signName is required")
	ErrTemplateCodeRequired = errors.New("templateCode is required")
)

// NonRetryableError 不可重试的发送错误（模板、签名等配置问题），
// 消费者遇到它直接落败，不再 requeue
type NonRetryableError struct {
	Code    string
	Message string
	Hint    string
}

func (e *NonRetryableError) Error() string {
	return e.Code + ": " + e.Message + " (" + e.Hint + ")"
}

func NewNonRetryableError(code, message, hint string) *NonRetryableError {
	return &NonRetryableError{Code: code, Message: message, Hint: hint}
}

// IsNonRetryable 判断错误是否不可重试
func IsNonRetryable(err error) bool {
	var nre *NonRetryableError
	return errors.As(err, &nre)
}

// SkipMessageError 消费端跳过消息（已处理过、内容过期等），ack 不重试
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return "skip message: " + e.Reason
}

// IsSkipMessageError 判断是否为跳过消息错误
func IsSkipMessageError(err error) bool {
	var sme *SkipMessageError
	return errors.As(err, &sme)
}
