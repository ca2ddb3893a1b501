package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	InvalidCredentials      = Definition{Code: "INVALID_CREDENTIALS", Message: "Email or password incorrect"}
	EmailAlreadyRegistered  = Definition{Code: "EMAIL_ALREADY_REGISTERED", Message: "Email already registered"}
	PhoneAlreadyRegistered  = Definition{Code: "PHONE_ALREADY_REGISTERED", Message: "Phone already registered"}
	OTPRateLimited          = Definition{Code: "OTP_RATE_LIMITED", Message: "OTP rate limited"}
	VerificationCodeExpired = Definition{Code: "VERIFICATION_CODE_EXPIRED", Message: "Verification code expired"}
	VerificationCodeInvalid = Definition{Code: "VERIFICATION_CODE_INVALID", Message: "Verification code invalid"}
	SliderRequired          = Definition{Code: "VERIFICATION_SLIDER_REQUIRED", Message: "Slider verification required"}
	SliderFailed            = Definition{Code: "VERIFICATION_SLIDER_FAILED", Message: "Slider verification failed"}
	Unauthorized            = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidPartnerID        = Definition{Code: "INVALID_PARTNER_ID", Message: "Invalid partner ID format"}
	PartnerNotFound         = Definition{Code: "PARTNER_NOT_FOUND", Message: "Partner not found"}
	TooManyRequests         = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
)

// 引导流程错误。
var (
	OnboardingStepInvalid     = Definition{Code: "ONBOARDING_STEP_INVALID", Message: "Onboarding step invalid"}
	OnboardingSubmitInFlight  = Definition{Code: "ONBOARDING_SUBMIT_IN_FLIGHT", Message: "A submission is already in progress"}
	OnboardingFormDataMissing = Definition{Code: "ONBOARDING_FORM_DATA_MISSING", Message: "No form data recorded for this step"}
	EmailConfirmRequired      = Definition{Code: "EMAIL_CONFIRM_REQUIRED", Message: "Business email confirmation required"}
	EmailConfirmCodeInvalid   = Definition{Code: "EMAIL_CONFIRM_CODE_INVALID", Message: "Email confirmation code invalid"}
	ProfileFetchFailed        = Definition{Code: "PROFILE_FETCH_FAILED", Message: "Failed to load business profile"}
	ProfileUpdateRejected     = Definition{Code: "PROFILE_UPDATE_REJECTED", Message: "Profile service rejected the update"}
)

// 档案与上传错误。
var (
	ProfileNotFound   = Definition{Code: "PROFILE_NOT_FOUND", Message: "Business profile not found"}
	UploadTooLarge    = Definition{Code: "UPLOAD_TOO_LARGE", Message: "Uploaded file exceeds size limit"}
	UploadKindInvalid = Definition{Code: "UPLOAD_KIND_INVALID", Message: "Upload kind invalid"}
	UploadNotFound    = Definition{Code: "UPLOAD_NOT_FOUND", Message: "Uploaded file not found"}
)

// 运营面板错误。
var (
	OrderNotFound          = Definition{Code: "ORDER_NOT_FOUND", Message: "Order not found"}
	OrderTransitionInvalid = Definition{Code: "ORDER_TRANSITION_INVALID", Message: "Order status transition invalid"}
	StaffLimitReached      = Definition{Code: "STAFF_LIMIT_REACHED", Message: "Staff limit reached"}
	StaffRoleInvalid       = Definition{Code: "STAFF_ROLE_INVALID", Message: "Staff role invalid"}
	StaffNotFound          = Definition{Code: "STAFF_NOT_FOUND", Message: "Staff member not found"}
	OwnerRequired          = Definition{Code: "OWNER_REQUIRED", Message: "Only the owner may perform this action"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	InvalidCredentials.Code:        InvalidCredentials,
	EmailAlreadyRegistered.Code:    EmailAlreadyRegistered,
	PhoneAlreadyRegistered.Code:    PhoneAlreadyRegistered,
	OTPRateLimited.Code:            OTPRateLimited,
	VerificationCodeExpired.Code:   VerificationCodeExpired,
	VerificationCodeInvalid.Code:   VerificationCodeInvalid,
	SliderRequired.Code:            SliderRequired,
	SliderFailed.Code:              SliderFailed,
	Unauthorized.Code:              Unauthorized,
	InvalidPartnerID.Code:          InvalidPartnerID,
	PartnerNotFound.Code:           PartnerNotFound,
	TooManyRequests.Code:           TooManyRequests,
	OnboardingStepInvalid.Code:     OnboardingStepInvalid,
	OnboardingSubmitInFlight.Code:  OnboardingSubmitInFlight,
	OnboardingFormDataMissing.Code: OnboardingFormDataMissing,
	EmailConfirmRequired.Code:      EmailConfirmRequired,
	EmailConfirmCodeInvalid.Code:   EmailConfirmCodeInvalid,
	ProfileFetchFailed.Code:        ProfileFetchFailed,
	ProfileUpdateRejected.Code:     ProfileUpdateRejected,
	ProfileNotFound.Code:           ProfileNotFound,
	UploadTooLarge.Code:            UploadTooLarge,
	UploadKindInvalid.Code:         UploadKindInvalid,
	UploadNotFound.Code:            UploadNotFound,
	OrderNotFound.Code:             OrderNotFound,
	OrderTransitionInvalid.Code:    OrderTransitionInvalid,
	StaffLimitReached.Code:         StaffLimitReached,
	StaffRoleInvalid.Code:          StaffRoleInvalid,
	StaffNotFound.Code:             StaffNotFound,
	OwnerRequired.Code:             OwnerRequired,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
