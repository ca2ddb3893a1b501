package dto

import "encoding/json"

// ========== Onboarding 相关 DTO ==========

// SessionData 当前入驻会话的只读视图
type SessionData struct {
	CurrentStep       string                     `json:"current_step"`
	CompletedSteps    []string                   `json:"completed_steps"`
	CompletedPhases   []string                   `json:"completed_phases"`
	CanGoBack         bool                       `json:"can_go_back"`
	IsLastStepOfPhase bool                       `json:"is_last_step_of_phase"`
	IsSubmitting      bool                       `json:"is_submitting"`
	FormData          map[string]json.RawMessage `json:"form_data"`
}

// SetFormDataRequest 写入当前步骤的表单数据
type SetFormDataRequest struct {
	Step    string          `json:"step" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

// GoToStepRequest 直接跳转请求
type GoToStepRequest struct {
	Step string `json:"step" binding:"required"`
}

// SubmitStepRequest 步骤提交（continue）。回顾步骤需要携带邮箱确认码。
type SubmitStepRequest struct {
	EmailConfirmCode string `json:"email_confirm_code,omitempty"`
}

// SubmitStepResponse 提交结果
type SubmitStepResponse struct {
	CompletedStep  string `json:"completed_step"`
	CompletedPhase string `json:"completed_phase,omitempty"`
	NextStep       string `json:"next_step,omitempty"`
	FlowCompleted  bool   `json:"flow_completed"`
}

// ========== 各步骤的表单载荷（UI 形态） ==========

// BusinessLocationForm 门店与地址
type BusinessLocationForm struct {
	BusinessName  string  `json:"business_name"`
	BusinessEmail string  `json:"business_email"`
	BusinessPhone string  `json:"business_phone"`
	AddressLine1  string  `json:"address_line1"`
	AddressLine2  string  `json:"address_line2,omitempty"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	PostalCode    string  `json:"postal_code"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// OwnerIdentityForm 店主身份证明；只传上传返回的存储键
type OwnerIdentityForm struct {
	DocumentType   string `json:"document_type"`
	FrontUploadKey string `json:"front_upload_key"`
	BackUploadKey  string `json:"back_upload_key,omitempty"`
}

// LegalTaxForm 法务与税务
type LegalTaxForm struct {
	LegalEntityName       string `json:"legal_entity_name"`
	TaxRegistrationNo     string `json:"tax_registration_no"`
	FoodLicenseNo         string `json:"food_license_no"`
	FoodLicenseUploadKey  string `json:"food_license_upload_key,omitempty"`
	RegistrationUploadKey string `json:"registration_upload_key,omitempty"`
}

// BankingDetailsForm 银行账户
type BankingDetailsForm struct {
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name"`
}

// BankStatementForm 银行流水上传
type BankStatementForm struct {
	UploadKey string `json:"upload_key"`
}

// PartnershipPackageForm 合作套餐选择
type PartnershipPackageForm struct {
	PackageCode string `json:"package_code"`
}

// PaymentMethodForm 结算方式选择
type PaymentMethodForm struct {
	Method string `json:"method"`
}

// DineInMenuForm 堂食菜单上传
type DineInMenuForm struct {
	UploadKeys []string `json:"upload_keys"`
}

// TrainingCallForm 培训电话偏好；时间是 12 小时制表单值
type TrainingCallForm struct {
	SlotTime string `json:"slot_time"` // 例如 "2:30 PM"
	Phone    string `json:"phone"`
}

// GrowthInfoForm 增长信息
type GrowthInfoForm struct {
	MonthlyOrderVolume string   `json:"monthly_order_volume"`
	OtherPlatforms     []string `json:"other_platforms,omitempty"`
}

// OnboardingFeeForm 入驻费支付凭证
type OnboardingFeeForm struct {
	PaymentRef          string `json:"payment_ref"`
	ScreenshotUploadKey string `json:"screenshot_upload_key,omitempty"`
}

// HoursSlotForm 单个营业时段，12 小时制表单值
type HoursSlotForm struct {
	Opens  string `json:"opens"`  // "9:00 AM"
	Closes string `json:"closes"` // "10:30 PM"
}

// BusinessDayForm 一天的营业设置
type BusinessDayForm struct {
	Day    string          `json:"day"` // monday … sunday
	IsOpen bool            `json:"is_open"`
	Slots  []HoursSlotForm `json:"slots,omitempty"`
}

// BusinessHoursForm 整周营业时间表单
type BusinessHoursForm struct {
	Days []BusinessDayForm `json:"days"`
}
