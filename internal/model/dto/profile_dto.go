package dto

// ========== Profile 相关 DTO ==========

// ProfileUpdateRequest 档案服务接受的扁平更新请求。
// 所有业务字段均为指针：nil 表示未携带，不覆盖既有值。
// completeStep / currentStep / completePhase 驱动服务端 onboarding 子记录。
type ProfileUpdateRequest struct {
	// 入驻进度指令
	CompleteStep  string `json:"complete_step,omitempty"`
	CurrentStep   string `json:"current_step,omitempty"`
	CompletePhase string `json:"complete_phase,omitempty"`

	// 门店与地址
	BusinessName  *string  `json:"business_name,omitempty"`
	BusinessEmail *string  `json:"business_email,omitempty"`
	BusinessPhone *string  `json:"business_phone,omitempty"`
	AddressLine1  *string  `json:"address_line1,omitempty"`
	AddressLine2  *string  `json:"address_line2,omitempty"`
	City          *string  `json:"city,omitempty"`
	State         *string  `json:"state,omitempty"`
	PostalCode    *string  `json:"postal_code,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`

	// 身份与法务
	IdentityDocumentType *string `json:"identity_document_type,omitempty"`
	IdentityFrontKey     *string `json:"identity_front_key,omitempty"`
	IdentityBackKey      *string `json:"identity_back_key,omitempty"`
	LegalEntityName      *string `json:"legal_entity_name,omitempty"`
	TaxRegistrationNo    *string `json:"tax_registration_no,omitempty"`
	FoodLicenseNo        *string `json:"food_license_no,omitempty"`
	FoodLicenseKey       *string `json:"food_license_key,omitempty"`
	RegistrationDocKey   *string `json:"registration_doc_key,omitempty"`

	// 银行
	BankAccountHolder *string `json:"bank_account_holder,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankCode          *string `json:"bank_code,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	BankStatementKey  *string `json:"bank_statement_key,omitempty"`

	// 套餐与结算
	PackageCode   *string `json:"package_code,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`

	// 验证阶段
	MenuUploadKeys     []string `json:"menu_upload_keys,omitempty"`
	TrainingSlot       *string  `json:"training_slot,omitempty"` // 24 小时制 "HH:MM"
	TrainingPhone      *string  `json:"training_phone,omitempty"`
	MonthlyOrderVolume *string  `json:"monthly_order_volume,omitempty"`
	OtherPlatforms     []string `json:"other_platforms,omitempty"`
	OnboardingFeeRef   *string  `json:"onboarding_fee_ref,omitempty"`
	FeeScreenshotKey   *string  `json:"fee_screenshot_key,omitempty"`

	// 营业时间：每个营业时段一条记录；休息日用 isClosed=true + 00:00 哨兵
	OperatingHours []OperatingHourEntry `json:"operating_hours,omitempty"`
}

// OperatingHourEntry 扁平请求里的营业时段条目（24 小时制）
type OperatingHourEntry struct {
	DayOfWeek string `json:"day_of_week"`
	OpensAt   string `json:"opens_at"`  // "HH:MM"
	ClosesAt  string `json:"closes_at"` // "HH:MM"
	IsClosed  bool   `json:"is_closed"`
}

// OnboardingProgress 档案里的入驻进度子记录
type OnboardingProgress struct {
	CurrentStep           string   `json:"current_step"`
	CompletedSteps        []string `json:"completed_steps"`
	CompletedPhases       []string `json:"completed_phases"`
	IsOnboardingCompleted bool     `json:"is_onboarding_completed"`
}

// ProfileData 档案查询响应；银行账号只回 last4
type ProfileData struct {
	PartnerID     string `json:"partner_id"`
	BusinessName  string `json:"business_name"`
	BusinessEmail string `json:"business_email"`
	BusinessPhone string `json:"business_phone"`

	AddressLine1 string  `json:"address_line1"`
	AddressLine2 string  `json:"address_line2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postal_code"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`

	LegalEntityName   string `json:"legal_entity_name"`
	TaxRegistrationNo string `json:"tax_registration_no"`
	FoodLicenseNo     string `json:"food_license_no"`

	BankAccountHolder string `json:"bank_account_holder"`
	BankAccountLast4  string `json:"bank_account_last4"`
	BankName          string `json:"bank_name"`

	PackageCode   string `json:"package_code"`
	PaymentMethod string `json:"payment_method"`

	TrainingSlot       string   `json:"training_slot,omitempty"`
	MonthlyOrderVolume string   `json:"monthly_order_volume,omitempty"`
	OtherPlatforms     []string `json:"other_platforms,omitempty"`

	OperatingHours []OperatingHourEntry `json:"operating_hours,omitempty"`

	Onboarding OnboardingProgress `json:"onboarding"`
}
