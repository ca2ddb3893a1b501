package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// jsonbScan 统一的 JSONB 扫描辅助
func jsonbScan(dest interface{}, src interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported jsonb source type")
	}
}

// OnboardingRecord 档案里的 onboarding 子记录，提交响应的权威来源
type OnboardingRecord struct {
	CurrentStep           string   `json:"current_step"`
	CompletedSteps        []string `json:"completed_steps"`
	CompletedPhases       []string `json:"completed_phases"`
	IsOnboardingCompleted bool     `json:"is_onboarding_completed"`
}

func (r *OnboardingRecord) Scan(src interface{}) error { return jsonbScan(r, src) }
func (r OnboardingRecord) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// LocationRecord 门店地址子记录
type LocationRecord struct {
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 string  `json:"address_line2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postal_code"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

func (r *LocationRecord) Scan(src interface{}) error { return jsonbScan(r, src) }
func (r LocationRecord) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// LegalTaxRecord 法务与税务子记录
type LegalTaxRecord struct {
	LegalEntityName    string `json:"legal_entity_name"`
	TaxRegistrationNo  string `json:"tax_registration_no"`
	FoodLicenseNo      string `json:"food_license_no"`
	FoodLicenseDocKey  string `json:"food_license_doc_key,omitempty"`
	RegistrationDocKey string `json:"registration_doc_key,omitempty"`
}

func (r *LegalTaxRecord) Scan(src interface{}) error { return jsonbScan(r, src) }
func (r LegalTaxRecord) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// BankingRecord 银行账户子记录；账号以密文存储
type BankingRecord struct {
	AccountHolder       string `json:"account_holder"`
	AccountNumberCipher string `json:"account_number_cipher"`
	AccountNumberLast4  string `json:"account_number_last4"`
	BankCode            string `json:"bank_code"`
	BankName            string `json:"bank_name"`
	StatementDocKey     string `json:"statement_doc_key,omitempty"`
}

func (r *BankingRecord) Scan(src interface{}) error { return jsonbScan(r, src) }
func (r BankingRecord) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// IdentityRecord 店主身份证明子记录，按文件存储键引用
type IdentityRecord struct {
	DocumentType string `json:"document_type"`
	FrontDocKey  string `json:"front_doc_key"`
	BackDocKey   string `json:"back_doc_key,omitempty"`
}

func (r *IdentityRecord) Scan(src interface{}) error { return jsonbScan(r, src) }
func (r IdentityRecord) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// PackageRecord 合作套餐子记录
type PackageRecord struct {
	PackageCode    string  `json:"package_code"`
	CommissionRate float64 `json:"commission_rate"`
}

func (r *PackageRecord) Scan(src interface{}) error { return jsonbScan(r, src) }
func (r PackageRecord) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// VerificationRecord 验证阶段收集的材料：菜单、培训电话偏好、增长信息、入驻费
type VerificationRecord struct {
	MenuImageKeys      []string `json:"menu_image_keys,omitempty"`
	TrainingCallSlot   string   `json:"training_call_slot,omitempty"`   // 24 小时制 HH:MM
	TrainingCallPhone  string   `json:"training_call_phone,omitempty"`
	MonthlyOrderVolume string   `json:"monthly_order_volume,omitempty"`
	OtherPlatforms     []string `json:"other_platforms,omitempty"`
	FeePaymentRef      string   `json:"fee_payment_ref,omitempty"`
	FeeScreenshotKey   string   `json:"fee_screenshot_key,omitempty"`
}

func (r *VerificationRecord) Scan(src interface{}) error { return jsonbScan(r, src) }
func (r VerificationRecord) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// OperatingHoursEntry 营业时间的单个时段。休息日写一条 isClosed=true、
// 00:00–00:00 的哨兵记录，营业日每个时段一条记录。
type OperatingHoursEntry struct {
	DayOfWeek string `json:"day_of_week"` // monday … sunday
	OpensAt   string `json:"opens_at"`    // 24 小时制 HH:MM
	ClosesAt  string `json:"closes_at"`
	IsClosed  bool   `json:"is_closed"`
}

// OperatingHours 整周营业时间（JSONB）
type OperatingHours []OperatingHoursEntry

func (h *OperatingHours) Scan(src interface{}) error { return jsonbScan(h, src) }
func (h OperatingHours) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// PaymentMethod 结算方式枚举
const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodUPI          = "upi"
	PaymentMethodCheque       = "cheque"
)

// BusinessProfile 商户业务档案，入驻向导同步的权威记录

type BusinessProfile struct {
	BaseModel
	PartnerID     int64  `gorm:"uniqueIndex;not null" json:"partner_id"` // partners.public_id
	BusinessName  string `gorm:"type:varchar(128);not null;default:''" json:"business_name"`
	BusinessEmail string `gorm:"type:varchar(255);not null;default:''" json:"business_email"`
	BusinessPhone string `gorm:"type:varchar(24);not null;default:''" json:"business_phone"`

	Location      LocationRecord     `gorm:"type:jsonb;default:'{}'" json:"location"`
	Identity      IdentityRecord     `gorm:"type:jsonb;default:'{}'" json:"identity"`
	LegalTax      LegalTaxRecord     `gorm:"type:jsonb;default:'{}'" json:"legal_tax"`
	Banking       BankingRecord      `gorm:"type:jsonb;default:'{}'" json:"banking"`
	Package       PackageRecord      `gorm:"type:jsonb;default:'{}'" json:"package"`
	PaymentMethod string             `gorm:"type:varchar(24);not null;default:''" json:"payment_method"`
	Verification  VerificationRecord `gorm:"type:jsonb;default:'{}'" json:"verification"`
	Hours         OperatingHours     `gorm:"type:jsonb;default:'[]'" json:"hours"`

	Onboarding OnboardingRecord `gorm:"type:jsonb;default:'{}'" json:"onboarding"`
}

// TableName 指定表名
func (BusinessProfile) TableName() string {
	return "business_profiles"
}
