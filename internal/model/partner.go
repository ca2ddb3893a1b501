package model

// PartnerStatus 商户账号状态枚举
type PartnerStatus string

const (
	PartnerStatusPendingVerification PartnerStatus = "pending_verification" // 注册后待手机验证
	PartnerStatusOnboarding          PartnerStatus = "onboarding"           // 入驻向导进行中
	PartnerStatusActivationPending   PartnerStatus = "activation_pending"   // 向导收尾，等待激活邮件
	PartnerStatusActive              PartnerStatus = "active"               // 正常营业
	PartnerStatusSuspended           PartnerStatus = "suspended"
)

// StatusToStringMap 状态到响应字符串的映射
var StatusToStringMap = map[PartnerStatus]string{
	PartnerStatusPendingVerification: "pending_verification",
	PartnerStatusOnboarding:          "onboarding",
	PartnerStatusActivationPending:   "activation_pending",
	PartnerStatusActive:              "active",
	PartnerStatusSuspended:           "suspended",
}

// Partner 商户账号模型

type Partner struct {
	BaseModel
	PublicID     int64         `gorm:"uniqueIndex;not null" json:"public_id"`
	Email        string        `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"`
	ContactName  string        `gorm:"type:varchar(64);not null;default:''" json:"contact_name"`
	PasswordHash string        `gorm:"type:char(64);not null" json:"-"`
	PhoneCipher  []byte        `gorm:"type:bytea" json:"-"`                // 手机号密文，不对外暴露
	PhoneHash    *string       `gorm:"uniqueIndex;type:char(64)" json:"-"` // 手机号哈希，用于查询
	Status       PartnerStatus `gorm:"type:varchar(24);not null;default:'pending_verification';index:idx_partners_status" json:"status"`
	Timezone     string        `gorm:"type:varchar(64);not null;default:'Asia/Kolkata'" json:"timezone"`
}

// TableName 指定表名
func (Partner) TableName() string {
	return "partners"
}
