package model

// UploadKind 上传文件的业务用途
type UploadKind string

const (
	UploadKindIdentityDocument  UploadKind = "identity_document"
	UploadKindFoodLicense       UploadKind = "food_license"
	UploadKindBankStatement     UploadKind = "bank_statement"
	UploadKindMenuImage         UploadKind = "menu_image"
	UploadKindPaymentScreenshot UploadKind = "payment_screenshot"
)

// ValidUploadKinds 允许的上传用途集合
var ValidUploadKinds = map[UploadKind]bool{
	UploadKindIdentityDocument:  true,
	UploadKindFoodLicense:       true,
	UploadKindBankStatement:     true,
	UploadKindMenuImage:         true,
	UploadKindPaymentScreenshot: true,
}

// UploadedFile 上传文件登记；入驻载荷只允许用 StorageKey 引用文件，
// 不允许携带文件原始内容

type UploadedFile struct {
	BaseModel
	PartnerID   int64      `gorm:"not null;index:idx_uploads_partner" json:"partner_id"`
	StorageKey  string     `gorm:"uniqueIndex;type:varchar(64);not null" json:"storage_key"`
	Kind        UploadKind `gorm:"type:varchar(32);not null" json:"kind"`
	FileName    string     `gorm:"type:varchar(255);not null;default:''" json:"file_name"`
	ContentType string     `gorm:"type:varchar(128);not null;default:''" json:"content_type"`
	SizeBytes   int64      `gorm:"not null;default:0" json:"size_bytes"`
}

// TableName 指定表名
func (UploadedFile) TableName() string {
	return "uploaded_files"
}
