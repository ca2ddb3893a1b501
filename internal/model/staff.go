package model

// StaffRole 门店成员角色
type StaffRole string

const (
	StaffRoleOwner   StaffRole = "owner"
	StaffRoleManager StaffRole = "manager"
	StaffRoleStaff   StaffRole = "staff"
)

// ValidStaffRoles 可分配的角色集合；owner 只在建档时产生，不可被指派
var ValidStaffRoles = map[StaffRole]bool{
	StaffRoleManager: true,
	StaffRoleStaff:   true,
}

// StaffMember 门店成员，归属于某个商户账号

type StaffMember struct {
	BaseModel
	PartnerID   int64     `gorm:"not null;index:idx_staff_partner" json:"partner_id"`
	PublicID    int64     `gorm:"uniqueIndex;not null" json:"public_id"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	DisplayName string    `gorm:"type:varchar(64);not null;default:''" json:"display_name"`
	Role        StaffRole `gorm:"type:varchar(16);not null;default:'staff'" json:"role"`
	Invited     bool      `gorm:"not null;default:true" json:"invited"` // 受邀未接受时为 true
}

// TableName 指定表名
func (StaffMember) TableName() string {
	return "staff_members"
}
