package dto

// ========== Staff 相关 DTO ==========

// InviteStaffRequest 邀请员工
type InviteStaffRequest struct {
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Role        string `json:"role" binding:"required"`
}

// UpdateStaffRoleRequest 调整员工角色
type UpdateStaffRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// StaffMemberData 员工视图
type StaffMemberData struct {
	StaffID     string `json:"staff_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	InvitedAt   string `json:"invited_at"`
}

// ListStaffResponse 员工列表响应
type ListStaffResponse struct {
	Members []StaffMemberData `json:"members"`
}
