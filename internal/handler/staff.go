package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"BistroHub/internal/middleware"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/service"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/pkg/response"
)

// InviteStaff 邀请员工
// POST /v1/staff
func InviteStaff(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	var req dto.InviteStaffRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Staff().Invite(ctx, partnerID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ListStaff 员工列表
// GET /v1/staff
func ListStaff(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	result, err := service.Staff().List(ctx, partnerID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpdateStaffRole 调整员工角色
// PATCH /v1/staff/:staff_id/role
func UpdateStaffRole(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	staffID, err := strconv.ParseInt(c.Param("staff_id"), 10, 64)
	if err != nil {
		response.Error(ctx, c, pkgerrors.StaffNotFound)
		return
	}

	var req dto.UpdateStaffRoleRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Staff().UpdateRole(ctx, partnerID, staffID, req.Role); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// RemoveStaff 移除员工
// DELETE /v1/staff/:staff_id
func RemoveStaff(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	staffID, err := strconv.ParseInt(c.Param("staff_id"), 10, 64)
	if err != nil {
		response.Error(ctx, c, pkgerrors.StaffNotFound)
		return
	}

	if err := service.Staff().Remove(ctx, partnerID, staffID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
