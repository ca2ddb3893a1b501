package handler

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"

	"BistroHub/internal/middleware"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/service"
	"BistroHub/pkg/response"
)

// GetMe 当前商户账号快照
// GET /v1/partners/me
func GetMe(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	result, err := service.Partner().Me(ctx, partnerID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetProfile 获取商家档案
// GET /v1/partners/me/profile
func GetProfile(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	profile, err := service.Profile().Fetch(ctx, partnerID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, service.ToProfileData(profile))
}

// UpdateProfile 更新商家档案（部分字段）
// PATCH /v1/partners/me/profile
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	profile, err := service.Profile().Update(ctx, partnerID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, service.ToProfileData(profile))
}

// UpdateBusinessHours 营业时间调整（面板设置页）
// PUT /v1/partners/me/business-hours
func UpdateBusinessHours(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	var form dto.BusinessHoursForm
	if err := c.BindAndValidate(&form); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Partner().UpdateBusinessHours(ctx, partnerID, &form)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
