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

// GetOnboardingSession 获取入驻会话视图
// GET /v1/onboarding/session
func GetOnboardingSession(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	result, err := service.Onboarding().GetSession(ctx, partnerID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SetOnboardingFormData 写入当前步骤的表单数据
// PUT /v1/onboarding/form-data
func SetOnboardingFormData(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	var req dto.SetFormDataRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Onboarding().SetFormData(ctx, partnerID, req.Step, req.Payload); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// GoToOnboardingStep 直接跳转到指定步骤；非法跳转静默拒绝并返回当前视图
// POST /v1/onboarding/goto
func GoToOnboardingStep(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	var req dto.GoToStepRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Onboarding().GoToStep(ctx, partnerID, req.Step)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GoBackOnboardingStep 回退到上一步
// POST /v1/onboarding/back
func GoBackOnboardingStep(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	result, err := service.Onboarding().GoBack(ctx, partnerID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SubmitOnboardingStep 提交当前步骤并推进流程
// POST /v1/onboarding/submit
func SubmitOnboardingStep(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	var req dto.SubmitStepRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Onboarding().Submit(ctx, partnerID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// RequestOnboardingEmailConfirm 发送商家邮箱确认码
// POST /v1/onboarding/email-confirm
func RequestOnboardingEmailConfirm(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	if err := service.Onboarding().RequestEmailConfirm(ctx, partnerID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// ResetOnboarding 重置入驻会话（调试/客服通道）
// POST /v1/onboarding/reset
func ResetOnboarding(ctx context.Context, c *app.RequestContext) {
	partnerID, ok := middleware.GetPartnerIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("partner ID not found in context"))
		return
	}

	if err := service.Onboarding().Reset(ctx, partnerID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
