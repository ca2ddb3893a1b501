package sms

import (
	"context"
	"encoding/json"
	"fmt"

	"BistroHub/config"
)

// SendOTPSMS 发送验证码短信，signup 和 password_reset 共用模板
func SendOTPSMS(ctx context.Context, phone, code string) error {
	cfg := config.Cfg

	templateParam := map[string]string{
		"code": code,
	}
	paramJSON, err := json.Marshal(templateParam)
	if err != nil {
		return fmt.Errorf("failed to marshal template param: %w", err)
	}

	_, err = SendSingle(ctx, phone, cfg.SMSSignName, cfg.SMSTemplateCode, string(paramJSON))
	return err
}

// SendOnboardingReminderBatch 批量发送入驻提醒短信，
// 定时任务扫描出的停滞商户共用同一套模板参数
func SendOnboardingReminderBatch(ctx context.Context, phones []string, message string) error {
	if len(phones) == 0 {
		return fmt.Errorf("phones list is empty")
	}

	cfg := config.Cfg

	param := map[string]string{}
	if message != "" {
		param["message"] = message
	}
	paramJSON, err := json.Marshal(param)
	if err != nil {
		return fmt.Errorf("failed to marshal template param: %w", err)
	}

	templateParams := make([]string, len(phones))
	for i := range templateParams {
		templateParams[i] = string(paramJSON)
	}

	return SendBatch(ctx, phones, cfg.SMSSignName, cfg.SMSTemplateCode, templateParams)
}
