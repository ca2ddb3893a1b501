package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"BistroHub/internal/model"
	"BistroHub/pkg/logger"
	"BistroHub/pkg/metrics"
	"BistroHub/pkg/sms"
)

var (
	notificationSvc  *NotificationService
	notificationOnce sync.Once
)

func Notification() *NotificationService {
	notificationOnce.Do(func() {
		notificationSvc = &NotificationService{}
	})
	return notificationSvc
}

// NotificationService worker 侧的通知投递。
// 短信走 pkg/sms；邮件投递目前只落日志，接入邮件网关时在这里替换。
type NotificationService struct{}

// Deliver 按渠道分发一条通知消息
func (s *NotificationService) Deliver(ctx context.Context, msg model.NotificationMessage) error {
	start := time.Now()

	var err error
	switch msg.Channel {
	case "sms":
		err = s.deliverSMS(ctx, msg)
	case "email":
		err = s.deliverEmail(ctx, msg)
	default:
		err = fmt.Errorf("unsupported notification channel: %s", msg.Channel)
	}

	metrics.GetMetrics().RecordNotificationSent(ctx, msg.Channel, msg.Category, err == nil, time.Since(start).Seconds())
	return err
}

func (s *NotificationService) deliverSMS(ctx context.Context, msg model.NotificationMessage) error {
	switch msg.Category {
	case "otp":
		return sms.SendOTPSMS(ctx, msg.Recipient, msg.TemplateParams["code"])
	case "onboarding_reminder":
		return sms.SendOnboardingReminderBatch(ctx, []string{msg.Recipient}, msg.TemplateParams["message"])
	default:
		return fmt.Errorf("unsupported sms category: %s", msg.Category)
	}
}

// TODO: 接入事务性邮件服务商后替换为真实投递
func (s *NotificationService) deliverEmail(ctx context.Context, msg model.NotificationMessage) error {
	logger.Logger.Info("Email notification delivered (log sink)",
		zap.String("message_id", msg.MessageID),
		zap.String("category", msg.Category),
		zap.String("recipient", msg.Recipient),
	)
	return nil
}
