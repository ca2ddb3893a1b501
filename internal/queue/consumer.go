package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"BistroHub/internal/cache"
	"BistroHub/internal/model"
	"BistroHub/pkg/errors"
	"BistroHub/pkg/logger"
	"BistroHub/storage/mq"
)

// NotificationService worker 侧的通知投递入口
type NotificationService interface {
	Deliver(ctx context.Context, msg model.NotificationMessage) error
}

// ActivationService 激活交接处理入口
type ActivationService interface {
	HandleActivationHandoff(ctx context.Context, partnerID int64) error
}

var (
	notificationService NotificationService
	activationService   ActivationService
)

// SetNotificationService 设置通知服务（worker 启动时调用）
func SetNotificationService(s NotificationService) {
	notificationService = s
}

// SetActivationService 设置激活交接服务（worker 启动时调用）
func SetActivationService(s ActivationService) {
	activationService = s
}

// StartNotificationSMSConsumer 启动短信通知消费者
func StartNotificationSMSConsumer(ctx context.Context) error {
	return startNotificationConsumer(ctx, mq.QueueNotificationSMS, "bistrohub-worker-sms")
}

// StartNotificationEmailConsumer 启动邮件通知消费者
func StartNotificationEmailConsumer(ctx context.Context) error {
	return startNotificationConsumer(ctx, mq.QueueNotificationEmail, "bistrohub-worker-email")
}

func startNotificationConsumer(ctx context.Context, queue, tag string) error {
	handler := func(body []byte) error {
		var msg model.NotificationMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("unmarshal notification message: %v", err)}
		}

		fresh, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 检查失败继续处理，宁可重复不可丢失
		} else if !fresh {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("message %s already processed", msg.MessageID)}
		}

		logger.Logger.Info("Processing notification",
			zap.String("message_id", msg.MessageID),
			zap.Int64("partner_id", msg.PartnerID),
			zap.String("category", msg.Category),
			zap.String("channel", msg.Channel),
		)

		if err := notificationService.Deliver(ctx, msg); err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to deliver notification: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         queue,
		ConsumerTag:   tag,
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartAllConsumers 启动全部消费者并阻塞到 ctx 取消
func StartAllConsumers(ctx context.Context) {
	starters := map[string]func(context.Context) error{
		"notification-sms":   StartNotificationSMSConsumer,
		"notification-email": StartNotificationEmailConsumer,
		"activation-handoff": StartActivationHandoffConsumer,
	}

	for name, start := range starters {
		go func(name string, start func(context.Context) error) {
			if err := start(ctx); err != nil {
				logger.Logger.Error("Consumer exited",
					zap.String("consumer", name),
					zap.Error(err),
				)
			}
		}(name, start)
	}

	<-ctx.Done()
}

// StartActivationHandoffConsumer 启动激活交接消费者。
// 延迟消息到期后清理入驻会话、吊销 refresh token，商户转入激活邮件流程。
func StartActivationHandoffConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.ActivationHandoffMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("unmarshal activation handoff message: %v", err)}
		}

		fresh, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		} else if !fresh {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("message %s already processed", msg.MessageID)}
		}

		logger.Logger.Info("Processing activation handoff",
			zap.String("message_id", msg.MessageID),
			zap.Int64("partner_id", msg.PartnerID),
		)

		if err := activationService.HandleActivationHandoff(ctx, msg.PartnerID); err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to handle activation handoff: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         mq.QueueActivationHandoff,
		ConsumerTag:   "bistrohub-worker-activation",
		PrefetchCount: 5,
		Handler:       handler,
	})
}
