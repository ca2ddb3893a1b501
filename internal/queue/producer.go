package queue

import (
	"fmt"
	"time"

	"BistroHub/internal/model"
	"BistroHub/pkg/logger"
	"BistroHub/pkg/snowflake"
	"BistroHub/storage/mq"

	"go.uber.org/zap"
)

// PublishNotification 发布通知任务（短信/邮件），routing key 按渠道和类别拼出
func PublishNotification(msg model.NotificationMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID()
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.Int64("partner_id", msg.PartnerID),
				zap.String("category", msg.Category),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("notification_%s_%d", msg.Channel, id)
	}
	if msg.ScheduledAt == "" {
		msg.ScheduledAt = time.Now().Format(time.RFC3339)
	}

	routingKey := fmt.Sprintf("notification.%s.%s", msg.Channel, msg.Category)

	err := mq.PublishMessage(
		mq.ExchangeNotification,
		routingKey,
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish notification",
			zap.String("message_id", msg.MessageID),
			zap.Int64("partner_id", msg.PartnerID),
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published notification",
		zap.String("message_id", msg.MessageID),
		zap.Int64("partner_id", msg.PartnerID),
		zap.String("routing_key", routingKey),
	)

	return nil
}

// PublishActivationHandoff 发布激活交接延迟消息。
// 商户在终点步骤停留片刻后由 worker 清理会话并转入激活邮件流程。
func PublishActivationHandoff(msg model.ActivationHandoffMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID()
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.Int64("partner_id", msg.PartnerID),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("activation_handoff_%d", id)
	}
	if msg.ScheduledAt == "" {
		msg.ScheduledAt = time.Now().Format(time.RFC3339)
	}

	delay := time.Duration(msg.DelaySeconds) * time.Second

	err := mq.PublishDelayedMessage(
		mq.ExchangeScheduler,
		"scheduler.activation.handoff",
		delay,
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish activation handoff message",
			zap.String("message_id", msg.MessageID),
			zap.Int64("partner_id", msg.PartnerID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published activation handoff message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("partner_id", msg.PartnerID),
		zap.Duration("delay", delay),
	)

	return nil
}

// PublishOnboardingCompletedEvent 发布入驻完成事件
func PublishOnboardingCompletedEvent(partnerID int64) error {
	event := model.EventMessage{
		EventKey:   "onboarding.completed",
		EventType:  "onboarding_completed",
		OccurredAt: time.Now().Format(time.RFC3339),
		Payload: map[string]interface{}{
			"partner_id": partnerID,
		},
	}

	err := mq.PublishMessage(
		mq.ExchangeEvents,
		"onboarding.completed",
		event,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish onboarding completed event",
			zap.Int64("partner_id", partnerID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// PublishOrderStatusEvent 发布订单状态变更事件
func PublishOrderStatusEvent(partnerID, orderID int64, from, to string) error {
	event := model.EventMessage{
		EventKey:   "order.status_changed",
		EventType:  "order_status_changed",
		OccurredAt: time.Now().Format(time.RFC3339),
		Payload: map[string]interface{}{
			"partner_id": partnerID,
			"order_id":   orderID,
			"from":       from,
			"to":         to,
		},
	}

	err := mq.PublishMessage(
		mq.ExchangeEvents,
		"order.status_changed",
		event,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish order status event",
			zap.Int64("partner_id", partnerID),
			zap.Int64("order_id", orderID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
