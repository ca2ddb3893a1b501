package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"BistroHub/config"
)

var conn *amqp.Connection

// 交换机与队列拓扑
const (
	ExchangeNotification = "notification.topic"
	ExchangeScheduler    = "scheduler.delayed"
	ExchangeEvents       = "events.topic"

	QueueNotificationSMS   = "notification.sms"
	QueueNotificationEmail = "notification.email"
	QueueActivationHandoff = "scheduler.activation_handoff"
)

func Init() error {
	var err error
	url := config.Cfg.GetRabbitMQURL()

	conn, err = amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("failed to dial RabbitMQ: %w", err)
	}

	return declareTopology()
}

// declareTopology 声明交换机、队列和绑定。幂等，worker 和 server 都会调用。
func declareTopology() error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(ExchangeNotification, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare notification exchange: %w", err)
	}

	// 延迟交换机依赖 rabbitmq_delayed_message_exchange 插件
	if err := ch.ExchangeDeclare(ExchangeScheduler, "x-delayed-message", true, false, false, false, amqp.Table{
		"x-delayed-type": "topic",
	}); err != nil {
		return fmt.Errorf("failed to declare scheduler exchange: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeEvents, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare events exchange: %w", err)
	}

	bindings := []struct {
		queue      string
		exchange   string
		routingKey string
	}{
		{QueueNotificationSMS, ExchangeNotification, "notification.sms.*"},
		{QueueNotificationEmail, ExchangeNotification, "notification.email.*"},
		{QueueActivationHandoff, ExchangeScheduler, "scheduler.activation.*"},
	}

	for _, b := range bindings {
		if _, err := ch.QueueDeclare(b.queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", b.queue, err)
		}
		if err := ch.QueueBind(b.queue, b.routingKey, b.exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", b.queue, err)
		}
	}

	return nil
}

func Connection() *amqp.Connection {
	return conn
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
