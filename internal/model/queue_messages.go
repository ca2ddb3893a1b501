package model

// NotificationMessage 通知任务消息（短信/邮件），由 worker 消费
type NotificationMessage struct {
	MessageID      string            `json:"message_id"`
	PartnerID      int64             `json:"partner_id"`
	Category       string            `json:"category"` // otp, email_confirm, staff_invite, onboarding_reminder, activation
	Channel        string            `json:"channel"`  // sms, email
	Recipient      string            `json:"recipient"`
	TemplateParams map[string]string `json:"template_params,omitempty"`
	ScheduledAt    string            `json:"scheduled_at"`
}

// ActivationHandoffMessage 入驻收尾后的延迟交接消息：
// 清理会话快照、吊销 refresh token，把商户交给激活邮件流程
type ActivationHandoffMessage struct {
	MessageID    string `json:"message_id"`
	PartnerID    int64  `json:"partner_id"`
	ScheduledAt  string `json:"scheduled_at"`
	DelaySeconds int    `json:"delay_seconds"`
}

// EventMessage 领域事件消息
type EventMessage struct {
	EventKey   string                 `json:"event_key"`
	EventType  string                 `json:"event_type"`
	OccurredAt string                 `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload"`
}
