package metrics

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics OpenTelemetry 指标集合
type OTelMetrics struct {
	// 入驻相关指标
	OnboardingSubmitTotal    metric.Int64Counter
	OnboardingSubmitDuration metric.Float64Histogram
	OnboardingSubmitDropped  metric.Int64Counter
	OnboardingCompletedTotal metric.Int64Counter

	// 通知投递指标
	NotificationSentTotal metric.Int64Counter
	NotificationDuration  metric.Float64Histogram
}

var (
	// 全局指标实例
	metrics *OTelMetrics
	// meter 用于创建指标
	meter = otel.Meter("bistrohub")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error

	metrics = &OTelMetrics{}

	metrics.OnboardingSubmitTotal, err = meter.Int64Counter(
		"onboarding_submit_total",
		metric.WithDescription("Total number of onboarding step submissions"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return err
	}

	metrics.OnboardingSubmitDuration, err = meter.Float64Histogram(
		"onboarding_submit_duration_seconds",
		metric.WithDescription("Time spent syncing a step submission with the profile service"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.OnboardingSubmitDropped, err = meter.Int64Counter(
		"onboarding_submit_dropped_total",
		metric.WithDescription("Submissions dropped because another one was in flight"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return err
	}

	metrics.OnboardingCompletedTotal, err = meter.Int64Counter(
		"onboarding_completed_total",
		metric.WithDescription("Partners that reached the end of the onboarding flow"),
		metric.WithUnit("{partner}"),
	)
	if err != nil {
		return err
	}

	metrics.NotificationSentTotal, err = meter.Int64Counter(
		"notification_sent_total",
		metric.WithDescription("Total number of notifications delivered"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return err
	}

	metrics.NotificationDuration, err = meter.Float64Histogram(
		"notification_delivery_duration_seconds",
		metric.WithDescription("Time spent delivering a notification"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	return nil
}

// GetMetrics 获取全局指标实例；未初始化时返回空集，调用安全
func GetMetrics() *OTelMetrics {
	if metrics == nil {
		return &OTelMetrics{}
	}
	return metrics
}

// RecordOnboardingSubmit 记录一次提交及其耗时
func (m *OTelMetrics) RecordOnboardingSubmit(ctx context.Context, step string, success bool, duration float64) {
	if m.OnboardingSubmitTotal == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("step", step),
		attribute.String("status", statusLabel(success)),
	}

	m.OnboardingSubmitTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.OnboardingSubmitDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.String("step", step),
	))
}

// RecordOnboardingSubmitDropped 记录被在途防抖拒绝的提交
func (m *OTelMetrics) RecordOnboardingSubmitDropped(ctx context.Context, step string) {
	if m.OnboardingSubmitDropped == nil {
		return
	}
	m.OnboardingSubmitDropped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("step", step),
	))
}

// RecordOnboardingCompleted 记录入驻完成
func (m *OTelMetrics) RecordOnboardingCompleted(ctx context.Context, partnerID int64) {
	if m.OnboardingCompletedTotal == nil {
		return
	}
	m.OnboardingCompletedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("partner_id", strconv.FormatInt(partnerID, 10)),
	))
}

// RecordNotificationSent 记录通知投递
func (m *OTelMetrics) RecordNotificationSent(ctx context.Context, channel, category string, success bool, duration float64) {
	if m.NotificationSentTotal == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("channel", channel),
		attribute.String("category", category),
		attribute.String("status", statusLabel(success)),
	}

	m.NotificationSentTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.NotificationDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("category", category),
	))
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "failed"
}
