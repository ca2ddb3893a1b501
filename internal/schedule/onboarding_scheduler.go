package schedule

// 入驻催办调度器：周期性扫描长时间停留在入驻向导的商户，投递催办短信

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"BistroHub/config"
	"BistroHub/internal/cache"
	"BistroHub/internal/model"
	"BistroHub/internal/queue"
	"BistroHub/internal/repository"
	"BistroHub/pkg/logger"
	"BistroHub/utils"
)

const reminderBatchSize = 500

var (
	schedulerOnce sync.Once
	schedulerInst *OnboardingScheduler
)

type OnboardingScheduler struct {
	logger      *zap.Logger
	jobRunning  bool
	jobMu       sync.Mutex
	lastJobTime time.Time
}

func GetScheduler() *OnboardingScheduler {
	schedulerOnce.Do(func() {
		schedulerInst = &OnboardingScheduler{
			logger: logger.Logger,
		}
	})
	return schedulerInst
}

// RemindStalledOnboarding 扫描停留超过阈值的入驻商户并投递催办通知
func (s *OnboardingScheduler) RemindStalledOnboarding(ctx context.Context) error {
	s.jobMu.Lock()
	if s.jobRunning {
		s.jobMu.Unlock()
		s.logger.Info("Reminder job already running, skipping")
		return nil
	}
	s.jobRunning = true
	s.jobMu.Unlock()

	defer func() {
		s.jobMu.Lock()
		s.jobRunning = false
		s.jobMu.Unlock()
	}()

	startTime := time.Now()
	s.lastJobTime = startTime

	cutoff := startTime.AddDate(0, 0, -config.Cfg.OnboardingReminderAfterDays)
	s.logger.Info("Starting onboarding reminder scheduler",
		zap.Time("start_time", startTime),
		zap.Time("cutoff", cutoff),
	)

	partners, err := repository.Partner().ListStalledOnboarding(ctx, cutoff, reminderBatchSize)
	if err != nil {
		s.logger.Error("Failed to query stalled partners", zap.Error(err))
		return fmt.Errorf("failed to query stalled partners: %w", err)
	}

	if len(partners) == 0 {
		s.logger.Info("No stalled onboarding partners found")
		return nil
	}

	s.logger.Info("Found stalled onboarding partners",
		zap.Int("partner_count", len(partners)),
	)

	today := startTime.Format("2006-01-02")
	published := 0
	errCount := 0

	for _, partner := range partners {
		fresh, err := cache.TryMarkReminderSent(ctx, today, partner.PublicID)
		if err != nil {
			s.logger.Warn("Failed to check reminder sent status",
				zap.Int64("partner_id", partner.PublicID),
				zap.Error(err),
			)
			continue
		}
		if !fresh {
			continue
		}

		if err := s.publishReminder(partner); err != nil {
			errCount++
			s.logger.Error("Failed to publish onboarding reminder",
				zap.Int64("partner_id", partner.PublicID),
				zap.Error(err),
			)
			continue
		}
		published++
	}

	s.logger.Info("Onboarding reminder scheduler completed",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("published", published),
		zap.Int("error_count", errCount),
	)

	if errCount > 0 {
		return fmt.Errorf("scheduler completed with %d errors", errCount)
	}

	return nil
}

func (s *OnboardingScheduler) publishReminder(partner *model.Partner) error {
	if len(partner.PhoneCipher) == 0 {
		return fmt.Errorf("partner %d has no phone on record", partner.PublicID)
	}

	phone, err := utils.DecryptSensitive(partner.PhoneCipher)
	if err != nil {
		return fmt.Errorf("failed to decrypt phone: %w", err)
	}

	return queue.PublishNotification(model.NotificationMessage{
		PartnerID: partner.PublicID,
		Category:  "onboarding_reminder",
		Channel:   "sms",
		Recipient: phone,
		TemplateParams: map[string]string{
			"contact_name": partner.ContactName,
		},
	})
}
