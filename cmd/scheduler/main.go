package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"BistroHub/config"
	"BistroHub/internal/schedule"
	"BistroHub/pkg/logger"
	"BistroHub/pkg/snowflake"
	"BistroHub/storage"
)

func main() {

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Logger.Info("Scheduler received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage for scheduler", zap.Error(err))
	}
	defer storage.Close()

	// 考虑与 worker 和 server 作区分
	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake for scheduler", zap.Error(err))
	}

	logger.Logger.Info("Scheduler service starting",
		zap.String("service", "bistrohub-scheduler"),
		zap.String("environment", config.Cfg.Environment),
	)

	go runOnboardingReminderLoop(ctx)

	<-ctx.Done()

	logger.Logger.Info("Scheduler service shutting down gracefully")
}

// runOnboardingReminderLoop 每天固定时间执行一次入驻催办调度
// 当前实现：每天本地时间 10:00 触发一次
func runOnboardingReminderLoop(ctx context.Context) {
	s := schedule.GetScheduler()

	// 在 development 环境下，为了方便本地调试，将每日调度改为每 1 分钟执行一次
	if config.Cfg.Environment == "development" {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		logger.Logger.Info("Onboarding reminder scheduler running in development mode with 1m interval")

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
				if err := s.RemindStalledOnboarding(runCtx); err != nil {
					logger.Logger.Error("Onboarding reminder run failed (development interval)", zap.Error(err))
				}
				cancel()
			}
		}
	}

	for {
		// 计算下一次运行时间（今天/明天的 10:00）
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location())
		if !next.After(now) {
			// 如果已经过了今天 10:00，则设置为明天
			next = next.Add(24 * time.Hour)
		}

		delay := time.Until(next)
		logger.Logger.Info("Scheduled next onboarding reminder run",
			zap.Time("now", now),
			zap.Time("next_run", next),
			zap.Duration("delay", delay),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			if err := s.RemindStalledOnboarding(runCtx); err != nil {
				logger.Logger.Error("Onboarding reminder run failed", zap.Error(err))
			}
			cancel()
		}
	}
}
