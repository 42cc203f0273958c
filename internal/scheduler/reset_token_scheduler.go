package scheduler

import (
	"github.com/robfig/cron/v3"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/service"
	"github.com/udyogsetu/udyogsetu-backend/pkg/logger"
)

// ResetTokenScheduler purges expired password reset tokens on a schedule.
type ResetTokenScheduler struct {
	cron         *cron.Cron
	resetService service.PasswordResetService
}

func NewResetTokenScheduler(resetService service.PasswordResetService) *ResetTokenScheduler {
	return &ResetTokenScheduler{
		cron:         cron.New(),
		resetService: resetService,
	}
}

// Start schedules the hourly purge.
func (s *ResetTokenScheduler) Start() error {
	_, err := s.cron.AddFunc("0 * * * *", func() {
		logger.Info("Starting scheduled reset token purge", nil)

		removed, err := s.resetService.PurgeExpired()
		if err != nil {
			logger.Error("Failed to purge expired reset tokens", err)
			return
		}

		logger.Info("Expired reset tokens purged", map[string]interface{}{
			"removed": removed,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for reset token purge", err)
		return err
	}

	s.cron.Start()
	logger.Info("Reset token scheduler started successfully (hourly)", nil)

	return nil
}

// Stop halts the scheduler.
func (s *ResetTokenScheduler) Stop() {
	logger.Info("Stopping reset token scheduler...", nil)
	s.cron.Stop()
	logger.Info("Reset token scheduler stopped", nil)
}
