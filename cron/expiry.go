package cron

import (
	"time"

	"tourbook/config"
	bookingRepo "tourbook/database/repository/booking"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartExpirySweeper periodically times out bookings the gateway never
// called back about. The cutoff comes from PENDING_EXPIRY_MINUTES.
func StartExpirySweeper(repo bookingRepo.BookingRepository, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 15m", func() {
		cutoff := time.Now().Add(-time.Duration(config.AppConfig.PendingExpiryMinutes) * time.Minute)
		expired, err := repo.ExpirePending(cutoff)
		if err != nil {
			logger.Error("pending booking expiry sweep failed", zap.Error(err))
			return
		}
		if expired > 0 {
			logger.Info("expired stale pending bookings", zap.Int64("count", expired))
		}
	})
	if err != nil {
		logger.Fatal("failed to schedule expiry sweep", zap.Error(err))
	}

	c.Start()
	return c
}
