package jobs

import (
	"context"
	"time"

	"desqworx-backend/internal/logger"
)

// SendLowCreditAlerts emails each company admin whose balance can no longer
// cover a single present mark.
func (jr *JobRunner) SendLowCreditAlerts() {
	jr.runWithRecovery("SendLowCreditAlerts", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		companies, err := jr.store.CompanyRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list companies for low-credit alerts", "error", err)
			return
		}

		alerted := 0
		for _, company := range companies {
			if company.SeatPrice <= 0 || company.Credits >= company.SeatPrice {
				continue
			}
			admin, err := jr.store.UserRepository.GetByID(ctx, company.AdminID)
			if err != nil {
				logger.Warn("No admin account for low-credit alert", "company_id", company.ID, "error", err)
				continue
			}
			if err := jr.services.Email.SendLowCreditAlert(ctx, admin.Email, company.Name, company.Credits, company.SeatPrice); err != nil {
				logger.Error("Failed to send low-credit alert", "company_id", company.ID, "error", err)
				continue
			}
			alerted++
		}
		logger.Info("Low-credit alerts sent", "count", alerted)
	})
}

// SendDailyDigest mails the system rollup for today to the configured
// address.
func (jr *JobRunner) SendDailyDigest() {
	jr.runWithRecovery("SendDailyDigest", func() {
		recipient := jr.config.Email.DigestEmail
		if recipient == "" {
			logger.Info("No digest recipient configured, skipping")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		rollup, err := jr.services.Dashboard.SystemRollup(ctx, "")
		if err != nil {
			logger.Error("Failed to compute system rollup for digest", "error", err)
			return
		}
		if err := jr.services.Email.SendDailyDigest(ctx, recipient, rollup); err != nil {
			logger.Error("Failed to send daily digest", "error", err)
		}
	})
}
