package jobs

import (
	"context"
	"time"

	"timing-rental-backend/internal/logger"
)

// SendOverdueRentalReminders emails every client holding an ACTIVE rental
// whose expected end date has passed. Read-only: rentals stay ACTIVE until
// someone returns or cancels them explicitly.
func (jr *JobRunner) SendOverdueRentalReminders() {
	jr.runWithRecovery("SendOverdueRentalReminders", func() {
		ctx := context.Background()

		overdue, err := jr.reg.Rentals().ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}
		if len(overdue) == 0 {
			logger.Info("No overdue rentals")
			return
		}

		sent := 0
		for i := range overdue {
			rental := &overdue[i]
			client := rental.Client
			if client == nil || client.Email == nil || *client.Email == "" {
				logger.Debug("Overdue rental client has no email",
					"rental_id", rental.ID,
					"client_id", rental.ClientID)
				continue
			}
			if err := jr.emailSvc.SendOverdueRentalReminder(ctx, *client.Email, client.Name, rental); err != nil {
				logger.Error("Failed to send overdue reminder",
					"rental_id", rental.ID,
					"client_id", client.ID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent overdue rental reminders", "overdue", len(overdue), "sent", sent)
	})
}
