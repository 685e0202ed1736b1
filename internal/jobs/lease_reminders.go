package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"rentora/internal/models"
	"rentora/internal/repositories"
	"rentora/internal/services"
)

// ReminderWindow is how far ahead of a lease's end date tenants are notified.
const ReminderWindow = 30 * 24 * time.Hour

// LeaseReminderService finds leases approaching their end date and emails the
// tenant. It runs on the background scheduler once a day.
type LeaseReminderService struct {
	leaseRepo repositories.LeaseRepository
	notifier  services.NotificationService
	now       func() time.Time
}

func NewLeaseReminderService(leaseRepo repositories.LeaseRepository, notifier services.NotificationService) *LeaseReminderService {
	return &LeaseReminderService{
		leaseRepo: leaseRepo,
		notifier:  notifier,
		now:       time.Now,
	}
}

// ExpiringLeases returns the leases ending within the reminder window.
func (s *LeaseReminderService) ExpiringLeases(ctx context.Context) ([]*models.LeaseSummary, error) {
	now := s.now()
	return s.leaseRepo.EndingBetween(ctx, now, now.Add(ReminderWindow))
}

// SendReminders emails each tenant whose lease is expiring. Delivery failures
// are logged per lease and do not stop the run.
func (s *LeaseReminderService) SendReminders(ctx context.Context) error {
	leases, err := s.ExpiringLeases(ctx)
	if err != nil {
		log.Printf("Failed to list expiring leases: %v", err)
		return err
	}

	if len(leases) == 0 {
		log.Println("No leases expiring within the reminder window")
		return nil
	}

	sent := 0
	for _, lease := range leases {
		subject := "Your lease is expiring soon"
		body := fmt.Sprintf("Your lease for %s at %s ends on %s. Please contact your landlord to renew.",
			lease.PropertyTitle, lease.PropertyAddress, lease.EndDate.Format("2006-01-02"))

		if err := s.notifier.SendEmail(ctx, lease.TenantEmail, subject, body); err != nil {
			log.Printf("Failed to send lease reminder for lease %s to %s: %v", lease.ID, lease.TenantEmail, err)
			continue
		}
		sent++
	}

	log.Printf("Sent %d of %d lease expiry reminders", sent, len(leases))
	return nil
}

// ScheduledReminderRun is the entry point the scheduler invokes.
func (s *LeaseReminderService) ScheduledReminderRun(ctx context.Context) error {
	log.Println("Starting scheduled lease reminder run")
	return s.SendReminders(ctx)
}
