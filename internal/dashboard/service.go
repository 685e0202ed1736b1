// Package dashboard derives read-only summary views for both roles. It never
// mutates; every failure is a wrapped store error surfacing as a 500.
package dashboard

import (
	"context"
	"errors"
	"log"
	"time"

	"rentora/internal/caching"
	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/repositories"

	"github.com/google/uuid"
)

// PaymentDueDay is the day of the month rent is considered due.
const PaymentDueDay = 5

const (
	recentItems  = 5
	lastPayments = 4
	snapshotTTL  = 2 * time.Minute
)

// PaymentState is the tenant-facing payment health indicator.
type PaymentState string

const (
	PaymentPaid    PaymentState = "paid"
	PaymentDue     PaymentState = "due"
	PaymentOverdue PaymentState = "overdue"
)

type LandlordSummary struct {
	Properties         int                          `json:"properties"`
	Leases             int                          `json:"leases"`
	PendingInvitations int                          `json:"pending_invitations"`
	ActiveLeases       []*models.LeaseSummary       `json:"active_leases"`
	TotalRevenue       float64                      `json:"total_revenue"`
	Collected          float64                      `json:"collected"`
	RecentMaintenance  []*models.MaintenanceRequest `json:"recent_maintenance"`
	RecentProperties   []*models.Property           `json:"recent_properties"`
}

type TenantSummary struct {
	Leases             int                  `json:"leases"`
	PendingInvitations int                  `json:"pending_invitations"`
	ActiveLease        *models.LeaseSummary `json:"active_lease"`
	PaymentStatus      PaymentState         `json:"payment_status"`
	LastPayments       []*models.Payment    `json:"last_payments"`
}

// TenantFilter optionally pins the dashboard to a specific lease; a mismatch
// with the tenant's actual active lease is a validation failure.
type TenantFilter struct {
	LeaseID    *uuid.UUID
	RentAmount *float64
}

type Service struct {
	propertyRepo    repositories.PropertyRepository
	leaseRepo       repositories.LeaseRepository
	invitationRepo  repositories.InvitationRepository
	paymentRepo     repositories.PaymentRepository
	maintenanceRepo repositories.MaintenanceRepository
	cache           caching.CacheService
	now             func() time.Time
}

func NewService(propertyRepo repositories.PropertyRepository, leaseRepo repositories.LeaseRepository,
	invitationRepo repositories.InvitationRepository, paymentRepo repositories.PaymentRepository,
	maintenanceRepo repositories.MaintenanceRepository, cache caching.CacheService) *Service {
	return &Service{
		propertyRepo:    propertyRepo,
		leaseRepo:       leaseRepo,
		invitationRepo:  invitationRepo,
		paymentRepo:     paymentRepo,
		maintenanceRepo: maintenanceRepo,
		cache:           cache,
		now:             time.Now,
	}
}

func (s *Service) LandlordSummary(ctx context.Context, landlordID uuid.UUID) (*LandlordSummary, error) {
	if s.cache != nil {
		cached := &LandlordSummary{}
		if hit, err := s.cache.GetDashboard(ctx, "landlord", landlordID, cached); err == nil && hit {
			return cached, nil
		}
	}

	summary := &LandlordSummary{}
	var err error

	if summary.Properties, err = s.propertyRepo.CountByLandlord(ctx, landlordID); err != nil {
		return nil, err
	}
	if summary.Leases, err = s.leaseRepo.CountByLandlord(ctx, landlordID); err != nil {
		return nil, err
	}
	if summary.PendingInvitations, err = s.invitationRepo.CountPendingByLandlord(ctx, landlordID); err != nil {
		return nil, err
	}

	now := s.now()
	if summary.ActiveLeases, err = s.leaseRepo.ActiveByLandlord(ctx, landlordID, now); err != nil {
		return nil, err
	}
	for _, lease := range summary.ActiveLeases {
		summary.TotalRevenue += lease.RentAmount
	}

	if summary.Collected, err = s.paymentRepo.SumCompletedByLandlord(ctx, landlordID); err != nil {
		return nil, err
	}
	if summary.RecentMaintenance, err = s.maintenanceRepo.RecentByLandlord(ctx, landlordID, recentItems); err != nil {
		return nil, err
	}
	if summary.RecentProperties, err = s.propertyRepo.RecentByLandlord(ctx, landlordID, recentItems); err != nil {
		return nil, err
	}

	s.storeSnapshot(ctx, "landlord", landlordID, summary)
	return summary, nil
}

func (s *Service) TenantSummary(ctx context.Context, caller common.Caller, filter TenantFilter) (*TenantSummary, error) {
	summary := &TenantSummary{}
	var err error

	if summary.Leases, err = s.leaseRepo.CountByTenant(ctx, caller.ID); err != nil {
		return nil, err
	}
	if summary.PendingInvitations, err = s.invitationRepo.CountPendingByEmail(ctx, caller.Email); err != nil {
		return nil, err
	}

	now := s.now()
	active, err := s.leaseRepo.ActiveByTenant(ctx, caller.ID, now)
	if err != nil && !errors.Is(err, repositories.ErrNoRows) {
		return nil, err
	}

	if active == nil && (filter.LeaseID != nil || filter.RentAmount != nil) {
		// A filter naming a lease is a mismatch when there is nothing to match.
		return nil, common.Validationf("no active lease matches the supplied filter")
	}

	if active != nil {
		if filter.LeaseID != nil && *filter.LeaseID != active.ID {
			return nil, common.Validationf("lease_id does not match the active lease")
		}
		if filter.RentAmount != nil && *filter.RentAmount != active.RentAmount {
			return nil, common.Validationf("rent_amount does not match the active lease")
		}
		active.Status = models.LeaseActive
		summary.ActiveLease = active

		lastPaid, err := s.paymentRepo.LastCompletedAt(ctx, active.ID)
		if err != nil {
			return nil, err
		}
		summary.PaymentStatus = PaymentStateAt(lastPaid, now)
	}

	if summary.LastPayments, err = s.paymentRepo.RecentByTenant(ctx, caller.ID, lastPayments); err != nil {
		return nil, err
	}
	return summary, nil
}

// PaymentStateAt applies the due-day heuristic: a completed payment inside
// the current month means paid; with none, the tenant is due until the
// month's due day passes and overdue after it.
func PaymentStateAt(lastPaid *time.Time, now time.Time) PaymentState {
	if lastPaid != nil && lastPaid.Year() == now.Year() && lastPaid.Month() == now.Month() {
		return PaymentPaid
	}
	if now.Day() <= PaymentDueDay {
		return PaymentDue
	}
	return PaymentOverdue
}

func (s *Service) storeSnapshot(ctx context.Context, role string, userID uuid.UUID, payload interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetDashboard(ctx, role, userID, payload, snapshotTTL); err != nil {
		log.Printf("failed to cache %s dashboard for %s: %v", role, userID, err)
	}
}
