package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaseStatus is derived from the lease's date range. It is never advanced by
// a background process: LeaseStatusAt is the source of truth and read/update
// paths persist the recomputed value opportunistically.
type LeaseStatus string

const (
	LeaseUpcoming LeaseStatus = "upcoming"
	LeaseActive   LeaseStatus = "active"
	LeaseExpired  LeaseStatus = "expired"
)

// LeaseStatusAt derives the status of a lease spanning [start, end] at now.
func LeaseStatusAt(start, end, now time.Time) LeaseStatus {
	switch {
	case now.Before(start):
		return LeaseUpcoming
	case now.After(end):
		return LeaseExpired
	default:
		return LeaseActive
	}
}

type Lease struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	PropertyID   uuid.UUID   `json:"property_id" db:"property_id"`
	TenantID     uuid.UUID   `json:"tenant_id" db:"tenant_id"`
	StartDate    time.Time   `json:"start_date" db:"start_date"`
	EndDate      time.Time   `json:"end_date" db:"end_date"`
	RentAmount   float64     `json:"rent_amount" db:"rent_amount"`
	PaymentTerms string      `json:"payment_terms" db:"payment_terms"`
	Document     *string     `json:"document" db:"document"`
	Status       LeaseStatus `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// CurrentStatus recomputes the status from the lease dates.
func (l *Lease) CurrentStatus(now time.Time) LeaseStatus {
	return LeaseStatusAt(l.StartDate, l.EndDate, now)
}

// LeasePatch is the partial-update shape for a lease.
type LeasePatch struct {
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	RentAmount   *float64   `json:"rent_amount"`
	PaymentTerms *string    `json:"payment_terms"`
	Document     *string    `json:"document"`
}

// Apply merges the patch into l without touching status; callers recompute
// status from the merged dates.
func (patch *LeasePatch) Apply(l *Lease) {
	if patch.StartDate != nil {
		l.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		l.EndDate = *patch.EndDate
	}
	if patch.RentAmount != nil {
		l.RentAmount = *patch.RentAmount
	}
	if patch.PaymentTerms != nil {
		l.PaymentTerms = *patch.PaymentTerms
	}
	if patch.Document != nil {
		l.Document = patch.Document
	}
}

// LeaseSummary is the joined row used by listings and dashboards.
type LeaseSummary struct {
	Lease
	PropertyTitle   string `json:"property_title" db:"property_title"`
	PropertyAddress string `json:"property_address" db:"property_address"`
	TenantName      string `json:"tenant_name" db:"tenant_name"`
	TenantEmail     string `json:"tenant_email" db:"tenant_email"`
}
