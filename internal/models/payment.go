package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus mirrors the gateway's view of a transaction.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID       uuid.UUID     `json:"id" db:"id"`
	LeaseID  uuid.UUID     `json:"lease_id" db:"lease_id"`
	TenantID uuid.UUID     `json:"tenant_id" db:"tenant_id"`
	Amount   float64       `json:"amount" db:"amount"`
	Status   PaymentStatus `json:"status" db:"status"`
	// TransactionID is unique system-wide. For direct payments it is a
	// generated UUID; for gateway payments it is the gateway reference, which
	// makes the verify path idempotent.
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
