package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus tracks a tenant's expression of interest in a property. This
// workflow is independent of invitations: accepting an invitation does not
// resolve a matching request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

type Request struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	UserID     uuid.UUID     `json:"user_id" db:"user_id"`
	PropertyID uuid.UUID     `json:"property_id" db:"property_id"`
	Status     RequestStatus `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}
