package models

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus is a one-shot state machine: pending may move to accepted
// or declined exactly once, and neither terminal state transitions again.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// CanTransitionTo reports whether the transition s -> to is allowed.
func (s InvitationStatus) CanTransitionTo(to InvitationStatus) bool {
	if s != InvitationPending {
		return false
	}
	return to == InvitationAccepted || to == InvitationDeclined
}

// Terminal reports whether the invitation has been resolved.
func (s InvitationStatus) Terminal() bool {
	return s == InvitationAccepted || s == InvitationDeclined
}

type Invitation struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	LandlordID  uuid.UUID        `json:"landlord_id" db:"landlord_id"`
	TenantEmail string           `json:"tenant_email" db:"tenant_email"`
	PropertyID  uuid.UUID        `json:"property_id" db:"property_id"`
	LeaseID     *uuid.UUID       `json:"lease_id" db:"lease_id"`
	Status      InvitationStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}
