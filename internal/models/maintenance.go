package models

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

type MaintenanceRequest struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	PropertyID  uuid.UUID         `json:"property_id" db:"property_id"`
	TenantID    uuid.UUID         `json:"tenant_id" db:"tenant_id"`
	Description string            `json:"description" db:"description"`
	Status      MaintenanceStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}
