package models

import (
	"time"

	"github.com/google/uuid"
)

// PropertyStatus is the listing lifecycle. Deletion is soft: a deleted
// property stays in storage but is excluded from every non-owner read.
type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "active"
	PropertyArchived PropertyStatus = "archived"
	PropertyDeleted  PropertyStatus = "deleted"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyActive, PropertyArchived, PropertyDeleted:
		return true
	}
	return false
}

// PropertyType is the supported listing categories.
type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyCommercial PropertyType = "commercial"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyCommercial:
		return true
	}
	return false
}

// UtilityBillMaxAgeMonths bounds how old a utility bill document may be at
// create/update time.
const UtilityBillMaxAgeMonths = 2

// UtilityBillFresh reports whether a bill dated billDate is acceptable at
// time now.
func UtilityBillFresh(billDate, now time.Time) bool {
	return !billDate.Before(now.AddDate(0, -UtilityBillMaxAgeMonths, 0))
}

type Property struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	LandlordID      uuid.UUID      `json:"landlord_id" db:"landlord_id"`
	Title           string         `json:"title" db:"title"`
	Description     string         `json:"description" db:"description"`
	Address         string         `json:"address" db:"address"`
	UtilityBill     string         `json:"utility_bill" db:"utility_bill"`
	UtilityBillDate time.Time      `json:"utility_bill_date" db:"utility_bill_date"`
	Photos          []string       `json:"photos" db:"photos"`
	Rent            float64        `json:"rent" db:"rent"`
	LeaseDuration   int            `json:"lease_duration" db:"lease_duration"`
	Type            PropertyType   `json:"type" db:"type"`
	Status          PropertyStatus `json:"status" db:"status"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// PropertyPatch is the partial-update shape for a listing. Nil means the
// field was omitted and keeps its previous value; this is deliberate so a
// zero rent or empty photo list can never silently mean "unchanged".
type PropertyPatch struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	Address         *string         `json:"address"`
	UtilityBill     *string         `json:"utility_bill"`
	UtilityBillDate *time.Time      `json:"utility_bill_date"`
	Photos          *[]string       `json:"photos"`
	Rent            *float64        `json:"rent"`
	LeaseDuration   *int            `json:"lease_duration"`
	Type            *PropertyType   `json:"type"`
	Status          *PropertyStatus `json:"status"`
}

// Apply merges the patch into p.
func (patch *PropertyPatch) Apply(p *Property) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.UtilityBill != nil {
		p.UtilityBill = *patch.UtilityBill
	}
	if patch.UtilityBillDate != nil {
		p.UtilityBillDate = *patch.UtilityBillDate
	}
	if patch.Photos != nil {
		p.Photos = *patch.Photos
	}
	if patch.Rent != nil {
		p.Rent = *patch.Rent
	}
	if patch.LeaseDuration != nil {
		p.LeaseDuration = *patch.LeaseDuration
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}
