package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtilityBillFresh(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		billDate time.Time
		fresh    bool
	}{
		{"dated today", now, true},
		{"one month old", now.AddDate(0, -1, 0), true},
		{"exactly two months old", now.AddDate(0, -2, 0), true},
		{"just over two months", now.AddDate(0, -2, 0).Add(-time.Hour), false},
		{"three months old", now.AddDate(0, -3, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fresh, UtilityBillFresh(tt.billDate, now))
		})
	}
}

func TestPropertyPatchApply(t *testing.T) {
	property := &Property{
		Title:  "Garden Flat",
		Rent:   900,
		Type:   PropertyApartment,
		Status: PropertyActive,
		Photos: []string{"https://cdn.example.com/a.jpg"},
	}

	newRent := 950.0
	newStatus := PropertyArchived
	emptyPhotos := []string{}
	patch := &PropertyPatch{
		Rent:   &newRent,
		Status: &newStatus,
		Photos: &emptyPhotos,
	}
	patch.Apply(property)

	assert.Equal(t, 950.0, property.Rent)
	assert.Equal(t, PropertyArchived, property.Status)
	assert.Empty(t, property.Photos)
	assert.Equal(t, "Garden Flat", property.Title)
	assert.Equal(t, PropertyApartment, property.Type)
}

func TestPropertyStatusValid(t *testing.T) {
	assert.True(t, PropertyActive.Valid())
	assert.True(t, PropertyArchived.Valid())
	assert.True(t, PropertyDeleted.Valid())
	assert.False(t, PropertyStatus("vacant").Valid())
}
