package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaultsStatus(t *testing.T) {
	record := TireRecord{Counterparty: "Acme", Product: "205/55 R16"}
	record.Normalize()
	assert.Equal(t, StatusEnRoute, record.Status)

	record.Status = StatusDelivered
	record.Normalize()
	assert.Equal(t, StatusDelivered, record.Status)
}

func TestNormalizeDerivesQuantity(t *testing.T) {
	tests := []struct {
		name      string
		unit      float64
		total     float64
		submitted int
		want      int
	}{
		{"exact division", 200, 1000, 0, 5},
		{"overrides submitted quantity", 200, 1000, 99, 5},
		{"rounds up from half", 100, 250, 0, 3},
		{"rounds down below half", 100, 240, 0, 2},
		{"zero unit price keeps quantity", 0, 1000, 7, 7},
		{"zero total keeps quantity", 200, 0, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := TireRecord{UnitPrice: tt.unit, TotalPrice: tt.total, Quantity: tt.submitted}
			record.Normalize()
			assert.Equal(t, tt.want, record.Quantity)
		})
	}
}

func TestNormalizeClearsBatterySeason(t *testing.T) {
	record := TireRecord{Group: GroupBattery, Season: SeasonWinter}
	record.Normalize()
	assert.Empty(t, record.Season)

	record = TireRecord{Group: GroupPassenger, Season: SeasonWinter}
	record.Normalize()
	assert.Equal(t, SeasonWinter, record.Season)
}

func TestActive(t *testing.T) {
	assert.True(t, (&TireRecord{Status: StatusEnRoute}).Active())
	assert.False(t, (&TireRecord{Status: StatusReviewed}).Active())
	assert.False(t, (&TireRecord{Status: StatusEnRoute, IsRemoved: true}).Active())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("SHIPPED"))
	assert.False(t, ValidStatus(""))
}
