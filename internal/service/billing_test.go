package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillableHours(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		exit  time.Time
		hours int64
	}{
		{"one minute rounds up to an hour", entry.Add(time.Minute), 1},
		{"exactly one hour", entry.Add(time.Hour), 1},
		{"an hour and a second rounds up", entry.Add(time.Hour + time.Second), 2},
		{"two and a half hours", entry.Add(150 * time.Minute), 3},
		{"full day", entry.Add(24 * time.Hour), 24},
		{"zero elapsed still bills one hour", entry, 1},
		{"clock skew bills one hour", entry.Add(-time.Minute), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hours, BillableHours(entry, tt.exit))
		})
	}
}

func TestBillAmount(t *testing.T) {
	price := decimal.NewFromFloat(5.00)

	assert.True(t, decimal.NewFromFloat(5.00).Equal(BillAmount(1, price)))
	assert.True(t, decimal.NewFromFloat(15.00).Equal(BillAmount(3, price)))

	custom := decimal.NewFromFloat(7.50)
	assert.Equal(t, "22.50", BillAmount(3, custom).StringFixed(2))
}
