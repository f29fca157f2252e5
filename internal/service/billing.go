package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillableHours rounds the elapsed stay up to whole hours: a one-minute
// stay bills as one hour, exactly sixty minutes bills one hour, sixty-one
// bills two. Non-positive stays bill a single hour.
func BillableHours(entry, exit time.Time) int64 {
	elapsed := exit.Sub(entry)
	if elapsed <= 0 {
		return 1
	}

	hours := int64(elapsed / time.Hour)
	if elapsed%time.Hour != 0 {
		hours++
	}
	return hours
}

// BillAmount multiplies billed hours by the hourly price.
func BillAmount(hours int64, pricePerHour decimal.Decimal) decimal.Decimal {
	return pricePerHour.Mul(decimal.NewFromInt(hours))
}
