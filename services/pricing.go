package services

import (
	"math"
	"time"
)

// Pricing arithmetic for the booking lifecycle. These are pure functions so
// the refund rules can be tested without a database; the booking service
// applies their results inside its transactions.

// lateCancellationWindow is the cutoff before check-in under which a
// one-night penalty applies instead of a full refund.
const lateCancellationWindow = 24 * time.Hour

// loyaltyRate: 1 point per $10 of completed-stay spend.
const loyaltyRate = 10.0

// Round2 rounds to 2 decimal places (cents).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NightsBetween returns the number of nights a stay spans: ceil of the
// duration in days, never less than 1.
func NightsBetween(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// normalizeDate truncates t to midnight in its own location.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// wholeDaysBetween counts calendar days between the midnights of from and to.
func wholeDaysBetween(from, to time.Time) int {
	return int(math.Round(normalizeDate(to).Sub(normalizeDate(from)).Hours() / 24))
}

// CancellationQuote computes the stored total and refund for cancelling a
// confirmed booking at time now.
//
// At least 24h before check-in the full amount is refunded; the stored total
// is preserved as a record of the original charge. Inside 24h a one-night
// penalty applies: the new total is one night's rate, the rest is refunded.
func CancellationQuote(totalAmount float64, checkIn, checkOut, now time.Time) (newTotal, refund float64) {
	if checkIn.Sub(now) >= lateCancellationWindow {
		return totalAmount, totalAmount
	}
	nightly := totalAmount / float64(NightsBetween(checkIn, checkOut))
	newTotal = Round2(nightly)
	refund = Round2(totalAmount - newTotal)
	return newTotal, refund
}

// CheckoutQuote prorates the total for a stay ending at time now. Departing
// before the booked check-out date charges only the nights actually stayed;
// on-time or late departure leaves the total unchanged.
func CheckoutQuote(totalAmount float64, checkIn, checkOut, now time.Time) (newTotal, refund float64) {
	originalNights := wholeDaysBetween(checkIn, checkOut)
	if originalNights < 1 {
		originalNights = 1
	}
	actualNights := wholeDaysBetween(checkIn, now)
	if actualNights < 0 {
		actualNights = 0
	}
	if actualNights >= originalNights {
		return totalAmount, 0
	}
	newTotal = Round2(totalAmount / float64(originalNights) * float64(actualNights))
	refund = Round2(totalAmount - newTotal)
	return newTotal, refund
}

// ModifiedTotal reprices a confirmed booking whose dates changed. The nightly
// rate is derived from the current stored total and current stay length, then
// applied to the new stay length.
func ModifiedTotal(currentTotal float64, curIn, curOut, newIn, newOut time.Time) float64 {
	nightly := currentTotal / float64(NightsBetween(curIn, curOut))
	return Round2(nightly * float64(NightsBetween(newIn, newOut)))
}

// LoyaltyPointsForSpend converts a final stay total into loyalty points:
// floor(amount / 10), never negative.
func LoyaltyPointsForSpend(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Floor(amount / loyaltyRate))
}
