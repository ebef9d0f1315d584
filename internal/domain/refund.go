package domain

// RefundedAmount sums the line totals of every refunded item plus the
// booking's refund adjustment. The adjustment carries amount-only refunds and
// any clamping applied when item-level refunds exceeded what was still
// refundable.
func RefundedAmount(booking *Booking) int64 {
	refunded := booking.RefundedAdjustment

	for _, item := range booking.Items {
		if item.Status == ItemStatusRefunded {
			refunded += item.LineTotal()
		}
	}

	return refunded
}

// IsPartiallyRefunded reports whether some, but not all, of the booking's
// total has been refunded.
func IsPartiallyRefunded(booking *Booking) bool {
	refunded := RefundedAmount(booking)
	return refunded > 0 && refunded < booking.TotalAmount
}

// RemainingRefundable is the amount still eligible for refund.
func RemainingRefundable(booking *Booking) int64 {
	remaining := booking.TotalAmount - RefundedAmount(booking)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// ClampRefund bounds a requested refund amount to [0, remaining].
func ClampRefund(requestedCents, remainingCents int64) int64 {
	if requestedCents < 0 {
		return 0
	}

	if requestedCents > remainingCents {
		return remainingCents
	}

	return requestedCents
}
