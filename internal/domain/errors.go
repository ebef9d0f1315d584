package domain

import "errors"

var (
	ErrRecordNotFound         = errors.New("record not found")
	ErrEditConflict           = errors.New("edit conflict")
	ErrCapacityExceeded       = errors.New("not enough seats remaining on the selected boat")
	ErrInventoryExhausted     = errors.New("not enough tickets remaining for the selected ticket type")
	ErrDiscountCodeInactive   = errors.New("discount code is no longer active")
	ErrDiscountCodeExpired    = errors.New("discount code has expired")
	ErrPricingMismatch        = errors.New("submitted pricing does not match the server-side derivation")
	ErrRefundExceedsRemaining = errors.New("refund amount exceeds the remaining refundable amount")
	ErrInvalidStatusChange    = errors.New("booking status transition is not allowed")
	ErrSelectionNotFound      = errors.New("selection not found or has expired")
	ErrSelectionConflict      = errors.New("a held selection does not belong to the current session")
)
