package domain

import "github.com/stripe/stripe-go/v82"

type PaymentProvider interface {
	CreateCheckoutSession(booking *Booking) (*stripe.CheckoutSession, error)
	Refund(paymentIntentID string, amountCents int64) (*stripe.Refund, error)
}
