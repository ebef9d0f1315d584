package payment

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/refund"
)

type StripePaymentProvider struct {
	failureUrl string
	successUrl string
}

func NewStripePaymentProvider(failureUrl, successUrl string) *StripePaymentProvider {
	return &StripePaymentProvider{
		failureUrl: failureUrl,
		successUrl: successUrl,
	}
}

func (s *StripePaymentProvider) CreateCheckoutSession(booking *domain.Booking) (*stripe.CheckoutSession, error) {
	var lineItems []*stripe.CheckoutSessionLineItemParams

	for _, item := range booking.Items {
		if item.Status != domain.ItemStatusActive {
			continue
		}

		var name string
		switch item.ItemType {
		case domain.ItemTypeTicket:
			name = fmt.Sprintf("⛵ %s ticket", item.TicketType)
		case domain.ItemTypeMerchandise:
			name = "Trip merchandise"
			if item.VariantOption != nil {
				name = fmt.Sprintf("Trip merchandise (%s)", *item.VariantOption)
			}
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(item.PricePerUnit),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(name),
				},
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	// Discount, tax and tip are derived server-side, so they go on as
	// adjustment lines rather than Stripe-computed amounts.
	adjustment := booking.TaxAmount + booking.TipAmount - booking.DiscountAmount
	if adjustment > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(adjustment),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Tax, tip and discount adjustment"),
				},
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.successUrl),
		CancelURL:  stripe.String(s.failureUrl),
		Metadata: map[string]string{
			"booking_id":        strconv.Itoa(booking.ID),
			"confirmation_code": booking.ConfirmationCode,
		},
		CustomerEmail:     &booking.CustomerEmail,
		ClientReferenceID: stripe.String(booking.ConfirmationCode),
	}
	params.SetIdempotencyKey(uuid.NewString())

	return session.New(params)
}

func (s *StripePaymentProvider) Refund(paymentIntentID string, amountCents int64) (*stripe.Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Amount:        stripe.Int64(amountCents),
	}

	return refund.New(params)
}
