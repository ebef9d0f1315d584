package payment

import (
	"sync"

	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// MockPaymentProvider records calls and returns canned responses for tests.
type MockPaymentProvider struct {
	mu sync.Mutex

	CheckoutErr error
	RefundErr   error

	CheckoutBookings []int
	Refunds          []MockRefund
}

type MockRefund struct {
	PaymentIntentID string
	AmountCents     int64
}

func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{}
}

func (m *MockPaymentProvider) CreateCheckoutSession(booking *domain.Booking) (*stripe.CheckoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CheckoutErr != nil {
		return nil, m.CheckoutErr
	}

	m.CheckoutBookings = append(m.CheckoutBookings, booking.ID)

	return &stripe.CheckoutSession{
		ID:  "cs_test_mock",
		URL: "https://checkout.example.com/cs_test_mock",
	}, nil
}

func (m *MockPaymentProvider) Refund(paymentIntentID string, amountCents int64) (*stripe.Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.RefundErr != nil {
		return nil, m.RefundErr
	}

	m.Refunds = append(m.Refunds, MockRefund{
		PaymentIntentID: paymentIntentID,
		AmountCents:     amountCents,
	})

	return &stripe.Refund{ID: "re_test_mock", Amount: amountCents}, nil
}
