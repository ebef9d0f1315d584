package app

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const maxWebhookBodyBytes = 65536

func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateCheckoutSessionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetByConfirmationCode(r.Context(), input.ConfirmationCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if booking.PaymentStatus != domain.PaymentStatusPending {
		app.conflictResponse(w, r, "booking is not awaiting payment")
		return
	}

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CheckoutSessionResponse{
		RedirectUrl: checkoutSession.URL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), app.config.Stripe.WebhookSecret)
	if err != nil {
		logger.Warn("webhook signature verification failed", "error", err)
		app.badRequestResponse(w, r, errors.New("invalid webhook signature"))
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		err = app.handleCheckoutCompleted(r, event.Data.Raw)
	case "checkout.session.expired":
		err = app.handleCheckoutExpired(r, event.Data.Raw)
	default:
		logger.Info("ignoring unhandled webhook event", "type", event.Type)
	}

	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (app *Application) handleCheckoutCompleted(r *http.Request, raw json.RawMessage) error {
	logger := app.contextGetLogger(r)

	var checkoutSession stripe.CheckoutSession

	err := json.Unmarshal(raw, &checkoutSession)
	if err != nil {
		return err
	}

	bookingID, err := strconv.Atoi(checkoutSession.Metadata["booking_id"])
	if err != nil {
		return errors.New("webhook checkout session is missing a booking id")
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingID)
	if err != nil {
		return err
	}

	if booking.PaymentStatus == domain.PaymentStatusPaid {
		// Stripe retries webhooks, a duplicate delivery is not an error.
		logger.Info("booking already marked as paid", "booking_id", bookingID)
		return nil
	}

	if checkoutSession.PaymentIntent != nil {
		err = app.bookingRepo.SetPaymentIntent(r.Context(), bookingID, checkoutSession.PaymentIntent.ID)
		if err != nil {
			return err
		}
	}

	err = app.bookingRepo.UpdatePaymentStatus(r.Context(), bookingID, domain.PaymentStatusPaid)
	if err != nil {
		return err
	}

	logger.Info("booking payment completed", "booking_id", bookingID)

	app.sendConfirmationEmail(booking)

	return nil
}

func (app *Application) handleCheckoutExpired(r *http.Request, raw json.RawMessage) error {
	logger := app.contextGetLogger(r)

	var checkoutSession stripe.CheckoutSession

	err := json.Unmarshal(raw, &checkoutSession)
	if err != nil {
		return err
	}

	bookingID, err := strconv.Atoi(checkoutSession.Metadata["booking_id"])
	if err != nil {
		return errors.New("webhook checkout session is missing a booking id")
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingID)
	if err != nil {
		return err
	}

	if booking.PaymentStatus != domain.PaymentStatusPending {
		return nil
	}

	logger.Info("checkout session expired", "booking_id", bookingID)

	return app.bookingRepo.UpdatePaymentStatus(r.Context(), bookingID, domain.PaymentStatusFailed)
}
