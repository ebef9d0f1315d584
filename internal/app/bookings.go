package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

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

	sessionID := app.wizardSessionId(r)

	// Booking creation is idempotent per wizard session: a retry after a lost
	// response returns the booking already created, never a duplicate.
	existing, err := app.bookingRepo.GetByWizardSessionId(r.Context(), sessionID)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	if existing != nil {
		logger.Info("returning existing booking for wizard session", "booking_id", existing.ID)
		app.writeBookingResponse(w, r, http.StatusOK, existing)
		return
	}

	items, err := toDomainBookingItems(input.Items)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	tripID := items[0].TripID
	boatID := items[0].BoatID
	for _, item := range items {
		if item.TripID != tripID || item.BoatID != boatID {
			app.badRequestResponse(w, r, errors.New("all items must belong to the same trip and boat"))
			return
		}
	}

	trip, err := app.tripRepo.GetById(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if trip.Status != domain.TripStatusScheduled {
		app.unprocessableEntityResponse(w, r, "trip is no longer open for booking")
		return
	}

	err = app.verifyItemPricesAndCapacity(r, items, tripID, boatID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCapacityExceeded), errors.Is(err, domain.ErrInventoryExhausted):
			app.conflictResponse(w, r, err.Error())
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrPricingMismatch):
			app.unprocessableEntityResponse(w, r, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var discount domain.Discount
	var discountCodeID *int

	if input.DiscountCode != nil {
		code, err := app.discountRepo.GetByCode(r.Context(), *input.DiscountCode)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.unprocessableEntityResponse(w, r, "discount code is not valid")
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}

		err = code.Validate(time.Now())
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrDiscountCodeExpired):
				app.goneResponse(w, r, err.Error())
			default:
				app.unprocessableEntityResponse(w, r, err.Error())
			}
			return
		}

		discount = code
		discountCodeID = &code.ID
	}

	booking := &domain.Booking{
		WizardSessionID: sessionID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		Status:          domain.BookingStatusConfirmed,
		DiscountCodeID:  discountCodeID,
		Items:           items,
	}

	derived := domain.DerivePricing(
		booking.PricingItems(),
		discount,
		domain.TaxRateFromPercent(trip.TaxRatePercent),
		input.TipAmount,
	)

	submitted := domain.PricingBreakdown{
		Subtotal:       input.Subtotal,
		DiscountAmount: input.DiscountAmount,
		TaxAmount:      input.TaxAmount,
		TipAmount:      input.TipAmount,
		TotalAmount:    input.TotalAmount,
	}

	if derived != submitted {
		logger.Warn("booking rejected: submitted pricing does not match server derivation",
			"submitted_total", submitted.TotalAmount, "derived_total", derived.TotalAmount)
		app.unprocessableEntityResponse(w, r, domain.ErrPricingMismatch.Error())
		return
	}

	booking.Subtotal = derived.Subtotal
	booking.DiscountAmount = derived.DiscountAmount
	booking.TaxAmount = derived.TaxAmount
	booking.TipAmount = derived.TipAmount
	booking.TotalAmount = derived.TotalAmount

	if booking.TotalAmount == 0 {
		booking.PaymentStatus = domain.PaymentStatusFree
	} else {
		booking.PaymentStatus = domain.PaymentStatusPending
	}

	booking.ConfirmationCode, err = domain.GenerateConfirmationCode()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			// Lost the idempotency race: another request for this session
			// created the booking first.
			existing, lookupErr := app.bookingRepo.GetByWizardSessionId(r.Context(), sessionID)
			if lookupErr != nil {
				app.serverErrorResponse(w, r, lookupErr)
				return
			}
			app.writeBookingResponse(w, r, http.StatusOK, existing)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Seats are recorded in the database now, the wizard hold can go.
	selection, err := app.getSelection(r.Context(), sessionID)
	if err == nil {
		err = app.releaseSelection(r.Context(), sessionID, selection)
	}
	if err != nil && !errors.Is(err, domain.ErrSelectionNotFound) {
		logger.Error("failed to release wizard selection after booking", "error", err)
	}

	if booking.PaymentStatus == domain.PaymentStatusFree {
		app.sendConfirmationEmail(booking)
	}

	app.writeBookingResponse(w, r, http.StatusCreated, booking)
}

func (app *Application) GetBookingByConfirmationCode(w http.ResponseWriter, r *http.Request, confirmationCode string) {
	err := app.validator.Var(confirmationCode, "confirmation_code")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	booking, err := app.bookingRepo.GetByConfirmationCode(r.Context(), confirmationCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.writeBookingResponse(w, r, http.StatusOK, booking)
}

// verifyItemPricesAndCapacity checks submitted unit prices against the
// catalog and re-checks seat capacity and merchandise inventory right before
// a booking is written.
func (app *Application) verifyItemPricesAndCapacity(r *http.Request, items []domain.BookingItem, tripID, boatID int, sessionID string) error {
	availability, err := app.tripRepo.GetBoatAvailabilityForBoat(r.Context(), tripID, boatID)
	if err != nil {
		return err
	}

	othersHeld, err := app.heldSeats(r.Context(), tripID, boatID, sessionID)
	if err != nil {
		return err
	}

	var ticketCount int
	perType := make(map[string]int)

	for _, item := range items {
		switch item.ItemType {
		case domain.ItemTypeTicket:
			pricing, ok := availability.PricingFor(item.TicketType)
			if !ok {
				return fmt.Errorf("%w: unknown ticket type %q", domain.ErrPricingMismatch, item.TicketType)
			}
			if pricing.Price != item.PricePerUnit {
				return domain.ErrPricingMismatch
			}

			ticketCount += item.Quantity
			perType[item.TicketType] += item.Quantity

			if perType[item.TicketType] > pricing.Remaining {
				return domain.ErrInventoryExhausted
			}
		case domain.ItemTypeMerchandise:
			merch, err := app.merchandiseRepo.GetById(r.Context(), *item.TripMerchandiseID)
			if err != nil {
				return err
			}
			if merch.TripID != tripID {
				return fmt.Errorf("%w: merchandise item %d does not belong to trip %d", domain.ErrPricingMismatch, merch.ID, tripID)
			}
			if merch.Price != item.PricePerUnit {
				return domain.ErrPricingMismatch
			}
			if item.Quantity > merch.AvailableFor(item.VariantOption) {
				return domain.ErrInventoryExhausted
			}
		}
	}

	remaining := availability.RemainingCapacity - othersHeld
	if ticketCount > remaining {
		return domain.ErrCapacityExceeded
	}

	return nil
}

func (app *Application) sendConfirmationEmail(booking *domain.Booking) {
	app.background(func() {
		data := map[string]any{
			"customerName":     booking.CustomerName,
			"confirmationCode": booking.ConfirmationCode,
			"totalAmount":      booking.TotalAmount,
		}

		err := app.mailer.Send(booking.CustomerEmail, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send booking confirmation email",
				"booking_id", booking.ID, "error", err)
		}
	})
}

func (app *Application) writeBookingResponse(w http.ResponseWriter, r *http.Request, status int, booking *domain.Booking) {
	resp := api.BookingResponse{
		Booking: toApiBooking(booking),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDomainBookingItems(inputs []api.BookingItemInput) ([]domain.BookingItem, error) {
	items := make([]domain.BookingItem, len(inputs))

	for i, input := range inputs {
		item := domain.BookingItem{
			TripID:            input.TripId,
			BoatID:            input.BoatId,
			ItemType:          domain.ItemType(input.ItemType),
			TripMerchandiseID: input.TripMerchandiseId,
			VariantOption:     input.VariantOption,
			Quantity:          input.Quantity,
			PricePerUnit:      input.PricePerUnit,
			Status:            domain.ItemStatusActive,
		}

		switch item.ItemType {
		case domain.ItemTypeTicket:
			if input.TicketType == nil || *input.TicketType == "" {
				return nil, errors.New("ticket items must specify a ticket type")
			}
			item.TicketType = *input.TicketType
		case domain.ItemTypeMerchandise:
			if input.TripMerchandiseId == nil {
				return nil, errors.New("merchandise items must reference a trip merchandise record")
			}
		}

		items[i] = item
	}

	return items, nil
}

func toApiBooking(booking *domain.Booking) api.Booking {
	items := make([]api.BookingItem, len(booking.Items))
	for i, item := range booking.Items {
		items[i] = toApiBookingItem(item)
	}

	return api.Booking{
		Id:                  booking.ID,
		ConfirmationCode:    booking.ConfirmationCode,
		CustomerName:        booking.CustomerName,
		CustomerEmail:       booking.CustomerEmail,
		CustomerPhone:       booking.CustomerPhone,
		Status:              api.BookingStatus(booking.Status),
		PaymentStatus:       api.PaymentStatus(booking.PaymentStatus),
		Subtotal:            booking.Subtotal,
		DiscountAmount:      booking.DiscountAmount,
		TaxAmount:           booking.TaxAmount,
		TipAmount:           booking.TipAmount,
		TotalAmount:         booking.TotalAmount,
		RefundedAmount:      domain.RefundedAmount(booking),
		RemainingRefundable: domain.RemainingRefundable(booking),
		Items:               items,
		CreatedAt:           booking.CreatedAt,
	}
}

func toApiBookingItem(item domain.BookingItem) api.BookingItem {
	apiItem := api.BookingItem{
		Id:                item.ID,
		TripId:            item.TripID,
		BoatId:            item.BoatID,
		ItemType:          api.ItemType(item.ItemType),
		TripMerchandiseId: item.TripMerchandiseID,
		VariantOption:     item.VariantOption,
		Quantity:          item.Quantity,
		PricePerUnit:      item.PricePerUnit,
		Status:            api.ItemStatus(item.Status),
		RefundReason:      item.RefundReason,
		RefundNotes:       item.RefundNotes,
	}

	if item.TicketType != "" {
		ticketType := item.TicketType
		apiItem.TicketType = &ticketType
	}

	return apiItem
}
