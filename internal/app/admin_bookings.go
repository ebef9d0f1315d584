package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
)

func (app *Application) GetAdminBookings(w http.ResponseWriter, r *http.Request) {
	params, err := parseAdminBookingsParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.BookingFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
			Sort:     "-id",
		},
	}

	if params.Code != nil {
		filters.ConfirmationCode = *params.Code
	}
	if params.Email != nil {
		filters.CustomerEmail = *params.Email
	}
	if params.TripId != nil {
		filters.TripID = *params.TripId
	}
	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}

	bookings, metadata, err := app.bookingRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiBookings := make([]api.Booking, len(bookings))
	for i, booking := range bookings {
		apiBookings[i] = toApiBooking(booking)
	}

	resp := api.BookingListResponse{
		Bookings: apiBookings,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAdminBookingById(w http.ResponseWriter, r *http.Request) {
	bookingId, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
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

// UpdateBooking applies item quantity changes to a booking and re-derives its
// pricing. The tax rate is preserved from the booking's original amounts so
// an edit never shifts the booking into a different effective rate, and the
// submitted pricing must match the server-side derivation exactly.
func (app *Application) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	bookingId, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateBookingRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if booking.Status == domain.BookingStatusCancelled || booking.Status == domain.BookingStatusCompleted {
		app.unprocessableEntityResponse(w, r, domain.ErrInvalidStatusChange.Error())
		return
	}

	updates := make([]domain.BookingItemQuantityUpdate, len(input.ItemQuantityUpdates))
	for i, update := range input.ItemQuantityUpdates {
		updates[i] = domain.BookingItemQuantityUpdate{
			ItemID:   update.Id,
			Quantity: update.Quantity,
		}
	}

	updatedItems, err := applyQuantityUpdates(booking, updates)
	if err != nil {
		app.unprocessableEntityResponse(w, r, err.Error())
		return
	}

	err = app.checkEditCapacity(r, booking, updatedItems)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCapacityExceeded), errors.Is(err, domain.ErrInventoryExhausted):
			app.conflictResponse(w, r, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var discount domain.Discount
	if booking.DiscountCodeID != nil {
		code, err := app.discountRepo.GetById(r.Context(), *booking.DiscountCodeID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		// The code stays applied for the life of the booking even if it has
		// since been deactivated or expired.
		discount = code
	}

	pricingItems := make([]domain.PricingItem, 0, len(updatedItems))
	for _, item := range updatedItems {
		if item.Status != domain.ItemStatusActive {
			continue
		}
		pricingItems = append(pricingItems, domain.PricingItem{Quantity: item.Quantity, PricePerUnit: item.PricePerUnit})
	}

	taxRate := domain.PreservedTaxRate(booking.Subtotal, booking.DiscountAmount, booking.TaxAmount)

	derived := domain.DerivePricing(pricingItems, discount, taxRate, input.TipAmount)

	submitted := domain.PricingBreakdown{
		Subtotal:       input.Subtotal,
		DiscountAmount: input.DiscountAmount,
		TaxAmount:      input.TaxAmount,
		TipAmount:      input.TipAmount,
		TotalAmount:    input.TotalAmount,
	}

	if derived != submitted {
		logger.Warn("booking edit rejected: submitted pricing does not match server derivation",
			"booking_id", bookingId,
			"submitted_total", submitted.TotalAmount, "derived_total", derived.TotalAmount)
		app.unprocessableEntityResponse(w, r, domain.ErrPricingMismatch.Error())
		return
	}

	err = app.bookingRepo.UpdateItems(r.Context(), booking, updates, derived)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	updated, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookingResponse(w, r, http.StatusOK, updated)
}

func (app *Application) CheckInBooking(w http.ResponseWriter, r *http.Request) {
	bookingId, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if !booking.CanCheckIn() {
		app.unprocessableEntityResponse(w, r, domain.ErrInvalidStatusChange.Error())
		return
	}

	err = app.bookingRepo.UpdateStatus(r.Context(), bookingId, domain.BookingStatusCheckedIn, booking.Version)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	booking.Status = domain.BookingStatusCheckedIn

	app.writeBookingResponse(w, r, http.StatusOK, booking)
}

func (app *Application) RefundBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	bookingId, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.RefundRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if booking.PaymentStatus != domain.PaymentStatusPaid &&
		booking.PaymentStatus != domain.PaymentStatusPartiallyRefunded {
		app.unprocessableEntityResponse(w, r, "booking has no refundable payment")
		return
	}

	remaining := domain.RemainingRefundable(booking)
	if remaining == 0 {
		app.unprocessableEntityResponse(w, r, domain.ErrRefundExceedsRemaining.Error())
		return
	}

	var requested, itemSum int64

	switch {
	case len(input.ItemIds) > 0:
		itemSum, err = refundableItemSum(booking, input.ItemIds)
		if err != nil {
			app.unprocessableEntityResponse(w, r, err.Error())
			return
		}
		requested = itemSum
	case input.RefundAmountCents != nil:
		requested = *input.RefundAmountCents
	default:
		// Omitting both the amount and the item list means a full refund of
		// whatever is still refundable.
		requested = remaining
	}

	amount := domain.ClampRefund(requested, remaining)
	if amount == 0 {
		app.unprocessableEntityResponse(w, r, "nothing to refund")
		return
	}

	if amount < requested {
		logger.Warn("refund clamped to remaining refundable amount",
			"booking_id", bookingId, "requested", requested, "clamped", amount)
	}

	if booking.PaymentIntentID != nil {
		_, err = app.paymentProvider.Refund(*booking.PaymentIntentID, amount)
		if err != nil {
			app.serverErrorResponse(w, r, fmt.Errorf("payment provider refund failed: %w", err))
			return
		}
	}

	paymentStatus := domain.PaymentStatusPartiallyRefunded
	if amount == remaining {
		paymentStatus = domain.PaymentStatusRefunded
	}

	// The adjustment records whatever part of the refund is not covered by
	// the flipped items' line totals.
	adjustment := amount - itemSum

	err = app.bookingRepo.ApplyRefund(r.Context(), booking, input.ItemIds, adjustment, input.RefundReason, input.RefundNotes, paymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	updated, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RefundResponse{
		RefundedAmount:      domain.RefundedAmount(updated),
		RemainingRefundable: domain.RemainingRefundable(updated),
		PaymentStatus:       api.PaymentStatus(updated.PaymentStatus),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// applyQuantityUpdates returns a copy of the booking's items with the
// requested quantity changes applied. Zero quantities remove the item.
func applyQuantityUpdates(booking *domain.Booking, updates []domain.BookingItemQuantityUpdate) ([]domain.BookingItem, error) {
	byID := make(map[int]domain.BookingItem, len(booking.Items))
	order := make([]int, 0, len(booking.Items))

	for _, item := range booking.Items {
		byID[item.ID] = item
		order = append(order, item.ID)
	}

	for _, update := range updates {
		item, ok := byID[update.ItemID]
		if !ok {
			return nil, fmt.Errorf("item %d does not belong to this booking", update.ItemID)
		}

		if item.Status != domain.ItemStatusActive {
			return nil, fmt.Errorf("item %d has been refunded and cannot be edited", update.ItemID)
		}

		if update.Quantity == 0 {
			delete(byID, update.ItemID)
			continue
		}

		item.Quantity = update.Quantity
		byID[update.ItemID] = item
	}

	items := make([]domain.BookingItem, 0, len(byID))
	for _, id := range order {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}

	return items, nil
}

// checkEditCapacity verifies the edited booking still fits on its boat. The
// booking's own sold seats are handed back before comparing, so an edit that
// only shrinks quantities always passes.
func (app *Application) checkEditCapacity(r *http.Request, booking *domain.Booking, updatedItems []domain.BookingItem) error {
	var newTicketCount int
	var tripID, boatID int

	for _, item := range updatedItems {
		if item.ItemType == domain.ItemTypeTicket && item.Status == domain.ItemStatusActive {
			newTicketCount += item.Quantity
			tripID = item.TripID
			boatID = item.BoatID
		}
	}

	if newTicketCount == 0 || newTicketCount <= booking.TicketCount() {
		return nil
	}

	availability, err := app.tripRepo.GetBoatAvailabilityForBoat(r.Context(), tripID, boatID)
	if err != nil {
		return err
	}

	if newTicketCount > availability.RemainingCapacity+booking.TicketCount() {
		return domain.ErrCapacityExceeded
	}

	return nil
}

func refundableItemSum(booking *domain.Booking, itemIDs []int) (int64, error) {
	byID := make(map[int]domain.BookingItem, len(booking.Items))
	for _, item := range booking.Items {
		byID[item.ID] = item
	}

	var sum int64

	for _, id := range itemIDs {
		item, ok := byID[id]
		if !ok {
			return 0, fmt.Errorf("item %d does not belong to this booking", id)
		}

		if item.Status != domain.ItemStatusActive {
			return 0, fmt.Errorf("item %d has already been refunded", id)
		}

		sum += item.LineTotal()
	}

	return sum, nil
}

func parseAdminBookingsParams(r *http.Request) (api.GetAdminBookingsParams, error) {
	var params api.GetAdminBookingsParams

	query := r.URL.Query()

	if value := query.Get("code"); value != "" {
		params.Code = &value
	}
	if value := query.Get("email"); value != "" {
		params.Email = &value
	}

	for name, dst := range map[string]**int{
		"tripId":   &params.TripId,
		"page":     &params.Page,
		"pageSize": &params.PageSize,
	} {
		value := query.Get(name)
		if value == "" {
			continue
		}

		parsed, err := strconv.Atoi(value)
		if err != nil {
			return params, fmt.Errorf("invalid %s parameter", name)
		}

		*dst = &parsed
	}

	return params, nil
}
