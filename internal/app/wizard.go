package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

const selectionTTL = 30 * time.Minute

// holdSeatsScript reserves seats for a wizard session against a trip+boat
// pairing. Holds live in a hash keyed by session id, each value encoded as
// "count:expiresAt" so stale holds can be pruned lazily inside the script.
// The grant is capped at whatever is left after every other live hold, never
// rejected.
var holdSeatsScript = redis.NewScript(`
    -- KEYS[1] = seat holds hash for a trip+boat pairing
    -- ARGV = [sessionID, seats, ttl, maxSeats]

    local now = tonumber(redis.call("TIME")[1])
    local held = 0

    local entries = redis.call("HGETALL", KEYS[1])
    for i = 1, #entries, 2 do
        local field = entries[i]
        local count, expiry = string.match(entries[i+1], "(%d+):(%d+)")
        if expiry == nil or tonumber(expiry) <= now then
            redis.call("HDEL", KEYS[1], field)
        elseif field ~= ARGV[1] then
            held = held + tonumber(count)
        end
    end

    local available = tonumber(ARGV[4]) - held
    if available < 0 then
        available = 0
    end

    local granted = tonumber(ARGV[2])
    if granted > available then
        granted = available
    end

    if granted > 0 then
        redis.call("HSET", KEYS[1], ARGV[1], granted .. ":" .. (now + tonumber(ARGV[3])))
    else
        redis.call("HDEL", KEYS[1], ARGV[1])
    end

    redis.call("EXPIRE", KEYS[1], ARGV[3])

    return granted
`)

func (app *Application) PutWizardSelection(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.WizardSelectionRequest

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

	trip, err := app.tripRepo.GetById(r.Context(), input.TripId)
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

	availability, err := app.tripRepo.GetBoatAvailabilityForBoat(r.Context(), input.TripId, input.BoatId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	sessionID := app.wizardSessionId(r)

	dbRemaining := availability.RemainingCapacity

	othersHeld, err := app.heldSeats(r.Context(), input.TripId, input.BoatId, sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	availability.RemainingCapacity -= othersHeld
	if availability.RemainingCapacity < 0 {
		availability.RemainingCapacity = 0
	}

	selection := domain.NewSelection(input.TripId, input.BoatId)

	for _, ticket := range input.Tickets {
		selection.SetTicketQuantity(ticket.TicketType, ticket.Quantity, availability)
	}

	for _, item := range input.Merchandise {
		merch, err := app.merchandiseRepo.GetById(r.Context(), item.TripMerchandiseId)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.notFoundResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}

		if merch.TripID != input.TripId {
			app.badRequestResponse(w, r, fmt.Errorf("merchandise item %d does not belong to trip %d", merch.ID, input.TripId))
			return
		}

		selection.SetMerchandiseQuantity(merch, item.VariantOption, item.Quantity)
	}

	granted, err := holdSeatsScript.Run(
		r.Context(),
		app.redis,
		[]string{seatHoldsKey(input.TripId, input.BoatId)},
		sessionID,
		selection.TotalTickets(),
		int(selectionTTL.Seconds()),
		dbRemaining,
	).Int()
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("seats couldn't be held: %w", err))
		return
	}

	if granted < selection.TotalTickets() {
		// Another session grabbed seats between the availability read and the
		// hold. Cap the selection to what was actually granted.
		logger.Warn("selection capped by concurrent holds",
			"requested", selection.TotalTickets(), "granted", granted)
		trimTickets(selection, granted)
	}

	var discount domain.Discount
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
	}

	pricing := domain.DerivePricing(
		selection.PricingItems(),
		discount,
		domain.TaxRateFromPercent(trip.TaxRatePercent),
		input.TipAmount,
	)

	selectionBytes, err := json.Marshal(selection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.redis.Set(r.Context(), wizardSelectionKey(sessionID), selectionBytes, selectionTTL).Err()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toApiWizardSelection(selection, pricing)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteWizardSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := app.wizardSessionId(r)

	selection, err := app.getSelection(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelectionNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.releaseSelection(r.Context(), sessionID, selection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getSelection loads the wizard selection held in Redis for a session.
func (app *Application) getSelection(ctx context.Context, sessionID string) (*domain.Selection, error) {
	selectionBytes, err := app.redis.Get(ctx, wizardSelectionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSelectionNotFound
		}

		return nil, err
	}

	var selection domain.Selection

	err = json.Unmarshal(selectionBytes, &selection)
	if err != nil {
		return nil, err
	}

	return &selection, nil
}

// releaseSelection drops the session's seat hold and stored selection.
func (app *Application) releaseSelection(ctx context.Context, sessionID string, selection *domain.Selection) error {
	pipe := app.redis.TxPipeline()

	pipe.HDel(ctx, seatHoldsKey(selection.TripID, selection.BoatID), sessionID)
	pipe.Del(ctx, wizardSelectionKey(sessionID))

	_, err := pipe.Exec(ctx)

	return err
}

// heldSeats sums live seat holds on a trip+boat pairing, excluding the given
// session's own hold. Stale entries are skipped, the hold script prunes them.
func (app *Application) heldSeats(ctx context.Context, tripID, boatID int, excludeSessionID string) (int, error) {
	entries, err := app.redis.HGetAll(ctx, seatHoldsKey(tripID, boatID)).Result()
	if err != nil {
		return 0, err
	}

	now := time.Now().Unix()
	var held int

	for sessionID, value := range entries {
		if sessionID == excludeSessionID {
			continue
		}

		count, expiry, ok := parseHold(value)
		if !ok || expiry <= now {
			continue
		}

		held += count
	}

	return held, nil
}

func parseHold(value string) (count int, expiry int64, ok bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}

	expiry, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}

	return count, expiry, true
}

func trimTickets(selection *domain.Selection, granted int) {
	for i := len(selection.Tickets) - 1; i >= 0 && selection.TotalTickets() > granted; i-- {
		over := selection.TotalTickets() - granted

		if selection.Tickets[i].Quantity <= over {
			selection.Tickets = selection.Tickets[:i]
			continue
		}

		selection.Tickets[i].Quantity -= over
	}
}

func toApiWizardSelection(selection *domain.Selection, pricing domain.PricingBreakdown) api.WizardSelectionResponse {
	tickets := make([]api.TicketLine, len(selection.Tickets))
	for i, line := range selection.Tickets {
		tickets[i] = api.TicketLine{
			TicketType:   line.TicketType,
			Quantity:     line.Quantity,
			PricePerUnit: line.PricePerUnit,
		}
	}

	merchandise := make([]api.MerchandiseLine, len(selection.Merchandise))
	for i, line := range selection.Merchandise {
		merchandise[i] = api.MerchandiseLine{
			TripMerchandiseId: line.TripMerchandiseID,
			VariantOption:     line.VariantOption,
			Quantity:          line.Quantity,
			PricePerUnit:      line.PricePerUnit,
		}
	}

	afterDiscount := pricing.Subtotal - pricing.DiscountAmount

	presets := domain.TipPresets(afterDiscount)
	tipPresets := make([]api.TipPreset, len(presets))
	for i, preset := range presets {
		tipPresets[i] = api.TipPreset{Percent: preset.Percent, Amount: preset.Amount}
	}

	return api.WizardSelectionResponse{
		TripId:      selection.TripID,
		BoatId:      selection.BoatID,
		Tickets:     tickets,
		Merchandise: merchandise,
		Pricing:     toApiPricing(pricing),
		TipPresets:  tipPresets,
		HoldTime:    int(selectionTTL.Seconds()),
	}
}

func toApiPricing(pricing domain.PricingBreakdown) api.PricingSummary {
	return api.PricingSummary{
		Subtotal:       pricing.Subtotal,
		DiscountAmount: pricing.DiscountAmount,
		TaxAmount:      pricing.TaxAmount,
		TipAmount:      pricing.TipAmount,
		TotalAmount:    pricing.TotalAmount,
	}
}

func wizardSelectionKey(sessionID string) string {
	return fmt.Sprintf("wizard_selection:%s", sessionID)
}

func seatHoldsKey(tripID, boatID int) string {
	return fmt.Sprintf("seat_holds:%d:%d", tripID, boatID)
}
