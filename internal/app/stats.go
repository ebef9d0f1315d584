package app

import (
	"net/http"
	"time"

	"github.com/harborline/boat-tour-booking/api"
)

// GetAdminStats reports per-trip booking counts, tickets sold, revenue and
// refunds over a date range, defaulting to the last 30 days.
func (app *Application) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	query := r.URL.Query()

	if value := query.Get("from"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		from = parsed
	}

	if value := query.Get("to"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		to = parsed
	}

	stats, err := app.bookingRepo.GetTripStats(r.Context(), from, to)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiStats := make([]api.TripStats, len(stats))
	for i, s := range stats {
		apiStats[i] = api.TripStats{
			TripId:         s.TripID,
			TripName:       s.TripName,
			DepartureTime:  s.DepartureTime,
			Bookings:       s.Bookings,
			TicketsSold:    s.TicketsSold,
			Revenue:        s.Revenue,
			RefundedAmount: s.RefundedAmount,
		}
	}

	resp := api.StatsResponse{
		Trips: apiStats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
