package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/harborline/boat-tour-booking/api"
	appmiddleware "github.com/harborline/boat-tour-booking/internal/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFoundHandler)

	r.Use(chimiddleware.RequestID)
	r.Use(otelchi.Middleware("boat-tour-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(appmiddleware.RecoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureGuestSession)

	api.HandlerFromMux(app, r)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", app.AdminLogin)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAdmin)

			r.Post("/logout", app.AdminLogout)

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", app.GetAdminBookings)
				r.Get("/{bookingId}", app.GetAdminBookingById)
				r.Patch("/{bookingId}", app.UpdateBooking)
				r.Post("/{bookingId}/check-in", app.CheckInBooking)
				r.Post("/{bookingId}/refund", app.RefundBooking)
			})

			r.Get("/stats", app.GetAdminStats)

			r.Post("/missions", app.CreateMission)

			r.Route("/boats", func(r chi.Router) {
				r.Get("/", app.GetBoats)
				r.Post("/", app.CreateBoat)
			})

			r.Route("/trips", func(r chi.Router) {
				r.Post("/", app.CreateTrip)
				r.Patch("/{tripId}", app.UpdateTrip)
				r.Delete("/{tripId}", app.DeleteTrip)
				r.Put("/{tripId}/boats", app.AssignTripBoat)
				r.Post("/{tripId}/merchandise", app.CreateTripMerchandise)
			})

			r.Route("/discount-codes", func(r chi.Router) {
				r.Get("/", app.GetDiscountCodes)
				r.Post("/", app.CreateDiscountCode)
				r.Delete("/{discountCodeId}", app.DeactivateDiscountCode)
			})
		})
	})

	return r
}
