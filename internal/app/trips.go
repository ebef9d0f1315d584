package app

import (
	"errors"
	"net/http"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
)

func (app *Application) GetMissions(w http.ResponseWriter, r *http.Request) {
	missions, err := app.missionRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiMissions := make([]api.Mission, len(missions))
	for i, mission := range missions {
		apiMissions[i] = toApiMission(mission)
	}

	resp := api.MissionListResponse{
		Missions: apiMissions,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTrips(w http.ResponseWriter, r *http.Request, params api.GetTripsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	var missionID int
	if params.MissionId != nil {
		missionID = *params.MissionId
	}

	trips, metadata, err := app.tripRepo.GetAll(r.Context(), missionID, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	tripSummaries := make([]api.TripSummary, len(trips))
	for i, trip := range trips {
		tripSummaries[i] = toApiTrip(trip)
	}

	resp := api.TripListResponse{
		Trips:    tripSummaries,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTripById(w http.ResponseWriter, r *http.Request, tripId int) {
	trip, err := app.tripRepo.GetById(r.Context(), tripId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.TripResponse{
		Trip: toApiTrip(trip),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetTripBoats lists the boats assigned to a trip with availability net of
// both sold tickets and live wizard holds from other sessions.
func (app *Application) GetTripBoats(w http.ResponseWriter, r *http.Request, tripId int) {
	boats, err := app.tripRepo.GetBoatAvailability(r.Context(), tripId)
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

	apiBoats := make([]api.TripBoatPublicWithAvailability, len(boats))
	for i, boat := range boats {
		held, err := app.heldSeats(r.Context(), tripId, boat.BoatID, sessionID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		remaining := boat.RemainingCapacity - held
		if remaining < 0 {
			remaining = 0
		}

		pricing := make([]api.EffectivePricingItem, len(boat.Pricing))
		for j, item := range boat.Pricing {
			itemRemaining := item.Remaining
			if itemRemaining > remaining {
				itemRemaining = remaining
			}

			pricing[j] = api.EffectivePricingItem{
				TicketType: item.TicketType,
				Price:      item.Price,
				Remaining:  itemRemaining,
			}
		}

		apiBoats[i] = api.TripBoatPublicWithAvailability{
			BoatId:            boat.BoatID,
			BoatName:          boat.BoatName,
			RemainingCapacity: remaining,
			MaxCapacity:       boat.MaxCapacity,
			Pricing:           pricing,
		}
	}

	resp := api.TripBoatsResponse{
		TripId: tripId,
		Boats:  apiBoats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTripMerchandise(w http.ResponseWriter, r *http.Request, tripId int) {
	merchandise, err := app.merchandiseRepo.GetByTripId(r.Context(), tripId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	apiMerchandise := make([]api.TripMerchandiseItem, len(merchandise))
	for i, merch := range merchandise {
		apiMerchandise[i] = toApiMerchandise(merch)
	}

	resp := api.TripMerchandiseResponse{
		TripId:      tripId,
		Merchandise: apiMerchandise,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMission(mission *domain.Mission) api.Mission {
	return api.Mission{
		Id:          mission.ID,
		Name:        mission.Name,
		Description: mission.Description,
		LaunchTime:  mission.LaunchTime,
	}
}

func toApiTrip(trip *domain.Trip) api.TripSummary {
	return api.TripSummary{
		Id:             trip.ID,
		MissionId:      trip.MissionID,
		MissionName:    trip.MissionName,
		Name:           trip.Name,
		DepartureTime:  trip.DepartureTime,
		ReturnTime:     trip.ReturnTime,
		TaxRatePercent: trip.TaxRatePercent,
		Status:         string(trip.Status),
	}
}

func toApiMerchandise(merch *domain.TripMerchandise) api.TripMerchandiseItem {
	variants := make([]api.MerchandiseVariant, len(merch.Variants))
	for i, variant := range merch.Variants {
		variants[i] = api.MerchandiseVariant{
			Option:            variant.Option,
			QuantityAvailable: variant.QuantityAvailable,
		}
	}

	return api.TripMerchandiseItem{
		Id:                merch.ID,
		Name:              merch.Name,
		Description:       merch.Description,
		Price:             merch.Price,
		QuantityAvailable: merch.QuantityAvailable,
		Variants:          variants,
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
