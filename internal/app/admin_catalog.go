package app

import (
	"errors"
	"net/http"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
)

func (app *Application) CreateMission(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMissionRequest

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

	mission := &domain.Mission{
		Name:        input.Name,
		Description: input.Description,
		LaunchTime:  input.LaunchTime,
	}

	err = app.missionRepo.Create(r.Context(), mission)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMission(mission), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBoats(w http.ResponseWriter, r *http.Request) {
	boats, err := app.boatRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiBoats := make([]api.Boat, len(boats))
	for i, boat := range boats {
		apiBoats[i] = toApiBoat(boat)
	}

	resp := api.BoatListResponse{
		Boats: apiBoats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateBoat(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBoatRequest

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

	boat := &domain.Boat{
		Name:            input.Name,
		Description:     input.Description,
		NominalCapacity: input.NominalCapacity,
		Active:          true,
	}

	err = app.boatRepo.Create(r.Context(), boat)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiBoat(boat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTripRequest

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

	mission, err := app.missionRepo.GetById(r.Context(), input.MissionId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.unprocessableEntityResponse(w, r, "mission does not exist")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	trip := &domain.Trip{
		MissionID:      mission.ID,
		MissionName:    mission.Name,
		Name:           input.Name,
		DepartureTime:  input.DepartureTime,
		ReturnTime:     input.ReturnTime,
		TaxRatePercent: input.TaxRatePercent,
		Status:         domain.TripStatusScheduled,
	}

	err = app.tripRepo.Create(r.Context(), trip)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TripResponse{
		Trip: toApiTrip(trip),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripId, err := app.readIDParam(r, "tripId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateTripRequest

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

	if input.Name != nil {
		trip.Name = *input.Name
	}
	if input.DepartureTime != nil {
		trip.DepartureTime = *input.DepartureTime
	}
	if input.ReturnTime != nil {
		trip.ReturnTime = *input.ReturnTime
	}
	if input.TaxRatePercent != nil {
		trip.TaxRatePercent = *input.TaxRatePercent
	}
	if input.Status != nil {
		trip.Status = domain.TripStatus(*input.Status)
	}

	if !trip.ReturnTime.After(trip.DepartureTime) {
		app.unprocessableEntityResponse(w, r, "return time must be after departure time")
		return
	}

	err = app.tripRepo.Update(r.Context(), trip)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
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

func (app *Application) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripId, err := app.readIDParam(r, "tripId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.tripRepo.Delete(r.Context(), tripId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrEditConflict):
			app.conflictResponse(w, r, "trip has bookings and cannot be deleted")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) AssignTripBoat(w http.ResponseWriter, r *http.Request) {
	tripId, err := app.readIDParam(r, "tripId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.AssignBoatRequest

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

	boat, err := app.boatRepo.GetById(r.Context(), input.BoatId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.unprocessableEntityResponse(w, r, "boat does not exist")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if input.MaxCapacity > boat.NominalCapacity {
		app.unprocessableEntityResponse(w, r, "trip capacity cannot exceed the boat's nominal capacity")
		return
	}

	tripBoat := &domain.TripBoat{
		TripID:      tripId,
		BoatID:      boat.ID,
		BoatName:    boat.Name,
		MaxCapacity: input.MaxCapacity,
	}

	pricing := make([]domain.EffectivePricingItem, len(input.Pricing))
	for i, item := range input.Pricing {
		pricing[i] = domain.EffectivePricingItem{
			TicketType: item.TicketType,
			Price:      item.Price,
			Remaining:  item.Inventory,
		}
	}

	err = app.tripRepo.AssignBoat(r.Context(), tripBoat, pricing)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) CreateTripMerchandise(w http.ResponseWriter, r *http.Request) {
	tripId, err := app.readIDParam(r, "tripId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.CreateMerchandiseRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input.TripId = tripId

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	variants := make([]domain.MerchandiseVariant, len(input.Variants))
	for i, variant := range input.Variants {
		variants[i] = domain.MerchandiseVariant{
			Option:            variant.Option,
			QuantityAvailable: variant.QuantityAvailable,
		}
	}

	merch := &domain.TripMerchandise{
		TripID:            tripId,
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		QuantityAvailable: input.QuantityAvailable,
		Variants:          variants,
	}

	err = app.merchandiseRepo.Create(r.Context(), merch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.unprocessableEntityResponse(w, r, "trip does not exist")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMerchandise(merch), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetDiscountCodes(w http.ResponseWriter, r *http.Request) {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     "-id",
	}

	codes, metadata, err := app.discountRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiCodes := make([]api.DiscountCodeAdmin, len(codes))
	for i, code := range codes {
		apiCodes[i] = toApiDiscountCode(code)
	}

	resp := api.DiscountCodeListResponse{
		DiscountCodes: apiCodes,
		Metadata:      toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateDiscountCode(w http.ResponseWriter, r *http.Request) {
	var input api.CreateDiscountCodeRequest

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

	code := &domain.DiscountCode{
		Code:              input.Code,
		Type:              domain.DiscountType(input.DiscountType),
		Value:             input.DiscountValue,
		MaxDiscountAmount: input.MaxDiscountAmount,
		Active:            true,
		ExpiresAt:         input.ExpiresAt,
	}

	err = app.discountRepo.Create(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.conflictResponse(w, r, "a discount code with this code already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiDiscountCode(code), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeactivateDiscountCode(w http.ResponseWriter, r *http.Request) {
	discountCodeId, err := app.readIDParam(r, "discountCodeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.discountRepo.SetActive(r.Context(), discountCodeId, false)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiBoat(boat *domain.Boat) api.Boat {
	return api.Boat{
		Id:              boat.ID,
		Name:            boat.Name,
		Description:     boat.Description,
		NominalCapacity: boat.NominalCapacity,
		Active:          boat.Active,
	}
}

func toApiDiscountCode(code *domain.DiscountCode) api.DiscountCodeAdmin {
	return api.DiscountCodeAdmin{
		Id:                code.ID,
		Code:              code.Code,
		DiscountType:      api.DiscountType(code.Type),
		DiscountValue:     code.Value,
		MaxDiscountAmount: code.MaxDiscountAmount,
		Active:            code.Active,
		ExpiresAt:         code.ExpiresAt,
	}
}
