package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
)

func (app *Application) ValidateDiscountCode(w http.ResponseWriter, r *http.Request) {
	var input api.DiscountCodeValidationRequest

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

	code, err := app.discountRepo.GetByCode(r.Context(), input.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
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

	resp := api.DiscountCodeValidation{
		Code:              code.Code,
		DiscountType:      api.DiscountType(code.Type),
		DiscountValue:     code.Value,
		MaxDiscountAmount: code.MaxDiscountAmount,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
