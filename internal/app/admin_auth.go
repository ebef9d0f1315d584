package app

import (
	"errors"
	"net/http"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
)

func (app *Application) AdminLogin(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	adminId := app.sessionManager.GetInt(r.Context(), SessionKeyAdminId.String())
	if adminId != 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var input api.AdminLoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("admin login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	admin, err := app.adminUserRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("admin login attempt for non-existent user")
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if !admin.Active {
		logger.Warn("admin login attempt for deactivated user", "admin_id", admin.ID)
		app.invalidCredentialsResponse(w, r)
		return
	}

	matches, err := admin.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !matches {
		logger.Warn("admin login failed due to incorrect password")
		app.invalidCredentialsResponse(w, r)
		return
	}

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	// https://github.com/OWASP/CheatSheetSeries/blob/master/cheatsheets/Session_Management_Cheat_Sheet.md#renew-the-session-id-after-any-privilege-level-change
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyAdminId.String(), admin.ID)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) AdminLogout(w http.ResponseWriter, r *http.Request) {
	app.sessionManager.Destroy(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
