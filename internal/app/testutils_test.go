package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/mailer"
	"github.com/harborline/boat-tour-booking/internal/mocks"
	appvalidator "github.com/harborline/boat-tour-booking/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator:       appvalidator.NewValidator(),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager:  scs.New(),
		mailer:          mailer.NewMockMailer(),
		missionRepo:     &mocks.MockMissionRepo{},
		boatRepo:        &mocks.MockBoatRepo{},
		merchandiseRepo: &mocks.MockMerchandiseRepo{},
		adminUserRepo:   &mocks.MockAdminUserRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func setupTestSession(t *testing.T, app *Application, r *http.Request, adminId int) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	if adminId != 0 {
		app.sessionManager.Put(ctx, SessionKeyAdminId.String(), adminId)
	}

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	if wantStatus >= 200 && wantStatus < 300 || wantErrMessage == "" {
		return
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if errorResp.Message != wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
	}
}

func checkValidationResponse(t *testing.T, w *httptest.ResponseRecorder, wantIssue string) {
	var validationResp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
		t.Fatalf("Failed to decode validation error response: %v", err)
	}

	for _, vErr := range validationResp.ValidationErrors {
		if vErr.Issue == wantIssue {
			return
		}
	}

	t.Errorf("Expected validation issue %q not found in response", wantIssue)
}

// withURLParam injects a chi route parameter for handlers that read path
// parameters outside the generated router.
func withURLParam(r *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func ptr[T any](v T) *T {
	return &v
}
