package app

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/harborline/boat-tour-booking/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateDiscountCode(t *testing.T) {
	activeCode := &domain.DiscountCode{
		ID:                1,
		Code:              "LAUNCH10",
		Type:              domain.DiscountPercentage,
		Value:             10,
		MaxDiscountAmount: ptr(int64(2000)),
		Active:            true,
	}

	expiredAt := time.Now().Add(-time.Hour)

	tests := []struct {
		name           string
		input          api.DiscountCodeValidationRequest
		setupMocks     func(repo *mocks.MockDiscountRepo)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "should fail validation for a malformed code",
			input:      api.DiscountCodeValidationRequest{Code: "no"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "should return 404 for an unknown code",
			input: api.DiscountCodeValidationRequest{Code: "UNKNOWN"},
			setupMocks: func(repo *mocks.MockDiscountRepo) {
				repo.On("GetByCode", mock.Anything, "UNKNOWN").
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "should return 410 for an expired code",
			input: api.DiscountCodeValidationRequest{Code: "LAUNCH10"},
			setupMocks: func(repo *mocks.MockDiscountRepo) {
				expired := *activeCode
				expired.ExpiresAt = &expiredAt
				repo.On("GetByCode", mock.Anything, "LAUNCH10").Return(&expired, nil)
			},
			wantStatus:     http.StatusGone,
			wantErrMessage: domain.ErrDiscountCodeExpired.Error(),
		},
		{
			name:  "should return 422 for a deactivated code",
			input: api.DiscountCodeValidationRequest{Code: "LAUNCH10"},
			setupMocks: func(repo *mocks.MockDiscountRepo) {
				inactive := *activeCode
				inactive.Active = false
				repo.On("GetByCode", mock.Anything, "LAUNCH10").Return(&inactive, nil)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: domain.ErrDiscountCodeInactive.Error(),
		},
		{
			name:  "should return the code details when valid",
			input: api.DiscountCodeValidationRequest{Code: "LAUNCH10"},
			setupMocks: func(repo *mocks.MockDiscountRepo) {
				repo.On("GetByCode", mock.Anything, "LAUNCH10").Return(activeCode, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockDiscountRepo)
			app := newTestApplication(func(a *Application) {
				a.discountRepo = repo
			})

			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}

			w, r := executeRequest(t, http.MethodPost, "/discount-codes/validate", tt.input)
			app.ValidateDiscountCode(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			repo.AssertExpectations(t)

			if tt.wantStatus == http.StatusOK {
				var resp api.DiscountCodeValidation
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "LAUNCH10", resp.Code)
				assert.Equal(t, api.DiscountType(domain.DiscountPercentage), resp.DiscountType)
				assert.Equal(t, float64(10), resp.DiscountValue)
				require.NotNil(t, resp.MaxDiscountAmount)
				assert.EqualValues(t, 2000, *resp.MaxDiscountAmount)
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}
