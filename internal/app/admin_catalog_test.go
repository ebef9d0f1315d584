package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/harborline/boat-tour-booking/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTrip(t *testing.T) {
	departure := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	input := api.CreateTripRequest{
		MissionId:      1,
		Name:           "Dawn Launch Viewing",
		DepartureTime:  departure,
		ReturnTime:     departure.Add(4 * time.Hour),
		TaxRatePercent: 8.25,
	}

	t.Run("rejects a trip for a missing mission", func(t *testing.T) {
		app := newTestApplication(func(a *Application) {
			a.missionRepo = &mocks.MockMissionRepo{
				GetByIdFunc: func(ctx context.Context, id int) (*domain.Mission, error) {
					return nil, domain.ErrRecordNotFound
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/admin/trips", input)
		app.CreateTrip(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		checkErrorResponse(t, w, http.StatusUnprocessableEntity, "mission does not exist")
	})

	t.Run("creates a scheduled trip", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepo)

		app := newTestApplication(func(a *Application) {
			a.tripRepo = tripRepo
			a.missionRepo = &mocks.MockMissionRepo{
				GetByIdFunc: func(ctx context.Context, id int) (*domain.Mission, error) {
					return &domain.Mission{ID: 1, Name: "Artemis Crewed Flyby"}, nil
				},
			}
		})

		tripRepo.On("Create", mock.Anything, mock.MatchedBy(func(trip *domain.Trip) bool {
			return trip.MissionID == 1 &&
				trip.MissionName == "Artemis Crewed Flyby" &&
				trip.Status == domain.TripStatusScheduled &&
				trip.TaxRatePercent == 8.25
		})).Return(nil)

		w, r := executeRequest(t, http.MethodPost, "/admin/trips", input)
		app.CreateTrip(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		tripRepo.AssertExpectations(t)
	})
}

func TestUpdateTrip(t *testing.T) {
	tests := []struct {
		name           string
		input          api.UpdateTripRequest
		setupMocks     func(repo *mocks.MockTripRepo)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:  "should reject a return time before departure",
			input: api.UpdateTripRequest{ReturnTime: ptr(time.Now().Add(-72 * time.Hour))},
			setupMocks: func(repo *mocks.MockTripRepo) {
				trip := scheduledTrip()
				trip.DepartureTime = time.Now().Add(24 * time.Hour)
				trip.ReturnTime = trip.DepartureTime.Add(4 * time.Hour)
				repo.On("GetById", mock.Anything, testTripID).Return(trip, nil)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "return time must be after departure time",
		},
		{
			name:  "should return 409 when the trip changed concurrently",
			input: api.UpdateTripRequest{Name: ptr("Sunset Launch Viewing")},
			setupMocks: func(repo *mocks.MockTripRepo) {
				trip := scheduledTrip()
				trip.DepartureTime = time.Now().Add(24 * time.Hour)
				trip.ReturnTime = trip.DepartureTime.Add(4 * time.Hour)
				repo.On("GetById", mock.Anything, testTripID).Return(trip, nil)
				repo.On("Update", mock.Anything, mock.Anything).Return(domain.ErrEditConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:  "should apply a partial update",
			input: api.UpdateTripRequest{Status: ptr("cancelled")},
			setupMocks: func(repo *mocks.MockTripRepo) {
				trip := scheduledTrip()
				trip.DepartureTime = time.Now().Add(24 * time.Hour)
				trip.ReturnTime = trip.DepartureTime.Add(4 * time.Hour)
				repo.On("GetById", mock.Anything, testTripID).Return(trip, nil)
				repo.On("Update", mock.Anything, mock.MatchedBy(func(trip *domain.Trip) bool {
					return trip.Status == domain.TripStatusCancelled
				})).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockTripRepo)
			app := newTestApplication(func(a *Application) {
				a.tripRepo = repo
			})

			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}

			w, r := executeRequest(t, http.MethodPatch, "/admin/trips/1", tt.input)
			r = withURLParam(r, "tripId", "1")

			app.UpdateTrip(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			repo.AssertExpectations(t)
			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func TestDeleteTrip(t *testing.T) {
	tests := []struct {
		name           string
		deleteErr      error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "should return 404 for an unknown trip",
			deleteErr:  domain.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:           "should refuse to delete a trip with bookings",
			deleteErr:      domain.ErrEditConflict,
			wantStatus:     http.StatusConflict,
			wantErrMessage: "trip has bookings and cannot be deleted",
		},
		{
			name:       "should delete a trip without bookings",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockTripRepo)
			app := newTestApplication(func(a *Application) {
				a.tripRepo = repo
			})

			repo.On("Delete", mock.Anything, testTripID).Return(tt.deleteErr)

			w, r := executeRequest(t, http.MethodDelete, "/admin/trips/1", nil)
			r = withURLParam(r, "tripId", "1")

			app.DeleteTrip(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			repo.AssertExpectations(t)
			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func TestAssignTripBoat(t *testing.T) {
	input := api.AssignBoatRequest{
		BoatId:      testBoatID,
		MaxCapacity: 10,
		Pricing: []api.EffectivePricingInput{
			{TicketType: "adult", Price: 5000, Inventory: 10},
		},
	}

	osprey := &domain.Boat{ID: testBoatID, Name: "Osprey", NominalCapacity: 12, Active: true}

	t.Run("rejects a capacity above the boat's nominal capacity", func(t *testing.T) {
		oversized := input
		oversized.MaxCapacity = 20

		app := newTestApplication(func(a *Application) {
			a.boatRepo = &mocks.MockBoatRepo{
				GetByIdFunc: func(ctx context.Context, id int) (*domain.Boat, error) {
					return osprey, nil
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/admin/trips/1/boats", oversized)
		r = withURLParam(r, "tripId", "1")

		app.AssignTripBoat(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		checkErrorResponse(t, w, http.StatusUnprocessableEntity, "trip capacity cannot exceed the boat's nominal capacity")
	})

	t.Run("rejects an unknown boat", func(t *testing.T) {
		app := newTestApplication(func(a *Application) {
			a.boatRepo = &mocks.MockBoatRepo{
				GetByIdFunc: func(ctx context.Context, id int) (*domain.Boat, error) {
					return nil, domain.ErrRecordNotFound
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/admin/trips/1/boats", input)
		r = withURLParam(r, "tripId", "1")

		app.AssignTripBoat(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		checkErrorResponse(t, w, http.StatusUnprocessableEntity, "boat does not exist")
	})

	t.Run("assigns the boat with its pricing", func(t *testing.T) {
		tripRepo := new(mocks.MockTripRepo)

		app := newTestApplication(func(a *Application) {
			a.tripRepo = tripRepo
			a.boatRepo = &mocks.MockBoatRepo{
				GetByIdFunc: func(ctx context.Context, id int) (*domain.Boat, error) {
					return osprey, nil
				},
			}
		})

		tripRepo.On("AssignBoat", mock.Anything, mock.MatchedBy(func(tb *domain.TripBoat) bool {
			return tb.TripID == testTripID && tb.BoatID == testBoatID && tb.MaxCapacity == 10
		}), []domain.EffectivePricingItem{
			{TicketType: "adult", Price: 5000, Remaining: 10},
		}).Return(nil)

		w, r := executeRequest(t, http.MethodPost, "/admin/trips/1/boats", input)
		r = withURLParam(r, "tripId", "1")

		app.AssignTripBoat(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		tripRepo.AssertExpectations(t)
	})
}

func TestCreateDiscountCode(t *testing.T) {
	input := api.CreateDiscountCodeRequest{
		Code:          "LAUNCH10",
		DiscountType:  api.DiscountType(domain.DiscountPercentage),
		DiscountValue: 10,
	}

	t.Run("returns 409 for a duplicate code", func(t *testing.T) {
		repo := new(mocks.MockDiscountRepo)
		app := newTestApplication(func(a *Application) {
			a.discountRepo = repo
		})

		repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrEditConflict)

		w, r := executeRequest(t, http.MethodPost, "/admin/discount-codes", input)
		app.CreateDiscountCode(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		checkErrorResponse(t, w, http.StatusConflict, "a discount code with this code already exists")
	})

	t.Run("creates an active code", func(t *testing.T) {
		repo := new(mocks.MockDiscountRepo)
		app := newTestApplication(func(a *Application) {
			a.discountRepo = repo
		})

		repo.On("Create", mock.Anything, mock.MatchedBy(func(code *domain.DiscountCode) bool {
			return code.Code == "LAUNCH10" && code.Type == domain.DiscountPercentage && code.Active
		})).Return(nil)

		w, r := executeRequest(t, http.MethodPost, "/admin/discount-codes", input)
		app.CreateDiscountCode(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		repo.AssertExpectations(t)
	})
}

func TestDeactivateDiscountCode(t *testing.T) {
	t.Run("returns 404 for an unknown code", func(t *testing.T) {
		repo := new(mocks.MockDiscountRepo)
		app := newTestApplication(func(a *Application) {
			a.discountRepo = repo
		})

		repo.On("SetActive", mock.Anything, 9, false).Return(domain.ErrRecordNotFound)

		w, r := executeRequest(t, http.MethodDelete, "/admin/discount-codes/9", nil)
		r = withURLParam(r, "discountCodeId", "9")

		app.DeactivateDiscountCode(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("deactivates the code", func(t *testing.T) {
		repo := new(mocks.MockDiscountRepo)
		app := newTestApplication(func(a *Application) {
			a.discountRepo = repo
		})

		repo.On("SetActive", mock.Anything, 9, false).Return(nil)

		w, r := executeRequest(t, http.MethodDelete, "/admin/discount-codes/9", nil)
		r = withURLParam(r, "discountCodeId", "9")

		app.DeactivateDiscountCode(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		repo.AssertExpectations(t)
	})
}
