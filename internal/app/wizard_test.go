package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/harborline/boat-tour-booking/api"
	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/harborline/boat-tour-booking/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WizardTestSuite struct {
	suite.Suite
	app         *Application
	tripRepo    *mocks.MockTripRepo
	discounts   *mocks.MockDiscountRepo
	redisClient *mocks.MockRedisClient
	pipeline    *mocks.MockTxPipeline
}

func (s *WizardTestSuite) SetupTest() {
	s.tripRepo = new(mocks.MockTripRepo)
	s.discounts = new(mocks.MockDiscountRepo)
	s.redisClient = new(mocks.MockRedisClient)
	s.pipeline = new(mocks.MockTxPipeline)

	s.app = newTestApplication(func(a *Application) {
		a.tripRepo = s.tripRepo
		a.discountRepo = s.discounts
		a.redis = s.redisClient
	})
}

func TestWizardSuite(t *testing.T) {
	suite.Run(t, new(WizardTestSuite))
}

func (s *WizardTestSuite) expectHold(granted int64) {
	s.redisClient.On("EvalSha", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(redis.NewCmdResult(granted, nil))
}

func (s *WizardTestSuite) TestPutWizardSelection() {
	input := api.WizardSelectionRequest{
		TripId: testTripID,
		BoatId: testBoatID,
		Tickets: []api.TicketSelectionInput{
			{TicketType: "adult", Quantity: 2},
		},
	}

	tests := []struct {
		name           string
		input          api.WizardSelectionRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		check          func(resp api.WizardSelectionResponse)
	}{
		{
			name:  "should fail when trip does not exist",
			input: input,
			setupMocks: func() {
				s.tripRepo.On("GetById", mock.Anything, testTripID).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "should fail when trip is not open for booking",
			input: input,
			setupMocks: func() {
				trip := scheduledTrip()
				trip.Status = domain.TripStatusDeparted
				s.tripRepo.On("GetById", mock.Anything, testTripID).Return(trip, nil)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "trip is no longer open for booking",
		},
		{
			name:  "should price a granted selection with tip presets",
			input: input,
			setupMocks: func() {
				s.tripRepo.On("GetById", mock.Anything, testTripID).Return(scheduledTrip(), nil)
				s.tripRepo.On("GetBoatAvailabilityForBoat", mock.Anything, testTripID, testBoatID).
					Return(boatAvailability(10, 10), nil)
				s.redisClient.On("HGetAll", mock.Anything, seatHoldsKey(testTripID, testBoatID)).
					Return(redis.NewMapStringStringResult(map[string]string{}, nil))
				s.expectHold(2)
				s.redisClient.On("Set", mock.Anything, mock.Anything, mock.Anything, selectionTTL).
					Return(redis.NewStatusResult("OK", nil))
			},
			wantStatus: http.StatusOK,
			check: func(resp api.WizardSelectionResponse) {
				s.Require().Len(resp.Tickets, 1)
				s.Equal(2, resp.Tickets[0].Quantity)
				s.EqualValues(5000, resp.Tickets[0].PricePerUnit)
				s.EqualValues(10000, resp.Pricing.Subtotal)
				s.EqualValues(1000, resp.Pricing.TaxAmount)
				s.EqualValues(11000, resp.Pricing.TotalAmount)

				s.Require().Len(resp.TipPresets, 4)
				s.Equal(10, resp.TipPresets[0].Percent)
				s.EqualValues(1000, resp.TipPresets[0].Amount)
				s.EqualValues(2500, resp.TipPresets[3].Amount)

				s.Equal(int(selectionTTL.Seconds()), resp.HoldTime)
			},
		},
		{
			name:  "should cap the selection when the hold grants fewer seats",
			input: input,
			setupMocks: func() {
				s.tripRepo.On("GetById", mock.Anything, testTripID).Return(scheduledTrip(), nil)
				s.tripRepo.On("GetBoatAvailabilityForBoat", mock.Anything, testTripID, testBoatID).
					Return(boatAvailability(10, 10), nil)
				s.redisClient.On("HGetAll", mock.Anything, seatHoldsKey(testTripID, testBoatID)).
					Return(redis.NewMapStringStringResult(map[string]string{}, nil))
				s.expectHold(1)
				s.redisClient.On("Set", mock.Anything, mock.Anything, mock.Anything, selectionTTL).
					Return(redis.NewStatusResult("OK", nil))
			},
			wantStatus: http.StatusOK,
			check: func(resp api.WizardSelectionResponse) {
				s.Require().Len(resp.Tickets, 1)
				s.Equal(1, resp.Tickets[0].Quantity)
				s.EqualValues(5000, resp.Pricing.Subtotal)
			},
		},
		{
			name: "should cap the selection by other sessions' live holds",
			input: api.WizardSelectionRequest{
				TripId: testTripID,
				BoatId: testBoatID,
				Tickets: []api.TicketSelectionInput{
					{TicketType: "adult", Quantity: 5},
				},
			},
			setupMocks: func() {
				s.tripRepo.On("GetById", mock.Anything, testTripID).Return(scheduledTrip(), nil)
				s.tripRepo.On("GetBoatAvailabilityForBoat", mock.Anything, testTripID, testBoatID).
					Return(boatAvailability(4, 10), nil)
				s.redisClient.On("HGetAll", mock.Anything, seatHoldsKey(testTripID, testBoatID)).
					Return(redis.NewMapStringStringResult(map[string]string{
						"other-session": "3:9999999999",
					}, nil))
				s.expectHold(1)
				s.redisClient.On("Set", mock.Anything, mock.Anything, mock.Anything, selectionTTL).
					Return(redis.NewStatusResult("OK", nil))
			},
			wantStatus: http.StatusOK,
			check: func(resp api.WizardSelectionResponse) {
				s.Require().Len(resp.Tickets, 1)
				s.Equal(1, resp.Tickets[0].Quantity)
			},
		},
		{
			name: "should reject an unknown discount code",
			input: api.WizardSelectionRequest{
				TripId:       testTripID,
				BoatId:       testBoatID,
				Tickets:      []api.TicketSelectionInput{{TicketType: "adult", Quantity: 1}},
				DiscountCode: ptr("NOPE-123"),
			},
			setupMocks: func() {
				s.tripRepo.On("GetById", mock.Anything, testTripID).Return(scheduledTrip(), nil)
				s.tripRepo.On("GetBoatAvailabilityForBoat", mock.Anything, testTripID, testBoatID).
					Return(boatAvailability(10, 10), nil)
				s.redisClient.On("HGetAll", mock.Anything, seatHoldsKey(testTripID, testBoatID)).
					Return(redis.NewMapStringStringResult(map[string]string{}, nil))
				s.expectHold(1)
				s.discounts.On("GetByCode", mock.Anything, "NOPE-123").
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "discount code is not valid",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.tripRepo.AssertExpectations(s.T())
			defer s.discounts.AssertExpectations(s.T())
			defer s.redisClient.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPut, "/wizard/selection", tt.input)

			handler := s.app.sessionManager.LoadAndSave(http.HandlerFunc(s.app.PutWizardSelection))
			handler.ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.check != nil {
				var resp api.WizardSelectionResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
				tt.check(resp)
			}

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *WizardTestSuite) TestDeleteWizardSelection() {
	s.Run("should return 404 when no selection is held", func() {
		s.SetupTest()

		s.redisClient.On("Get", mock.Anything, mock.Anything).
			Return(redis.NewStringResult("", redis.Nil))

		w, r := executeRequest(s.T(), http.MethodDelete, "/wizard/selection", nil)

		handler := s.app.sessionManager.LoadAndSave(http.HandlerFunc(s.app.DeleteWizardSelection))
		handler.ServeHTTP(w, r)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("should release the hold and stored selection", func() {
		s.SetupTest()

		selection := domain.NewSelection(testTripID, testBoatID)
		selectionBytes, err := json.Marshal(selection)
		s.Require().NoError(err)

		s.redisClient.On("Get", mock.Anything, mock.Anything).
			Return(redis.NewStringResult(string(selectionBytes), nil))
		s.redisClient.On("TxPipeline").Return(s.pipeline)
		s.pipeline.On("HDel", mock.Anything, seatHoldsKey(testTripID, testBoatID), mock.Anything).
			Return(redis.NewIntResult(1, nil))
		s.pipeline.On("Del", mock.Anything, mock.Anything).
			Return(redis.NewIntResult(1, nil))
		s.pipeline.On("Exec", mock.Anything).
			Return([]redis.Cmder{}, nil)

		w, r := executeRequest(s.T(), http.MethodDelete, "/wizard/selection", nil)

		handler := s.app.sessionManager.LoadAndSave(http.HandlerFunc(s.app.DeleteWizardSelection))
		handler.ServeHTTP(w, r)

		s.Equal(http.StatusNoContent, w.Code)
		s.pipeline.AssertExpectations(s.T())
	})
}

func TestTrimTickets(t *testing.T) {
	tests := []struct {
		name    string
		tickets []domain.TicketLine
		granted int
		want    []int
	}{
		{
			name: "shrinks the last line first",
			tickets: []domain.TicketLine{
				{TicketType: "adult", Quantity: 2},
				{TicketType: "child", Quantity: 2},
			},
			granted: 3,
			want:    []int{2, 1},
		},
		{
			name: "drops emptied lines entirely",
			tickets: []domain.TicketLine{
				{TicketType: "adult", Quantity: 2},
				{TicketType: "child", Quantity: 2},
			},
			granted: 1,
			want:    []int{1},
		},
		{
			name: "leaves a fully granted selection alone",
			tickets: []domain.TicketLine{
				{TicketType: "adult", Quantity: 2},
			},
			granted: 2,
			want:    []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection := &domain.Selection{TripID: 1, BoatID: 1, Tickets: tt.tickets}
			trimTickets(selection, tt.granted)

			if len(selection.Tickets) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(selection.Tickets), len(tt.want))
			}

			for i, want := range tt.want {
				if selection.Tickets[i].Quantity != want {
					t.Errorf("line %d quantity = %d, want %d", i, selection.Tickets[i].Quantity, want)
				}
			}
		})
	}
}
