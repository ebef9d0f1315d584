package integration_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TripTestSuite struct {
	BaseSuite
}

func TestTripSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(TripTestSuite))
}

func resetCatalog(t testing.TB, app *TestApp) {
	executeSQLFile(t, app.DB, "testdata/catalog_down.sql")
	executeSQLFile(t, app.DB, "testdata/catalog_up.sql")
}

func (s *TripTestSuite) TestGetMissions() {
	scenarios := []Scenario{
		{
			Name:           "returns empty list when no missions exist",
			Method:         "GET",
			URL:            "/missions",
			ExpectedStatus: 200,
			ExpectedResponse: `{
				"missions": []
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				executeSQLFile(t, app.DB, "testdata/catalog_down.sql")
			},
		},
		{
			Name:           "returns seeded missions",
			Method:         "GET",
			URL:            "/missions",
			ExpectedStatus: 200,
			ExpectedResponse: fmt.Sprintf(`{
				"missions": [
					{
						"id": 1,
						"name": "%s",
						"description": "Crewed lunar flyby launching from pad 39B.",
						"launch_time": "2030-01-01T11:30:00Z"
					}
				]
			}`, TestMissionName),
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetCatalog(t, app)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *TripTestSuite) TestGetTrips() {
	scenarios := []Scenario{
		{
			Name:           "returns 422 for invalid page parameter",
			Method:         "GET",
			URL:            "/trips?page=-1",
			ExpectedStatus: 422,
			ExpectedResponse: `{
				"message": "One or more fields have invalid values",
				"validationErrors": [
					{"field": "Page", "issue": "must be at least 1"}
				]
			}`,
		},
		{
			Name:           "returns seeded trips with pagination metadata",
			Method:         "GET",
			URL:            "/trips",
			ExpectedStatus: 200,
			ExpectedResponse: fmt.Sprintf(`{
				"trips": [
					{
						"id": 1,
						"mission_id": 1,
						"mission_name": "%s",
						"name": "%s",
						"departure_time": "2030-01-01T09:00:00Z",
						"return_time": "2030-01-01T13:00:00Z",
						"tax_rate_percent": 10,
						"status": "scheduled"
					}
				],
				"metadata": {
					"currentPage": 1,
					"firstPage": 1,
					"lastPage": 1,
					"pageSize": 10,
					"totalRecords": 1
				}
			}`, TestMissionName, TestTripName),
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetCatalog(t, app)
			},
		},
		{
			Name:           "filters trips by mission",
			Method:         "GET",
			URL:            "/trips?missionId=42",
			ExpectedStatus: 200,
			ExpectedResponse: `{
				"trips": [],
				"metadata": {
					"currentPage": 1,
					"firstPage": 1,
					"lastPage": 0,
					"pageSize": 10,
					"totalRecords": 0
				}
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetCatalog(t, app)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *TripTestSuite) TestGetTripById() {
	scenarios := []Scenario{
		{
			Name:           "returns 404 when trip not found",
			Method:         "GET",
			URL:            "/trips/9999",
			ExpectedStatus: 404,
			ExpectedResponse: `{
				"message": "The requested resource not found"
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetCatalog(t, app)
			},
		},
		{
			Name:           "returns trip details",
			Method:         "GET",
			URL:            "/trips/1",
			ExpectedStatus: 200,
			ExpectedResponse: fmt.Sprintf(`{
				"trip": {
					"id": 1,
					"mission_id": 1,
					"mission_name": "%s",
					"name": "%s",
					"departure_time": "2030-01-01T09:00:00Z",
					"return_time": "2030-01-01T13:00:00Z",
					"tax_rate_percent": 10,
					"status": "scheduled"
				}
			}`, TestMissionName, TestTripName),
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetCatalog(t, app)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *TripTestSuite) TestGetTripBoats() {
	scenarios := []Scenario{
		{
			Name:           "returns boat availability with per-type pricing",
			Method:         "GET",
			URL:            "/trips/1/boats",
			ExpectedStatus: 200,
			ExpectedResponse: fmt.Sprintf(`{
				"trip_id": 1,
				"boats": [
					{
						"boat_id": 1,
						"boat_name": "%s",
						"remaining_capacity": 10,
						"max_capacity": 10,
						"pricing": [
							{"ticket_type": "adult", "price": 5000, "remaining": 10},
							{"ticket_type": "child", "price": 3000, "remaining": 6}
						]
					}
				]
			}`, TestBoatName),
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetCatalog(t, app)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *TripTestSuite) TestGetTripMerchandise() {
	scenarios := []Scenario{
		{
			Name:           "returns merchandise with variants",
			Method:         "GET",
			URL:            "/trips/1/merchandise",
			ExpectedStatus: 200,
			ExpectedResponse: `{
				"trip_id": 1,
				"merchandise": [
					{
						"id": 1,
						"name": "Mission patch",
						"description": "Embroidered launch mission patch.",
						"price": 1500,
						"quantity_available": 20,
						"variants": [
							{"option": "S", "quantity_available": 5},
							{"option": "M", "quantity_available": 10}
						]
					}
				]
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				resetCatalog(t, app)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
