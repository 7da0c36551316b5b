package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/travelsearch/internal/models"
	"github.com/dharmasatrya/travelsearch/internal/serpapi"
)

func flightReq() models.FlightSearchRequest {
	return models.FlightSearchRequest{
		DepartureAirport: "CGK",
		ArrivalAirport:   "SIN",
		OutboundDate:     "2026-09-15",
	}
}

func flightList(n int) []any {
	flights := make([]any, n)
	for i := range flights {
		flights[i] = map[string]any{"price": float64(100 + i)}
	}
	return flights
}

func TestSearchFlightsReturnsBestFlightsInFull(t *testing.T) {
	best := flightList(7)
	exec := &fakeExecutor{doc: models.Document{
		"best_flights":  best,
		"other_flights": flightList(3),
	}}
	svc := newTestService(exec)

	result := svc.SearchFlights(context.Background(), flightReq())

	got, ok := result.([]any)
	require.True(t, ok)
	assert.Equal(t, best, got)
}

func TestSearchFlightsFallsBackToOtherFlightsTruncated(t *testing.T) {
	exec := &fakeExecutor{doc: models.Document{
		"best_flights":  []any{},
		"other_flights": flightList(15),
	}}
	svc := newTestService(exec)

	result := svc.SearchFlights(context.Background(), flightReq())

	fallback, ok := result.(models.FlightFallbackResult)
	require.True(t, ok)
	assert.Equal(t, "No best flights found, showing other options", fallback.Message)
	assert.Len(t, fallback.Flights, 10)
	// Original order preserved across truncation.
	assert.Equal(t, map[string]any{"price": float64(100)}, fallback.Flights[0])
	assert.Equal(t, map[string]any{"price": float64(109)}, fallback.Flights[9])
}

func TestSearchFlightsNoResultsListsAvailableKeys(t *testing.T) {
	exec := &fakeExecutor{doc: models.Document{
		"search_metadata":   map[string]any{},
		"search_parameters": map[string]any{},
		"airports":          []any{},
	}}
	svc := newTestService(exec)

	result := svc.SearchFlights(context.Background(), flightReq())

	diag, ok := result.(models.NoResultsResult)
	require.True(t, ok)
	assert.Equal(t, "No flights found", diag.Message)
	assert.Equal(t, []string{"airports", "search_metadata", "search_parameters"}, diag.AvailableKeys)
}

func TestSearchFlightsPassesUpstreamErrorDocThrough(t *testing.T) {
	doc := models.Document{"error": "Your searches for the month are exhausted"}
	exec := &fakeExecutor{doc: doc}
	svc := newTestService(exec)

	result := svc.SearchFlights(context.Background(), flightReq())
	assert.Equal(t, doc, result)
}

func TestSearchFlightsExecutorErrorBecomesErrorDoc(t *testing.T) {
	exec := &fakeExecutor{err: serpapi.ErrMissingAPIKey}
	svc := newTestService(exec)

	result := svc.SearchFlights(context.Background(), flightReq())

	errDoc, ok := result.(models.ErrorResult)
	require.True(t, ok)
	assert.Equal(t, serpapi.ErrMissingAPIKey.Error(), errDoc.Error)
	assert.Len(t, exec.queries, 1)
}

func TestSearchFlightsStatusErrorBecomesErrorDoc(t *testing.T) {
	exec := &fakeExecutor{err: &serpapi.StatusError{StatusCode: 429, Message: "rate exceeded"}}
	svc := newTestService(exec)

	result := svc.SearchFlights(context.Background(), flightReq())

	errDoc, ok := result.(models.ErrorResult)
	require.True(t, ok)
	assert.Equal(t, "SerpAPI error: rate exceeded", errDoc.Error)
}

func TestSearchFlightsNilDocumentBecomesErrorDoc(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("request failed: connection reset")}
	svc := newTestService(exec)

	result := svc.SearchFlights(context.Background(), flightReq())

	errDoc, ok := result.(models.ErrorResult)
	require.True(t, ok)
	assert.Contains(t, errDoc.Error, "request failed")
}

func TestSearchFlightsQueryShape(t *testing.T) {
	exec := &fakeExecutor{doc: models.Document{"best_flights": flightList(1)}}
	svc := newTestService(exec)

	svc.SearchFlights(context.Background(), flightReq())
	q := exec.lastQuery()
	assert.Equal(t, "2", q["type"])
	assert.NotContains(t, q, "return_date")
	assert.Equal(t, "1", q["adults"], "default adults applied before query building")
	assert.Equal(t, "0", q["children"])

	roundTrip := flightReq()
	roundTrip.ReturnDate = "2026-09-20"
	svc.SearchFlights(context.Background(), roundTrip)
	q = exec.lastQuery()
	assert.Equal(t, "1", q["type"])
	assert.Equal(t, "2026-09-20", q["return_date"])
}

func TestSearchFlightsMalformedArraysAreHandled(t *testing.T) {
	// Upstream shape surprises (non-array under an expected key) must not
	// panic past the shaper boundary.
	exec := &fakeExecutor{doc: models.Document{
		"best_flights":  "not-an-array",
		"other_flights": 12.5,
	}}
	svc := newTestService(exec)

	result := svc.SearchFlights(context.Background(), flightReq())

	diag, ok := result.(models.NoResultsResult)
	require.True(t, ok)
	assert.Equal(t, []string{"best_flights", "other_flights"}, diag.AvailableKeys)
}
