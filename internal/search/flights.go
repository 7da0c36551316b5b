package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/dharmasatrya/travelsearch/internal/models"
	"github.com/dharmasatrya/travelsearch/internal/serpapi"
)

// maxOtherFlights caps the fallback list when no best flights exist.
const maxOtherFlights = 10

// SearchFlights runs one google_flights search and shapes the outcome.
// Priority order: executor failure → error document; upstream-embedded
// error → passed through unchanged; non-empty best_flights → returned in
// full; non-empty other_flights → diagnostic with the first 10; otherwise a
// diagnostic listing the document's top-level keys.
func (s *Service) SearchFlights(ctx context.Context, req models.FlightSearchRequest) any {
	req.Normalize()

	s.logger.Info("searching flights",
		zap.String("departure", req.DepartureAirport),
		zap.String("arrival", req.ArrivalAirport),
		zap.String("outbound_date", req.OutboundDate),
		zap.Bool("round_trip", req.RoundTrip()))

	doc, err := s.executor.Search(ctx, serpapi.FlightQuery(req))
	if err != nil {
		return models.ErrorResult{Error: err.Error()}
	}
	if doc == nil {
		return models.ErrorResult{Error: "unable to fetch flight data"}
	}
	if passthroughError(doc) {
		return doc
	}

	bestFlights := toAnySlice(doc["best_flights"])
	if len(bestFlights) > 0 {
		s.logger.Info("found best flights", zap.Int("count", len(bestFlights)))
		return bestFlights
	}

	otherFlights := toAnySlice(doc["other_flights"])
	if len(otherFlights) > 0 {
		s.logger.Info("no best flights, falling back to other flights",
			zap.Int("count", len(otherFlights)))
		if len(otherFlights) > maxOtherFlights {
			otherFlights = otherFlights[:maxOtherFlights]
		}
		return models.FlightFallbackResult{
			Message: "No best flights found, showing other options",
			Flights: otherFlights,
		}
	}

	s.logger.Warn("no flights found in response")
	return models.NoResultsResult{
		Message:       "No flights found",
		AvailableKeys: availableKeys(doc),
	}
}
