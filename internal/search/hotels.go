package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/dharmasatrya/travelsearch/internal/models"
	"github.com/dharmasatrya/travelsearch/internal/serpapi"
)

// maxProperties caps the hotel result list.
const maxProperties = 5

// SearchHotels runs one google_hotels search and shapes the outcome. Same
// priority order as flights: executor failure, upstream-embedded error,
// primary data (first 5 properties), then a keys diagnostic.
func (s *Service) SearchHotels(ctx context.Context, req models.HotelSearchRequest) any {
	req.Normalize()

	s.logger.Info("searching hotels",
		zap.String("location", req.Location),
		zap.String("check_in", req.CheckInDate),
		zap.String("check_out", req.CheckOutDate),
		zap.Int("sort_by", req.SortBy))

	doc, err := s.executor.Search(ctx, serpapi.HotelQuery(req))
	if err != nil {
		return models.ErrorResult{Error: err.Error()}
	}
	if doc == nil {
		return models.ErrorResult{Error: "unable to fetch hotel data"}
	}
	if passthroughError(doc) {
		return doc
	}

	properties := toAnySlice(doc["properties"])
	if len(properties) == 0 {
		s.logger.Warn("no hotels found in response")
		return models.NoResultsResult{
			Message:       "No hotels found",
			AvailableKeys: availableKeys(doc),
		}
	}

	s.logger.Info("found hotels", zap.Int("count", len(properties)))
	if len(properties) > maxProperties {
		properties = properties[:maxProperties]
	}
	return properties
}
