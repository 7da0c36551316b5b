package serpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/travelsearch/internal/models"
)

func TestFlightQueryOneWay(t *testing.T) {
	req := models.FlightSearchRequest{
		DepartureAirport: "CGK",
		ArrivalAirport:   "NRT",
		OutboundDate:     "2026-09-15",
		Adults:           1,
	}
	q := FlightQuery(req)

	assert.Equal(t, "google_flights", q["engine"])
	assert.Equal(t, "CGK", q["departure_id"])
	assert.Equal(t, "NRT", q["arrival_id"])
	assert.Equal(t, "2026-09-15", q["outbound_date"])
	assert.Equal(t, TripOneWay, q["type"])
	assert.NotContains(t, q, "return_date")
}

func TestFlightQueryRoundTrip(t *testing.T) {
	req := models.FlightSearchRequest{
		DepartureAirport: "JFK",
		ArrivalAirport:   "LHR",
		OutboundDate:     "2026-09-15",
		ReturnDate:       "2026-09-22",
		Adults:           2,
		Children:         1,
	}
	q := FlightQuery(req)

	assert.Equal(t, TripRoundTrip, q["type"])
	assert.Equal(t, "2026-09-22", q["return_date"])
	assert.Equal(t, "2", q["adults"])
	assert.Equal(t, "1", q["children"])
}

func TestFlightQueryFixedLocaleAndCurrency(t *testing.T) {
	q := FlightQuery(models.FlightSearchRequest{
		DepartureAirport: "JFK",
		ArrivalAirport:   "LHR",
		OutboundDate:     "2026-09-15",
		Adults:           1,
	})
	assert.Equal(t, "en", q["hl"])
	assert.Equal(t, "us", q["gl"])
	assert.Equal(t, "USD", q["currency"])
}

func TestHotelQueryOmitsEmptyHotelClass(t *testing.T) {
	req := models.HotelSearchRequest{
		Location:     "Tokyo",
		CheckInDate:  "2026-10-01",
		CheckOutDate: "2026-10-05",
		Adults:       1,
		Rooms:        1,
		SortBy:       8,
	}
	q := HotelQuery(req)

	assert.Equal(t, "google_hotels", q["engine"])
	assert.Equal(t, "Tokyo", q["q"])
	assert.NotContains(t, q, "hotel_class")
	assert.Equal(t, "8", q["sort_by"])
}

func TestHotelQueryIncludesHotelClass(t *testing.T) {
	req := models.HotelSearchRequest{
		Location:     "Paris",
		CheckInDate:  "2026-10-01",
		CheckOutDate: "2026-10-05",
		Adults:       2,
		Rooms:        2,
		HotelClass:   "3,4",
		SortBy:       3,
	}
	q := HotelQuery(req)

	assert.Equal(t, "3,4", q["hotel_class"])
	assert.Equal(t, "3", q["sort_by"])
	assert.Equal(t, "2", q["rooms"])
}

func TestHotelQueryForwardsUnrecognizedSortCode(t *testing.T) {
	req := models.HotelSearchRequest{
		Location:     "Oslo",
		CheckInDate:  "2026-10-01",
		CheckOutDate: "2026-10-05",
		Adults:       1,
		Rooms:        1,
		SortBy:       42,
	}
	assert.Equal(t, "42", HotelQuery(req)["sort_by"])
}
