package serpapi

import (
	"strconv"

	"github.com/dharmasatrya/travelsearch/internal/models"
)

// Engine discriminator values recognized by the upstream API.
const (
	EngineGoogleFlights = "google_flights"
	EngineGoogleHotels  = "google_hotels"
)

// Trip type codes for the google_flights engine.
const (
	TripRoundTrip = "1"
	TripOneWay    = "2"
)

// Query is the flat set of upstream query parameters. Built fresh per call,
// never persisted; the API key is not part of it (the client injects that
// at dispatch).
type Query map[string]string

// locale and currency are fixed in this version, not caller-configurable.
func baseQuery(engine string) Query {
	return Query{
		"engine":   engine,
		"hl":       "en",
		"gl":       "us",
		"currency": "USD",
	}
}

// FlightQuery builds the google_flights parameter set from a normalized
// request. Presence of a return date selects the round-trip type code.
func FlightQuery(req models.FlightSearchRequest) Query {
	q := baseQuery(EngineGoogleFlights)
	q["departure_id"] = req.DepartureAirport
	q["arrival_id"] = req.ArrivalAirport
	q["outbound_date"] = req.OutboundDate
	q["adults"] = strconv.Itoa(req.Adults)
	q["children"] = strconv.Itoa(req.Children)

	if req.RoundTrip() {
		q["type"] = TripRoundTrip
		q["return_date"] = req.ReturnDate
	} else {
		q["type"] = TripOneWay
	}
	return q
}

// HotelQuery builds the google_hotels parameter set from a normalized
// request. hotel_class is only sent when the caller supplied one; sort_by
// is forwarded as-is, whatever the code.
func HotelQuery(req models.HotelSearchRequest) Query {
	q := baseQuery(EngineGoogleHotels)
	q["q"] = req.Location
	q["check_in_date"] = req.CheckInDate
	q["check_out_date"] = req.CheckOutDate
	q["adults"] = strconv.Itoa(req.Adults)
	q["children"] = strconv.Itoa(req.Children)
	q["rooms"] = strconv.Itoa(req.Rooms)
	q["sort_by"] = strconv.Itoa(req.SortBy)

	if req.HotelClass != "" {
		q["hotel_class"] = req.HotelClass
	}
	return q
}
