package models

// FlightSearchRequest carries the caller-facing parameters of a flight
// search. Dates are opaque YYYY-MM-DD strings and are forwarded to the
// upstream engine unparsed; calendar correctness is the upstream's problem.
type FlightSearchRequest struct {
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	OutboundDate     string `json:"outbound_date"`
	ReturnDate       string `json:"return_date,omitempty"`
	Adults           int    `json:"adults"`
	Children         int    `json:"children"`
}

// RoundTrip reports whether a return date was supplied.
func (r *FlightSearchRequest) RoundTrip() bool {
	return r.ReturnDate != ""
}

func (r *FlightSearchRequest) Validate() error {
	if r.DepartureAirport == "" {
		return ErrMissingDepartureAirport
	}
	if r.ArrivalAirport == "" {
		return ErrMissingArrivalAirport
	}
	if r.OutboundDate == "" {
		return ErrMissingOutboundDate
	}
	r.Normalize()
	return nil
}

// Normalize applies the documented defaults in place: 1 adult, 0 children.
func (r *FlightSearchRequest) Normalize() {
	if r.Adults <= 0 {
		r.Adults = 1
	}
	if r.Children < 0 {
		r.Children = 0
	}
}

// HotelSearchRequest carries the caller-facing parameters of a hotel search.
// HotelClass is a comma-separated digit string ("2,3,4"); when empty it is
// omitted from the upstream query entirely. SortBy is an opaque upstream
// code (8 highest rating, 3 lowest price, 13 highest price) forwarded
// without validation.
type HotelSearchRequest struct {
	Location     string `json:"location"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Rooms        int    `json:"rooms"`
	HotelClass   string `json:"hotel_class,omitempty"`
	SortBy       int    `json:"sort_by"`
}

func (r *HotelSearchRequest) Validate() error {
	if r.Location == "" {
		return ErrMissingLocation
	}
	if r.CheckInDate == "" {
		return ErrMissingCheckInDate
	}
	if r.CheckOutDate == "" {
		return ErrMissingCheckOutDate
	}
	r.Normalize()
	return nil
}

// Normalize applies the documented defaults in place: 1 adult, 0 children,
// 1 room, sort by highest rating.
func (r *HotelSearchRequest) Normalize() {
	if r.Adults <= 0 {
		r.Adults = 1
	}
	if r.Children < 0 {
		r.Children = 0
	}
	if r.Rooms <= 0 {
		r.Rooms = 1
	}
	if r.SortBy == 0 {
		r.SortBy = 8
	}
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingDepartureAirport ValidationError = "departure_airport is required"
	ErrMissingArrivalAirport   ValidationError = "arrival_airport is required"
	ErrMissingOutboundDate     ValidationError = "outbound_date is required"
	ErrMissingLocation         ValidationError = "location is required"
	ErrMissingCheckInDate      ValidationError = "check_in_date is required"
	ErrMissingCheckOutDate     ValidationError = "check_out_date is required"
)
