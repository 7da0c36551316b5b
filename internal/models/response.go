package models

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is a decoded upstream JSON object. No schema is enforced beyond
// presence checks; missing keys are a normal, handled case.
type Document = map[string]any

// ErrorResult is the error document shape: an invocation that failed, for
// whatever reason, always surfaces as one of these.
type ErrorResult struct {
	Error string `json:"error"`
}

// FlightFallbackResult is the diagnostic shape returned when no best flights
// exist but other options do.
type FlightFallbackResult struct {
	Message string `json:"message"`
	Flights []any  `json:"flights"`
}

// NoResultsResult is the diagnostic shape returned when the expected result
// array is empty or absent. AvailableKeys lists the top-level keys of the
// upstream document to aid debugging of unexpected shapes.
type NoResultsResult struct {
	Message       string   `json:"message"`
	AvailableKeys []string `json:"available_keys"`
}

// ErrorResponse is the HTTP-mode failure envelope for malformed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Encode serializes a result document to the JSON string handed back over
// the tool boundary. The boundary contract is a string, never a raw object;
// a document that cannot be serialized degrades to an error document.
func Encode(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fallback, _ := json.Marshal(ErrorResult{Error: "failed to serialize result: " + err.Error()})
		return string(fallback)
	}
	return string(data)
}
