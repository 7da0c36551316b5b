// Package handler is the tool invocation boundary: it exposes the two
// search operations over MCP (stdio) and, optionally, REST. Per-request
// failures never surface as protocol errors — every invocation returns a
// well-formed JSON string whose shape tells the caller what happened.
package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/dharmasatrya/travelsearch/internal/models"
	"github.com/dharmasatrya/travelsearch/internal/search"
)

type ToolHandler struct {
	service *search.Service
	logger  *zap.Logger
}

func NewToolHandler(service *search.Service, logger *zap.Logger) *ToolHandler {
	return &ToolHandler{
		service: service,
		logger:  logger,
	}
}

// Register adds both search tools to the MCP server.
func (h *ToolHandler) Register(srv *server.MCPServer) {
	flightsTool := mcp.NewTool("search_flights",
		mcp.WithDescription("Search for flights using the Google Flights engine via SerpAPI"),
		mcp.WithString("departure_airport", mcp.Required(),
			mcp.Description("Departure airport code (e.g. 'NYC', 'LAX', 'JFK')")),
		mcp.WithString("arrival_airport", mcp.Required(),
			mcp.Description("Arrival airport code (e.g. 'LON', 'NRT', 'CDG')")),
		mcp.WithString("outbound_date", mcp.Required(),
			mcp.Description("Departure date in YYYY-MM-DD format (e.g. '2025-12-15')")),
		mcp.WithString("return_date",
			mcp.Description("Return date in YYYY-MM-DD format; omit for one-way trips")),
		mcp.WithNumber("adults",
			mcp.Description("Number of adult passengers (default: 1)")),
		mcp.WithNumber("children",
			mcp.Description("Number of child passengers (default: 0)")),
	)
	srv.AddTool(flightsTool, h.SearchFlights)

	hotelsTool := mcp.NewTool("search_hotels",
		mcp.WithDescription("Search for hotels using the Google Hotels engine via SerpAPI"),
		mcp.WithString("location", mcp.Required(),
			mcp.Description("Location to search for hotels (e.g. 'New York', 'Paris', 'Tokyo')")),
		mcp.WithString("check_in_date", mcp.Required(),
			mcp.Description("Check-in date in YYYY-MM-DD format")),
		mcp.WithString("check_out_date", mcp.Required(),
			mcp.Description("Check-out date in YYYY-MM-DD format")),
		mcp.WithNumber("adults",
			mcp.Description("Number of adults (default: 1)")),
		mcp.WithNumber("children",
			mcp.Description("Number of children (default: 0)")),
		mcp.WithNumber("rooms",
			mcp.Description("Number of rooms (default: 1)")),
		mcp.WithString("hotel_class",
			mcp.Description("Hotel star rating filter, comma-separated (e.g. '2,3,4')")),
		mcp.WithNumber("sort_by",
			mcp.Description("Sort code: 8 highest rating (default), 3 lowest price, 13 highest price")),
	)
	srv.AddTool(hotelsTool, h.SearchHotels)
}

// SearchFlights handles a search_flights invocation. Arguments arrive
// loosely typed over the wire; cast coerces numeric-like values and
// Validate applies defaults before any query building.
func (h *ToolHandler) SearchFlights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	logger := h.logger.With(
		zap.String("invocation_id", uuid.NewString()),
		zap.String("tool", "search_flights"))

	fr := models.FlightSearchRequest{
		DepartureAirport: cast.ToString(args["departure_airport"]),
		ArrivalAirport:   cast.ToString(args["arrival_airport"]),
		OutboundDate:     cast.ToString(args["outbound_date"]),
		ReturnDate:       cast.ToString(args["return_date"]),
		Adults:           cast.ToInt(args["adults"]),
		Children:         cast.ToInt(args["children"]),
	}
	if err := fr.Validate(); err != nil {
		logger.Warn("invalid arguments", zap.Error(err))
		return mcp.NewToolResultText(models.Encode(models.ErrorResult{Error: err.Error()})), nil
	}

	logger.Info("tool invoked",
		zap.String("departure", fr.DepartureAirport),
		zap.String("arrival", fr.ArrivalAirport))

	result := h.service.SearchFlights(ctx, fr)
	return mcp.NewToolResultText(models.Encode(result)), nil
}

// SearchHotels handles a search_hotels invocation.
func (h *ToolHandler) SearchHotels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	logger := h.logger.With(
		zap.String("invocation_id", uuid.NewString()),
		zap.String("tool", "search_hotels"))

	hr := models.HotelSearchRequest{
		Location:     cast.ToString(args["location"]),
		CheckInDate:  cast.ToString(args["check_in_date"]),
		CheckOutDate: cast.ToString(args["check_out_date"]),
		Adults:       cast.ToInt(args["adults"]),
		Children:     cast.ToInt(args["children"]),
		Rooms:        cast.ToInt(args["rooms"]),
		HotelClass:   cast.ToString(args["hotel_class"]),
		SortBy:       cast.ToInt(args["sort_by"]),
	}
	if err := hr.Validate(); err != nil {
		logger.Warn("invalid arguments", zap.Error(err))
		return mcp.NewToolResultText(models.Encode(models.ErrorResult{Error: err.Error()})), nil
	}

	logger.Info("tool invoked", zap.String("location", hr.Location))

	result := h.service.SearchHotels(ctx, hr)
	return mcp.NewToolResultText(models.Encode(result)), nil
}
