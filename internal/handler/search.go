package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelsearch/internal/models"
	"github.com/dharmasatrya/travelsearch/internal/search"
)

// SearchHandler exposes the shapers REST-style when the server runs in HTTP
// mode. The response body is the same serialized document the MCP boundary
// would return.
type SearchHandler struct {
	service *search.Service
}

func NewSearchHandler(service *search.Service) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

func (h *SearchHandler) SearchFlights(c echo.Context) error {
	var req models.FlightSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	result := h.service.SearchFlights(c.Request().Context(), req)
	return c.JSONBlob(http.StatusOK, []byte(models.Encode(result)))
}

func (h *SearchHandler) SearchHotels(c echo.Context) error {
	var req models.HotelSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	result := h.service.SearchHotels(c.Request().Context(), req)
	return c.JSONBlob(http.StatusOK, []byte(models.Encode(result)))
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
