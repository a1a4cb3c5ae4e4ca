package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/poputchik/internal/pkg/http"
	"github.com/piresc/poputchik/internal/pkg/logger"
	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/piresc/poputchik/internal/utils"
	"github.com/piresc/poputchik/services/trips"
)

// TripHandler serves the search session over HTTP
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// FieldRequest carries a new value for one search field
type FieldRequest struct {
	Value string `json:"value"`
}

// GetSearch returns the current search screen
func (h *TripHandler) GetSearch(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Search state", h.tripUC.Snapshot())
}

// SetCriteria replaces the search form
func (h *TripHandler) SetCriteria(c echo.Context) error {
	var req models.SearchCriteria
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	criteria, err := h.tripUC.SetCriteria(req)
	if err != nil {
		return writeError(c, err, false)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Criteria updated", criteria)
}

// SetField updates one field of the search form
func (h *TripHandler) SetField(c echo.Context) error {
	var req FieldRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	criteria, err := h.tripUC.SetField(models.SearchField(c.Param("field")), req.Value)
	if err != nil {
		return writeError(c, err, false)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Criteria updated", criteria)
}

// Swap exchanges origin and destination
func (h *TripHandler) Swap(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Cities swapped", h.tripUC.Swap())
}

// Submit runs the search
func (h *TripHandler) Submit(c echo.Context) error {
	cards, err := h.tripUC.Submit(c.Request().Context())
	if err != nil {
		return writeError(c, err, true)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Search completed", cards)
}

// ListAll loads every published trip
func (h *TripHandler) ListAll(c echo.Context) error {
	cards, err := h.tripUC.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err, true)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trips loaded", cards)
}

// GetTrip opens a trip from the current results
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Trip ID must be a number")
	}

	detail, err := h.tripUC.TripDetail(id)
	if err != nil {
		return writeError(c, err, false)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip detail", detail)
}

// CloseTrip forgets the opened trip
func (h *TripHandler) CloseTrip(c echo.Context) error {
	h.tripUC.CloseDetail()
	return c.NoContent(http.StatusNoContent)
}

// SuggestCities returns the known cities matching ?q=
func (h *TripHandler) SuggestCities(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Cities", h.tripUC.SuggestCities(c.QueryParam("q")))
}

// Draft recognises a trip in free text
func (h *TripHandler) Draft(c echo.Context) error {
	var req models.DraftRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	detail, err := h.tripUC.Draft(c.Request().Context(), req.RawText)
	if err != nil {
		return writeError(c, err, false)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip draft", detail)
}

// writeError maps use case errors onto the response envelope. upstream
// marks calls whose unknown failures come from the trips API.
func writeError(c echo.Context, err error, upstream bool) error {
	switch {
	case errors.Is(err, trips.ErrSearchInProgress):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, trips.ErrTripNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, trips.ErrEmptyText),
		errors.Is(err, trips.ErrNothingExtracted),
		errors.Is(err, trips.ErrInvalidDate),
		errors.Is(err, trips.ErrUnknownField):
		return utils.BadRequestResponse(c, err.Error())
	}

	if apiErr, ok := httpclient.AsAPIError(err); ok {
		return utils.BadGatewayResponse(c, apiErr.Message)
	}

	logger.Error("Request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	if upstream {
		return utils.BadGatewayResponse(c, err.Error())
	}
	return utils.InternalServerErrorResponse(c, err.Error())
}
