package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/poputchik/services/trips"
	httpHandler "github.com/piresc/poputchik/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	search := api.Group("/search")
	search.GET("", h.tripHTTP.GetSearch)
	search.PUT("/criteria", h.tripHTTP.SetCriteria)
	search.PATCH("/criteria/:field", h.tripHTTP.SetField)
	search.POST("/swap", h.tripHTTP.Swap)
	search.POST("/submit", h.tripHTTP.Submit)
	search.DELETE("/selection", h.tripHTTP.CloseTrip)

	tripsGroup := api.Group("/trips")
	tripsGroup.POST("/all", h.tripHTTP.ListAll)
	tripsGroup.POST("/draft", h.tripHTTP.Draft)
	tripsGroup.GET("/:id", h.tripHTTP.GetTrip)

	api.GET("/cities", h.tripHTTP.SuggestCities)
}
