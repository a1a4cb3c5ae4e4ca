package gateway

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/piresc/poputchik/internal/pkg/http"
	"github.com/piresc/poputchik/internal/pkg/logger"
	"github.com/piresc/poputchik/internal/pkg/models"
)

const (
	tripsEndpoint       = "/trips/"
	tripsSearchEndpoint = "/trips/search"
)

// HTTPGateway reads published trips from the trips API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a trips gateway over an API client
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// ListTrips returns every published trip
func (gw *HTTPGateway) ListTrips(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	if err := gw.client.Get(ctx, tripsEndpoint, &trips); err != nil {
		logger.Error("Failed to list trips", logger.Err(err))
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

// SearchTrips returns the trips the API matches for criteria. Empty
// criteria fields are left out of the query string.
func (gw *HTTPGateway) SearchTrips(ctx context.Context, criteria models.SearchCriteria) ([]models.Trip, error) {
	endpoint := searchEndpoint(criteria)

	var trips []models.Trip
	if err := gw.client.Get(ctx, endpoint, &trips); err != nil {
		logger.Error("Failed to search trips",
			logger.String("endpoint", endpoint),
			logger.Err(err))
		return nil, fmt.Errorf("failed to search trips: %w", err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

func searchEndpoint(criteria models.SearchCriteria) string {
	query := url.Values{}
	if criteria.FromCity != "" {
		query.Set("from_city", criteria.FromCity)
	}
	if criteria.ToCity != "" {
		query.Set("to_city", criteria.ToCity)
	}
	if criteria.Date != "" {
		query.Set("date", criteria.Date)
	}

	if len(query) == 0 {
		return tripsSearchEndpoint
	}
	return tripsSearchEndpoint + "?" + query.Encode()
}
