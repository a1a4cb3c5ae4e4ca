package trips

import (
	"context"

	"github.com/piresc/poputchik/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/poputchik/services/trips TripGW,TripExtractor

// TripGW defines the trips API gateway
type TripGW interface {
	ListTrips(ctx context.Context) ([]models.Trip, error)
	SearchTrips(ctx context.Context, criteria models.SearchCriteria) ([]models.Trip, error)
}

// TripExtractor turns a free-text announcement into a draft trip
type TripExtractor interface {
	Extract(ctx context.Context, rawText string) (*models.Trip, error)
}
