package trips

import (
	"context"

	"github.com/piresc/poputchik/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/poputchik/services/trips TripUC

// TripUC represents the trip search usecase interface
type TripUC interface {
	// search form
	Criteria() models.SearchCriteria
	SetCriteria(criteria models.SearchCriteria) (models.SearchCriteria, error)
	SetField(field models.SearchField, value string) (models.SearchCriteria, error)
	Swap() models.SearchCriteria
	SuggestCities(query string) []string

	// results
	Submit(ctx context.Context) ([]models.TripCard, error)
	ListAll(ctx context.Context) ([]models.TripCard, error)
	Snapshot() models.SearchView
	TripDetail(id int64) (*models.TripDetail, error)
	CloseDetail()

	// publishing
	Draft(ctx context.Context, rawText string) (*models.TripDetail, error)
}
