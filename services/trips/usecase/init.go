package usecase

import (
	"sync"
	"time"

	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/piresc/poputchik/services/trips"
)

// TripUC implements the trip search use case. It holds one search
// session; every exported method is safe for concurrent use.
type TripUC struct {
	tripGW    trips.TripGW
	extractor trips.TripExtractor
	cities    []string
	loc       *time.Location
	now       func() time.Time

	mu    sync.Mutex
	state SearchState
}

// Option customises a TripUC
type Option func(*TripUC)

// WithClock replaces the wall clock used for default dates and day labels
func WithClock(now func() time.Time) Option {
	return func(uc *TripUC) {
		uc.now = now
	}
}

// NewTripUC creates a new trip use case searching on today's date in loc
func NewTripUC(
	cfg *models.Config,
	tripGW trips.TripGW,
	extractor trips.TripExtractor,
	loc *time.Location,
	opts ...Option,
) *TripUC {
	if loc == nil {
		loc = time.Local
	}

	uc := &TripUC{
		tripGW:    tripGW,
		extractor: extractor,
		cities:    cfg.Search.Cities,
		loc:       loc,
		now:       models.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}

	uc.state = NewSearchState(models.Today(uc.now(), loc))
	return uc
}
