package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/poputchik/internal/pkg/logger"
	"github.com/piresc/poputchik/internal/pkg/models"
	"github.com/piresc/poputchik/services/trips"
)

// Criteria returns the current search form
func (uc *TripUC) Criteria() models.SearchCriteria {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.Criteria
}

// SetCriteria replaces the search form. An empty date means today.
func (uc *TripUC) SetCriteria(criteria models.SearchCriteria) (models.SearchCriteria, error) {
	criteria.FromCity = strings.TrimSpace(criteria.FromCity)
	criteria.ToCity = strings.TrimSpace(criteria.ToCity)
	date, err := uc.normalizeDate(criteria.Date)
	if err != nil {
		return models.SearchCriteria{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = uc.state.
		WithFromCity(criteria.FromCity).
		WithToCity(criteria.ToCity).
		WithDate(date)
	return uc.state.Criteria, nil
}

// SetField updates a single field of the search form
func (uc *TripUC) SetField(field models.SearchField, value string) (models.SearchCriteria, error) {
	value = strings.TrimSpace(value)

	var date string
	if field == models.SearchFieldDate {
		var err error
		if date, err = uc.normalizeDate(value); err != nil {
			return models.SearchCriteria{}, err
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	switch field {
	case models.SearchFieldFromCity:
		uc.state = uc.state.WithFromCity(value)
	case models.SearchFieldToCity:
		uc.state = uc.state.WithToCity(value)
	case models.SearchFieldDate:
		uc.state = uc.state.WithDate(date)
	default:
		return models.SearchCriteria{}, fmt.Errorf("%w: %q", trips.ErrUnknownField, field)
	}
	return uc.state.Criteria, nil
}

// Swap exchanges origin and destination
func (uc *TripUC) Swap() models.SearchCriteria {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = uc.state.Swap()
	return uc.state.Criteria
}

// SuggestCities filters the known cities by query
func (uc *TripUC) SuggestCities(query string) []string {
	return FilterCities(uc.cities, strings.TrimSpace(query))
}

// Submit runs a search with the current criteria. The result list is
// replaced on success; on failure the previous list stays and the error
// is kept for the next Snapshot.
func (uc *TripUC) Submit(ctx context.Context) ([]models.TripCard, error) {
	criteria, err := uc.begin()
	if err != nil {
		return nil, err
	}
	defer uc.recoverSearch()

	found, err := uc.tripGW.SearchTrips(ctx, criteria)
	if err != nil {
		uc.fail(err)
		logger.Warn("Trip search failed",
			logger.String("from_city", criteria.FromCity),
			logger.String("to_city", criteria.ToCity),
			logger.String("date", criteria.Date),
			logger.Err(err))
		return nil, err
	}

	uc.succeed(found)
	logger.Info("Trip search completed",
		logger.String("from_city", criteria.FromCity),
		logger.String("to_city", criteria.ToCity),
		logger.String("date", criteria.Date),
		logger.Int("results", len(found)))

	return BuildCards(found, criteria, uc.now(), uc.loc), nil
}

// ListAll loads every published trip into the result list
func (uc *TripUC) ListAll(ctx context.Context) ([]models.TripCard, error) {
	criteria, err := uc.begin()
	if err != nil {
		return nil, err
	}
	defer uc.recoverSearch()

	found, err := uc.tripGW.ListTrips(ctx)
	if err != nil {
		uc.fail(err)
		logger.Warn("Trip listing failed", logger.Err(err))
		return nil, err
	}

	uc.succeed(found)
	logger.Info("Trip listing completed", logger.Int("results", len(found)))

	return BuildCards(found, criteria, uc.now(), uc.loc), nil
}

// Snapshot renders the current session
func (uc *TripUC) Snapshot() models.SearchView {
	uc.mu.Lock()
	state := uc.state
	uc.mu.Unlock()

	view := models.SearchView{
		Criteria:  state.Criteria,
		DateLabel: models.FormatDate(state.Criteria.Date),
		Loading:   state.Loading,
		Cards:     BuildCards(state.Trips, state.Criteria, uc.now(), uc.loc),
	}
	if state.LastError != nil {
		view.LastError = state.LastError.Error()
	}
	if state.SelectedID != nil {
		id := *state.SelectedID
		view.SelectedID = &id
	}
	return view
}

// TripDetail opens a trip from the current results
func (uc *TripUC) TripDetail(id int64) (*models.TripDetail, error) {
	uc.mu.Lock()
	next, ok := uc.state.Select(id)
	if !ok {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: %d", trips.ErrTripNotFound, id)
	}
	uc.state = next
	trip, _ := next.Find(id)
	criteria := next.Criteria
	uc.mu.Unlock()

	logger.Debug("Trip detail opened", logger.Int64("trip_id", id))

	return BuildDetail(trip, criteria, uc.now(), uc.loc), nil
}

// CloseDetail forgets the opened trip
func (uc *TripUC) CloseDetail() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = uc.state.ClearSelection()
}

// Draft turns a free-text announcement into a trip preview
func (uc *TripUC) Draft(ctx context.Context, rawText string) (*models.TripDetail, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, trips.ErrEmptyText
	}

	draft, err := uc.extractor.Extract(ctx, rawText)
	if err != nil {
		return nil, fmt.Errorf("failed to extract trip: %w", err)
	}
	if draft == nil {
		return nil, trips.ErrNothingExtracted
	}

	return BuildDetail(*draft, uc.Criteria(), uc.now(), uc.loc), nil
}

func (uc *TripUC) begin() (models.SearchCriteria, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state.Loading {
		return models.SearchCriteria{}, trips.ErrSearchInProgress
	}
	uc.state = uc.state.Begin()
	return uc.state.Criteria, nil
}

// recoverSearch ends a search whose gateway call panicked, so the session
// does not stay loading, and lets the panic continue
func (uc *TripUC) recoverSearch() {
	if r := recover(); r != nil {
		uc.fail(fmt.Errorf("search aborted: %v", r))
		logger.Error("Trip search panicked", logger.Any("panic", r))
		panic(r)
	}
}

func (uc *TripUC) succeed(found []models.Trip) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = uc.state.Succeed(found)
}

func (uc *TripUC) fail(err error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = uc.state.Fail(err)
}

func (uc *TripUC) normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return models.Today(uc.now(), uc.loc), nil
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return "", fmt.Errorf("%w: %q", trips.ErrInvalidDate, date)
	}
	return date, nil
}
