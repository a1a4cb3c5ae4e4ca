package trips

import "errors"

var (
	ErrSearchInProgress = errors.New("search already in progress")
	ErrTripNotFound     = errors.New("trip not found in current results")
	ErrEmptyText        = errors.New("trip text is empty")
	ErrNothingExtracted = errors.New("no trip recognised in text")
	ErrUnknownField     = errors.New("unknown search field")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
)
