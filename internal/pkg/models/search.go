package models

// DateLayout is the calendar date format used in search requests
const DateLayout = "2006-01-02"

// SearchCriteria holds what the user typed into the search form
type SearchCriteria struct {
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
	Date     string `json:"date"`
}

// SearchField names an editable field of SearchCriteria
type SearchField string

const (
	SearchFieldFromCity SearchField = "from_city"
	SearchFieldToCity   SearchField = "to_city"
	SearchFieldDate     SearchField = "date"
)

// DraftRequest is the body accepted by the trip draft endpoint
type DraftRequest struct {
	RawText string `json:"raw_text"`
}
