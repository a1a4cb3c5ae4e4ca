package models

// TripCard is the list representation of a trip
type TripCard struct {
	TripID         int64  `json:"trip_id"`
	DepartureClock string `json:"departure_clock"`
	DepartureDay   string `json:"departure_day"`
	FromCity       string `json:"from_city"`
	ToCity         string `json:"to_city"`
	BoardsMidway   bool   `json:"boards_midway"`
	IsTaxi         bool   `json:"is_taxi"`
	Car            string `json:"car,omitempty"`
	HasCargo       bool   `json:"has_cargo"`
	HasChildSeat   bool   `json:"has_child_seat"`
	Note           string `json:"note,omitempty"`
}

// ContactView is a contact with its label and the link that opens it
type ContactView struct {
	Type      ContactType `json:"type"`
	Label     string      `json:"label"`
	Value     string      `json:"value"`
	ActionURL string      `json:"action_url,omitempty"`
}

// StopView is one row of the route list in the trip detail
type StopView struct {
	CityName    string `json:"city_name"`
	Clock       string `json:"clock"`
	IsFirst     bool   `json:"is_first"`
	IsLast      bool   `json:"is_last"`
	Highlighted bool   `json:"highlighted"`
}

// TripDetail is the full-screen representation of a trip
type TripDetail struct {
	TripID       int64         `json:"trip_id"`
	DayLabel     string        `json:"day_label"`
	Clock        string        `json:"clock"`
	Contacts     []ContactView `json:"contacts"`
	Stops        []StopView    `json:"stops"`
	Via          []string      `json:"via"`
	IsTaxi       bool          `json:"is_taxi"`
	Car          string        `json:"car,omitempty"`
	HasCargo     bool          `json:"has_cargo"`
	HasChildSeat bool          `json:"has_child_seat"`
	Note         string        `json:"note,omitempty"`
	MessageLink  string        `json:"message_link,omitempty"`
	PlatformName string        `json:"platform_name,omitempty"`
}

// SearchView is a snapshot of the search screen
type SearchView struct {
	Criteria   SearchCriteria `json:"criteria"`
	DateLabel  string         `json:"date_label"`
	Loading    bool           `json:"loading"`
	LastError  string         `json:"last_error,omitempty"`
	Cards      []TripCard     `json:"cards"`
	SelectedID *int64         `json:"selected_id,omitempty"`
}
