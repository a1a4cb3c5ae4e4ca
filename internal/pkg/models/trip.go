package models

// ContactType identifies the channel a driver can be reached on
type ContactType string

const (
	ContactTypePhone    ContactType = "phone"
	ContactTypeTelegram ContactType = "telegram"
	ContactTypeTG       ContactType = "tg"
	ContactTypeWhatsApp ContactType = "whatsapp"
)

// Contact is one way to reach the driver of a trip
type Contact struct {
	Type  ContactType `json:"type"`
	Value string      `json:"value"`
}

// Stop is a single waypoint of a trip route.
// ArrivalTime is kept as the raw ISO string sent by the API and may be empty.
type Stop struct {
	ID          int64  `json:"id"`
	TripID      int64  `json:"trip_id"`
	CityName    string `json:"city_name"`
	ArrivalTime string `json:"arrival_time"`
	StopOrder   int    `json:"stop_order"`
}

// Trip represents a driver-advertised intercity ride
type Trip struct {
	ID            int64     `json:"id"`
	CreatedAt     string    `json:"created_at"`
	Contacts      []Contact `json:"contacts"`
	Car           *string   `json:"car,omitempty"`
	PlatformName  string    `json:"platform_name"`
	DriverID      int64     `json:"driver_id"`
	DepartureTime string    `json:"departure_time"`
	HasCargo      bool      `json:"has_cargo"`
	HasChildSeat  bool      `json:"has_child_seat"`
	IsTaxi        bool      `json:"is_taxi"`
	MessageLink   string    `json:"message_link,omitempty"`
	RawText       *string   `json:"raw_text,omitempty"`
	Stops         []Stop    `json:"stops"`
}

// CarName returns the vehicle description or an empty string
func (t *Trip) CarName() string {
	if t.Car == nil {
		return ""
	}
	return *t.Car
}

// Note returns the free-text message of the trip or an empty string
func (t *Trip) Note() string {
	if t.RawText == nil {
		return ""
	}
	return *t.RawText
}
