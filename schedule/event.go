package schedule

// Event type discriminants. Anything else falls back to a plain
// description entry.
const (
	EventTransport     = "transport"
	EventCruise        = "cruise"
	EventAccommodation = "accommodation"
	EventActivity      = "activity"
	EventImages        = "images"
)

type EventImage struct {
	URL string `json:"url" bson:"url"`
	ID  string `json:"id,omitempty" bson:"id,omitempty"`
}

// TripEvent is one entry of a trip day. Which fields are meaningful
// depends on Type; all timestamps are ISO-8601 strings and may be
// empty or malformed — the engine treats those as "no time".
type TripEvent struct {
	Type string `json:"type" bson:"type"`

	// transport / cruise
	TransportType  string `json:"transportType,omitempty" bson:"transportType,omitempty"`
	DepartureTime  string `json:"departureTime,omitempty" bson:"departureTime,omitempty"`
	ArrivalTime    string `json:"arrivalTime,omitempty" bson:"arrivalTime,omitempty"`
	DeparturePlace string `json:"departurePlace,omitempty" bson:"departurePlace,omitempty"`
	ArrivalPlace   string `json:"arrivalPlace,omitempty" bson:"arrivalPlace,omitempty"`
	CompanyName    string `json:"companyName,omitempty" bson:"companyName,omitempty"`
	TransportName  string `json:"transportName,omitempty" bson:"transportName,omitempty"`
	TransportCode  string `json:"transportCode,omitempty" bson:"transportCode,omitempty"`
	CabinType      string `json:"cabinType,omitempty" bson:"cabinType,omitempty"`

	// accommodation
	HotelName  string `json:"hotelName,omitempty" bson:"hotelName,omitempty"`
	CheckIn    string `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty" bson:"checkOut,omitempty"`
	RoomType   string `json:"roomType,omitempty" bson:"roomType,omitempty"`
	BoardBasis string `json:"boardBasis,omitempty" bson:"boardBasis,omitempty"`
	StarRating int    `json:"starRating,omitempty" bson:"starRating,omitempty"`
	HotelLink  string `json:"hotelLink,omitempty" bson:"hotelLink,omitempty"`

	// activity
	ActivityTime string `json:"activityTime,omitempty" bson:"activityTime,omitempty"`

	// images
	Images []EventImage `json:"images,omitempty" bson:"images,omitempty"`

	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// ItineraryDay is the input unit: events as the agent entered them
// under a calendar date label ("YYYY-MM-DD"). An event's own
// timestamps, not the label, decide where its echo entries land.
type ItineraryDay struct {
	DayLabel       string      `json:"dayLabel" bson:"dayLabel"`
	DayDescription string      `json:"dayDescription,omitempty" bson:"dayDescription,omitempty"`
	Events         []TripEvent `json:"events" bson:"events"`
}
