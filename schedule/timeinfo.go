package schedule

import "time"

// Location used to interpret zone-less timestamps and to pick the
// calendar day of zoned ones. The agency operates in one timezone.
var Location = time.Local

// Accepted timestamp layouts, tried in order. Zone-less layouts are
// parsed in Location.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// TimeInfo carries the computed display instants of one event.
// For accommodation events the departure/arrival pair holds
// check-in/check-out.
type TimeInfo struct {
	Date             *time.Time `json:"date,omitempty"`
	TimeStr          string     `json:"timeStr"`
	DepartureTime    *time.Time `json:"departureTime,omitempty"`
	DepartureTimeStr string     `json:"departureTimeStr,omitempty"`
	ArrivalTime      *time.Time `json:"arrivalTime,omitempty"`
	ArrivalTimeStr   string     `json:"arrivalTimeStr,omitempty"`
	// EndDate is the explicit end instant when the event has a
	// distinct second endpoint (arrival, check-out).
	EndDate    *time.Time `json:"endDate,omitempty"`
	IsMultiDay bool       `json:"isMultiDay"`
}

// ParseInstant parses one ISO-8601-ish timestamp. A malformed or
// empty value yields nil, never an error.
func ParseInstant(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, Location); err == nil {
			return &t
		}
	}
	return nil
}

// ExtractTime derives the display instants of one event. The primary
// Date is the earliest valid instant the event carries; events with
// no parsable instant get a zero TimeInfo and sort last.
func ExtractTime(ev TripEvent) TimeInfo {
	var info TimeInfo

	switch ev.Type {
	case EventTransport, EventCruise:
		info.DepartureTime = ParseInstant(ev.DepartureTime)
		info.ArrivalTime = ParseInstant(ev.ArrivalTime)
		info.DepartureTimeStr = clockString(info.DepartureTime)
		info.ArrivalTimeStr = clockString(info.ArrivalTime)
		info.Date = earliest(info.DepartureTime, info.ArrivalTime)
		if info.DepartureTime != nil && info.ArrivalTime != nil {
			info.IsMultiDay = !sameDay(*info.DepartureTime, *info.ArrivalTime)
			if info.ArrivalTime.After(*info.DepartureTime) {
				info.EndDate = info.ArrivalTime
			}
		}
	case EventAccommodation:
		info.DepartureTime = ParseInstant(ev.CheckIn)
		info.ArrivalTime = ParseInstant(ev.CheckOut)
		info.DepartureTimeStr = clockString(info.DepartureTime)
		info.ArrivalTimeStr = clockString(info.ArrivalTime)
		info.Date = earliest(info.DepartureTime, info.ArrivalTime)
		if info.DepartureTime != nil && info.ArrivalTime != nil && info.ArrivalTime.After(*info.DepartureTime) {
			info.EndDate = info.ArrivalTime
		}
	case EventActivity:
		info.Date = ParseInstant(ev.ActivityTime)
	}

	info.TimeStr = clockString(info.Date)
	return info
}

func clockString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(Location).Format("15:04")
}

func earliest(ts ...*time.Time) *time.Time {
	var min *time.Time
	for _, t := range ts {
		if t == nil {
			continue
		}
		if min == nil || t.Before(*min) {
			min = t
		}
	}
	return min
}

// dayKey is the calendar-day bucket key of an instant.
func dayKey(t time.Time) string {
	return t.In(Location).Format("2006-01-02")
}

func sameDay(a, b time.Time) bool {
	return dayKey(a) == dayKey(b)
}
