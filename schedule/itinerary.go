package schedule

import (
	"sort"
	"time"
)

// Mode selects how BuildItinerary buckets its input: "multi" keeps
// one bucket per entered day, "single" folds every event into one
// date-grouped view.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
)

// Default duration assumed for events without an explicit end, so
// that two activities at the same minute collide but two an hour
// apart do not.
const defaultEventSpan = time.Hour

// ProcessedEvent is a display entry: the original event plus its
// computed instants and annotations. Echo entries carry exactly one
// of the arrival/checkout flags.
type ProcessedEvent struct {
	TripEvent        `bson:",inline"`
	TimeInfo         TimeInfo `json:"timeInfo" bson:"timeInfo"`
	IsArrivalEvent   bool     `json:"isArrivalEvent,omitempty" bson:"isArrivalEvent,omitempty"`
	IsCheckoutEvent  bool     `json:"isCheckoutEvent,omitempty" bson:"isCheckoutEvent,omitempty"`
	IsDepartureEvent bool     `json:"isDepartureEvent,omitempty" bson:"isDepartureEvent,omitempty"`
	IsOverlapping    bool     `json:"isOverlapping,omitempty" bson:"isOverlapping,omitempty"`
	IsShortStay      bool     `json:"isShortStay,omitempty" bson:"isShortStay,omitempty"`
}

// ProcessedDay is one output bucket: a calendar day with its events
// in display order. DayNumber counts elapsed days since the first
// bucket, starting at 1, so absent days leave gaps.
type ProcessedDay struct {
	DayLabel       string           `json:"dayLabel" bson:"dayLabel"`
	DayDescription string           `json:"dayDescription,omitempty" bson:"dayDescription,omitempty"`
	DayNumber      int              `json:"dayNumber" bson:"dayNumber"`
	Events         []ProcessedEvent `json:"events" bson:"events"`
}

// splitEvent turns one raw event into its display entries: the
// original (departure / check-in representation) and, when the span
// crosses a calendar day, an echo for the far endpoint.
func splitEvent(ev TripEvent, mode Mode) (ProcessedEvent, *ProcessedEvent) {
	main := ProcessedEvent{TripEvent: ev, TimeInfo: ExtractTime(ev)}

	switch ev.Type {
	case EventAccommodation:
		checkIn := main.TimeInfo.DepartureTime
		checkOut := main.TimeInfo.ArrivalTime
		if checkIn == nil || checkOut == nil {
			return main, nil
		}
		if !sameDay(*checkIn, *checkOut) {
			echo := main
			echo.IsCheckoutEvent = true
			echo.TimeInfo.Date = checkOut
			echo.TimeInfo.TimeStr = clockString(checkOut)
			echo.TimeInfo.EndDate = nil
			return main, &echo
		}
		if checkOut.Sub(*checkIn) < 24*time.Hour {
			main.IsShortStay = true
		}
	case EventTransport, EventCruise:
		if main.TimeInfo.IsMultiDay {
			arrival := main.TimeInfo.ArrivalTime
			echo := main
			echo.IsArrivalEvent = true
			echo.TimeInfo.Date = arrival
			echo.TimeInfo.TimeStr = main.TimeInfo.ArrivalTimeStr
			echo.TimeInfo.EndDate = nil
			if mode == ModeMulti {
				main.IsDepartureEvent = true
			}
			return main, &echo
		}
	}
	return main, nil
}

// BuildItinerary runs the whole pipeline: split, bucket, order,
// intra-day sort and overlap annotation. It never fails; malformed
// timestamps degrade to undated entries placed last. The input is
// not mutated and repeated calls yield identical output.
func BuildItinerary(days []ItineraryDay, mode Mode) []ProcessedDay {
	if len(days) == 0 {
		return nil
	}

	input := days
	if mode == ModeSingle {
		// one synthetic bucket holding every event
		flat := ItineraryDay{
			DayLabel:       days[0].DayLabel,
			DayDescription: days[0].DayDescription,
		}
		for _, d := range days {
			flat.Events = append(flat.Events, d.Events...)
		}
		input = []ItineraryDay{flat}
	}

	buckets := make(map[string]*ProcessedDay)
	var order []string

	bucketFor := func(key string) *ProcessedDay {
		if b, ok := buckets[key]; ok {
			return b
		}
		b := &ProcessedDay{DayLabel: key}
		buckets[key] = b
		order = append(order, key)
		return b
	}

	// seed buckets from the entered days
	for _, d := range input {
		b := bucketFor(normalizeLabel(d.DayLabel))
		if d.DayDescription != "" {
			b.DayDescription = d.DayDescription
		}
	}

	// place originals and echoes
	for _, d := range input {
		key := normalizeLabel(d.DayLabel)
		for _, ev := range d.Events {
			main, echo := splitEvent(ev, mode)
			b := bucketFor(key)
			b.Events = append(b.Events, main)
			if echo != nil {
				eb := bucketFor(dayKey(*echo.TimeInfo.Date))
				eb.Events = append(eb.Events, *echo)
			}
		}
	}

	// drop dead days: nothing scheduled, nothing written about them
	var keys []string
	for _, key := range order {
		b := buckets[key]
		if len(b.Events) == 0 && b.DayDescription == "" {
			continue
		}
		keys = append(keys, key)
	}

	orderDays(keys, buckets)

	out := make([]ProcessedDay, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		sortDayEvents(b.Events)
		markOverlaps(b.Events)
		out = append(out, *b)
	}
	return out
}

// orderDays sorts bucket keys chronologically and assigns elapsed-day
// numbers. Keys that do not parse as dates keep their insertion order
// after the dated ones and continue the numbering.
func orderDays(keys []string, buckets map[string]*ProcessedDay) {
	type dated struct {
		key  string
		date time.Time
		ok   bool
		pos  int
	}
	ds := make([]dated, len(keys))
	for i, key := range keys {
		t, err := time.ParseInLocation("2006-01-02", key, Location)
		ds[i] = dated{key: key, date: t, ok: err == nil, pos: i}
	}
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].ok != ds[j].ok {
			return ds[i].ok
		}
		if !ds[i].ok {
			return ds[i].pos < ds[j].pos
		}
		return ds[i].date.Before(ds[j].date)
	})

	var first time.Time
	lastNumber := 0
	for i, d := range ds {
		keys[i] = d.key
		b := buckets[d.key]
		if d.ok {
			if i == 0 {
				first = d.date
			}
			b.DayNumber = daysBetween(first, d.date) + 1
		} else {
			b.DayNumber = lastNumber + 1
		}
		lastNumber = b.DayNumber
	}
}

// daysBetween counts calendar days between two local midnights,
// rounding away DST shifts.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour))
}

// sortDayEvents orders a bucket by display instant; undated events
// go last, keeping their relative insertion order.
func sortDayEvents(events []ProcessedEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].TimeInfo.Date, events[j].TimeInfo.Date
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.Before(*b)
	})
}

// markOverlaps flags every pair of dated events whose effective
// intervals intersect or start at the same instant. Buckets are
// small, so the quadratic pass is fine.
func markOverlaps(events []ProcessedEvent) {
	span := func(e *ProcessedEvent) (time.Time, time.Time) {
		start := *e.TimeInfo.Date
		if end := e.TimeInfo.EndDate; end != nil && end.After(start) {
			return start, *end
		}
		return start, start.Add(defaultEventSpan)
	}
	for i := range events {
		if events[i].TimeInfo.Date == nil {
			continue
		}
		s1, e1 := span(&events[i])
		for j := i + 1; j < len(events); j++ {
			if events[j].TimeInfo.Date == nil {
				continue
			}
			s2, e2 := span(&events[j])
			if s1.Equal(s2) || (s1.Before(e2) && s2.Before(e1)) {
				events[i].IsOverlapping = true
				events[j].IsOverlapping = true
			}
		}
	}
}

// normalizeLabel canonicalizes an entered day label to the bucket key
// format so echoes land in the same bucket as their day.
func normalizeLabel(label string) string {
	if t := ParseInstant(label); t != nil {
		return dayKey(*t)
	}
	return label
}
