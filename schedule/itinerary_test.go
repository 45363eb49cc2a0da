package schedule

import (
	"reflect"
	"testing"
)

func day(label string, events ...TripEvent) ItineraryDay {
	return ItineraryDay{DayLabel: label, Events: events}
}

func findDay(t *testing.T, out []ProcessedDay, label string) ProcessedDay {
	t.Helper()
	for _, d := range out {
		if d.DayLabel == label {
			return d
		}
	}
	t.Fatalf("no bucket for %s in %+v", label, out)
	return ProcessedDay{}
}

func TestBuildItineraryEmpty(t *testing.T) {
	if out := BuildItinerary(nil, ModeMulti); len(out) != 0 {
		t.Fatalf("expected no output for empty input, got %+v", out)
	}
	// a day with no events and no description is pruned
	out := BuildItinerary([]ItineraryDay{{DayLabel: "2025-01-01"}}, ModeSingle)
	if len(out) != 0 {
		t.Fatalf("expected dead day to be pruned, got %+v", out)
	}
}

func TestDescriptionOnlyDayRetained(t *testing.T) {
	out := BuildItinerary([]ItineraryDay{
		{DayLabel: "2025-01-01", DayDescription: "Laisva diena"},
	}, ModeMulti)
	if len(out) != 1 || out[0].DayDescription != "Laisva diena" {
		t.Fatalf("expected authored description-only day to survive, got %+v", out)
	}
}

func TestAccommodationMidnightSplit(t *testing.T) {
	hotel := TripEvent{
		Type:      EventAccommodation,
		HotelName: "Grand Hotel",
		CheckIn:   "2025-03-01T22:00",
		CheckOut:  "2025-03-02T10:00",
	}
	out := BuildItinerary([]ItineraryDay{day("2025-03-01", hotel)}, ModeMulti)

	if len(out) != 2 {
		t.Fatalf("expected two buckets, got %d", len(out))
	}
	first := findDay(t, out, "2025-03-01")
	if len(first.Events) != 1 || first.Events[0].IsCheckoutEvent {
		t.Errorf("expected undecorated main event on check-in day, got %+v", first.Events)
	}
	second := findDay(t, out, "2025-03-02")
	if len(second.Events) != 1 {
		t.Fatalf("expected one echo on check-out day, got %d", len(second.Events))
	}
	echo := second.Events[0]
	if !echo.IsCheckoutEvent || echo.TimeInfo.TimeStr != "10:00" {
		t.Errorf("expected checkout echo at 10:00, got %+v", echo)
	}
	if echo.IsArrivalEvent || echo.IsDepartureEvent {
		t.Error("checkout echo must carry exactly the checkout flag")
	}
}

func TestShortStayNoEcho(t *testing.T) {
	hotel := TripEvent{
		Type:     EventAccommodation,
		CheckIn:  "2025-03-01T14:00",
		CheckOut: "2025-03-01T20:00",
	}
	out := BuildItinerary([]ItineraryDay{day("2025-03-01", hotel)}, ModeMulti)

	if len(out) != 1 || len(out[0].Events) != 1 {
		t.Fatalf("expected a single entry, got %+v", out)
	}
	if !out[0].Events[0].IsShortStay {
		t.Error("expected short-stay flag for a same-day stay")
	}
}

func TestTransportSplitPerMode(t *testing.T) {
	flight := TripEvent{
		Type:          EventTransport,
		TransportType: "flight",
		DepartureTime: "2025-05-10T23:30",
		ArrivalTime:   "2025-05-11T01:15",
	}

	out := BuildItinerary([]ItineraryDay{day("2025-05-10", flight)}, ModeMulti)
	origin := findDay(t, out, "2025-05-10").Events[0]
	if !origin.IsDepartureEvent {
		t.Error("multi mode must label the origin as departure")
	}
	echo := findDay(t, out, "2025-05-11").Events[0]
	if !echo.IsArrivalEvent || echo.TimeInfo.TimeStr != "01:15" {
		t.Errorf("expected arrival echo at 01:15, got %+v", echo)
	}

	out = BuildItinerary([]ItineraryDay{day("2025-05-10", flight)}, ModeSingle)
	origin = findDay(t, out, "2025-05-10").Events[0]
	if origin.IsDepartureEvent {
		t.Error("single mode must leave the origin unlabeled")
	}
	if findDay(t, out, "2025-05-11").Events[0].IsArrivalEvent != true {
		t.Error("single mode still produces the arrival echo")
	}
}

func TestDayNumbersCountElapsedDays(t *testing.T) {
	out := BuildItinerary([]ItineraryDay{
		day("2025-07-01", TripEvent{Type: EventActivity, ActivityTime: "2025-07-01T09:00"}),
		day("2025-07-02", TripEvent{Type: EventActivity, ActivityTime: "2025-07-02T09:00"}),
		// 2025-07-03 entirely absent
		day("2025-07-04", TripEvent{Type: EventActivity, ActivityTime: "2025-07-04T09:00"}),
	}, ModeMulti)

	want := map[string]int{"2025-07-01": 1, "2025-07-02": 2, "2025-07-04": 4}
	for label, n := range want {
		if got := findDay(t, out, label).DayNumber; got != n {
			t.Errorf("day %s: expected number %d, got %d", label, n, got)
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i].DayNumber <= out[i-1].DayNumber {
			t.Fatalf("day numbers must strictly increase, got %+v", out)
		}
	}
}

func TestInputOrderDoesNotDecideOutputOrder(t *testing.T) {
	out := BuildItinerary([]ItineraryDay{
		day("2025-07-05", TripEvent{Type: EventActivity, ActivityTime: "2025-07-05T09:00"}),
		day("2025-07-01", TripEvent{Type: EventActivity, ActivityTime: "2025-07-01T09:00"}),
	}, ModeMulti)

	if out[0].DayLabel != "2025-07-01" || out[0].DayNumber != 1 {
		t.Errorf("expected earliest day first with number 1, got %+v", out[0])
	}
	if out[1].DayNumber != 5 {
		t.Errorf("expected elapsed-day number 5, got %d", out[1].DayNumber)
	}
}

func TestOverlapDetection(t *testing.T) {
	out := BuildItinerary([]ItineraryDay{day("2025-01-01",
		TripEvent{Type: EventActivity, ActivityTime: "2025-01-01T09:00", Description: "a"},
		TripEvent{Type: EventActivity, ActivityTime: "2025-01-01T09:00", Description: "b"},
		TripEvent{Type: EventActivity, ActivityTime: "2025-01-01T11:00", Description: "c"},
	)}, ModeMulti)

	events := out[0].Events
	if !events[0].IsOverlapping || !events[1].IsOverlapping {
		t.Error("both same-minute activities must be flagged")
	}
	if events[2].IsOverlapping {
		t.Error("an activity an hour past the default span must not be flagged")
	}
}

func TestOverlapUsesExplicitEnd(t *testing.T) {
	out := BuildItinerary([]ItineraryDay{day("2025-01-01",
		TripEvent{Type: EventTransport, DepartureTime: "2025-01-01T08:00", ArrivalTime: "2025-01-01T12:00"},
		TripEvent{Type: EventActivity, ActivityTime: "2025-01-01T11:00"},
	)}, ModeMulti)

	for _, ev := range out[0].Events {
		if !ev.IsOverlapping {
			t.Errorf("expected overlap via the transport leg's span, got %+v", ev)
		}
	}
}

func TestUndatedEventsSortLastAndStable(t *testing.T) {
	out := BuildItinerary([]ItineraryDay{day("2025-01-01",
		TripEvent{Type: EventActivity, Description: "first undated"},
		TripEvent{Type: EventActivity, ActivityTime: "2025-01-01T15:00", Description: "dated"},
		TripEvent{Type: EventActivity, Description: "second undated"},
	)}, ModeMulti)

	events := out[0].Events
	if events[0].Description != "dated" {
		t.Fatalf("dated event must come first, got %+v", events)
	}
	if events[1].Description != "first undated" || events[2].Description != "second undated" {
		t.Errorf("undated events must keep insertion order, got %+v", events)
	}
	for _, ev := range events[1:] {
		if ev.IsOverlapping {
			t.Error("undated events are excluded from overlap detection")
		}
	}
}

func TestSingleModeFoldsAllEvents(t *testing.T) {
	out := BuildItinerary([]ItineraryDay{
		day("2025-02-01", TripEvent{Type: EventActivity, ActivityTime: "2025-02-01T10:00"}),
		day("2025-02-02", TripEvent{Type: EventActivity, ActivityTime: "2025-02-02T10:00"}),
	}, ModeSingle)

	if len(out) != 1 {
		t.Fatalf("single mode folds everything into one bucket, got %d", len(out))
	}
	if len(out[0].Events) != 2 {
		t.Errorf("expected both events in the folded bucket, got %d", len(out[0].Events))
	}
}

func TestBuildItineraryIdempotent(t *testing.T) {
	days := []ItineraryDay{
		day("2025-03-01",
			TripEvent{Type: EventAccommodation, HotelName: "H", CheckIn: "2025-03-01T22:00", CheckOut: "2025-03-02T10:00"},
			TripEvent{Type: EventTransport, TransportType: "train", DepartureTime: "2025-03-01T09:00", ArrivalTime: "2025-03-01T12:00"},
			TripEvent{Type: EventActivity, Description: "undated"},
		),
	}

	first := BuildItinerary(days, ModeMulti)
	second := BuildItinerary(days, ModeMulti)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated runs on the same input must yield identical output")
	}
	if days[0].Events[0].Type != EventAccommodation || len(days[0].Events) != 3 {
		t.Error("input must not be mutated")
	}
}

func TestMalformedEventDoesNotCorruptBucket(t *testing.T) {
	out := BuildItinerary([]ItineraryDay{day("2025-03-01",
		TripEvent{Type: EventTransport, DepartureTime: "garbage", ArrivalTime: "also garbage"},
		TripEvent{Type: EventActivity, ActivityTime: "2025-03-01T09:00", Description: "fine"},
	)}, ModeMulti)

	if len(out) != 1 || len(out[0].Events) != 2 {
		t.Fatalf("malformed event must degrade, not disappear: %+v", out)
	}
	if out[0].Events[0].Description != "fine" {
		t.Error("the valid event must keep its place ahead of the undated one")
	}
}
