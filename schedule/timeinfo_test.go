package schedule

import (
	"testing"
)

func TestExtractTimeTransport(t *testing.T) {
	ev := TripEvent{
		Type:          EventTransport,
		TransportType: "flight",
		DepartureTime: "2025-05-10T23:30",
		ArrivalTime:   "2025-05-11T01:15",
	}
	info := ExtractTime(ev)

	if info.Date == nil || !info.Date.Equal(*info.DepartureTime) {
		t.Fatalf("expected primary date to be the departure, got %v", info.Date)
	}
	if info.TimeStr != "23:30" {
		t.Errorf("expected TimeStr 23:30, got %q", info.TimeStr)
	}
	if info.ArrivalTimeStr != "01:15" {
		t.Errorf("expected ArrivalTimeStr 01:15, got %q", info.ArrivalTimeStr)
	}
	if !info.IsMultiDay {
		t.Error("expected multi-day flag for a midnight-crossing flight")
	}
}

func TestExtractTimeArrivalOnlyNeverMultiDay(t *testing.T) {
	ev := TripEvent{
		Type:        EventTransport,
		ArrivalTime: "2030-01-01T08:00",
	}
	info := ExtractTime(ev)

	if info.IsMultiDay {
		t.Error("arrival-only event must not be multi-day")
	}
	if info.Date == nil || info.TimeStr != "08:00" {
		t.Errorf("expected arrival to become the primary date, got %v %q", info.Date, info.TimeStr)
	}
}

func TestExtractTimeAccommodationEarliest(t *testing.T) {
	ev := TripEvent{
		Type:     EventAccommodation,
		CheckIn:  "2025-03-01T14:00",
		CheckOut: "2025-03-03T10:00",
	}
	info := ExtractTime(ev)

	if info.Date == nil || info.TimeStr != "14:00" {
		t.Errorf("expected check-in as primary instant, got %v %q", info.Date, info.TimeStr)
	}
	if info.EndDate == nil || !info.EndDate.Equal(*info.ArrivalTime) {
		t.Errorf("expected check-out as end date, got %v", info.EndDate)
	}
}

func TestExtractTimeMalformed(t *testing.T) {
	cases := []TripEvent{
		{Type: EventActivity, ActivityTime: "not-a-time"},
		{Type: EventTransport, DepartureTime: "garbage", ArrivalTime: ""},
		{Type: EventAccommodation},
		{Type: EventImages},
		{Type: "unknown", Description: "?"},
	}
	for i, ev := range cases {
		info := ExtractTime(ev)
		if info.Date != nil || info.TimeStr != "" || info.IsMultiDay {
			t.Errorf("case %d: expected zero TimeInfo, got %+v", i, info)
		}
	}
}

func TestParseInstantLayouts(t *testing.T) {
	for _, s := range []string{
		"2025-03-01T22:00",
		"2025-03-01T22:00:00",
		"2025-03-01 22:00",
		"2025-03-01",
		"2025-03-01T22:00:00+02:00",
	} {
		if ParseInstant(s) == nil {
			t.Errorf("expected %q to parse", s)
		}
	}
	if ParseInstant("") != nil || ParseInstant("01.03.2025") != nil {
		t.Error("expected malformed inputs to yield nil")
	}
}
