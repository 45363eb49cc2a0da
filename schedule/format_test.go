package schedule

import "testing"

func TestEventLineTransport(t *testing.T) {
	ev := ProcessedEvent{TripEvent: TripEvent{
		Type:           EventTransport,
		TransportType:  "flight",
		DeparturePlace: "Vilnius",
		ArrivalPlace:   "Roma",
	}}
	if got := EventLine(ev); got != "Skrydis iš Vilnius į Roma" {
		t.Errorf("unexpected line: %q", got)
	}

	ev.TransportType = "hot-air-balloon"
	if got := EventLine(ev); got != "Transportas iš Vilnius į Roma" {
		t.Errorf("expected default transport label, got %q", got)
	}

	ev.IsArrivalEvent = true
	if got := EventLine(ev); got != "Atvykimas į Roma" {
		t.Errorf("expected arrival phrasing for the echo, got %q", got)
	}
}

func TestEventLineCruise(t *testing.T) {
	ev := ProcessedEvent{TripEvent: TripEvent{
		Type:           EventCruise,
		TransportName:  "Baltic Queen",
		DeparturePlace: "Ryga",
		ArrivalPlace:   "Stokholmas",
	}}
	if got := EventLine(ev); got != "Kruizas \"Baltic Queen\" iš Ryga į Stokholmas" {
		t.Errorf("unexpected cruise line: %q", got)
	}
}

func TestEventLineAccommodation(t *testing.T) {
	ev := ProcessedEvent{TripEvent: TripEvent{
		Type:      EventAccommodation,
		HotelName: "Grand Hotel",
		CheckIn:   "2025-03-01T22:00",
		CheckOut:  "2025-03-02T10:00",
	}}
	if got := EventLine(ev); got != "Nakvynė: Grand Hotel" {
		t.Errorf("unexpected stay line: %q", got)
	}

	ev.IsCheckoutEvent = true
	if got := EventLine(ev); got != "Išsiregistravimas: Grand Hotel" {
		t.Errorf("unexpected checkout line: %q", got)
	}
}

func TestEventLineFallbacks(t *testing.T) {
	cases := []struct {
		ev   ProcessedEvent
		want string
	}{
		{ProcessedEvent{TripEvent: TripEvent{Type: EventActivity, Description: "Muziejus"}}, "Muziejus"},
		{ProcessedEvent{TripEvent: TripEvent{Type: EventActivity}}, "Veikla"},
		{ProcessedEvent{TripEvent: TripEvent{Type: EventImages}}, "Nuotraukos"},
		{ProcessedEvent{TripEvent: TripEvent{Type: "mystery", Description: "kažkas"}}, "kažkas"},
	}
	for _, c := range cases {
		if got := EventLine(c.ev); got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}

func TestEventLineInjectedLocale(t *testing.T) {
	en := Labels{
		Flight: "Flight", DefaultTransport: "Transfer",
		From: "from", To: "to", Arrival: "Arrival",
		CheckIn: "Check-in", CheckOut: "Check-out", Stay: "Stay",
		Activity: "Activity", Photos: "Photos", Cruise: "Cruise",
	}
	ev := ProcessedEvent{TripEvent: TripEvent{
		Type:           EventTransport,
		TransportType:  "flight",
		DeparturePlace: "Vilnius",
		ArrivalPlace:   "Rome",
	}}
	if got := en.EventLine(ev); got != "Flight from Vilnius to Rome" {
		t.Errorf("expected injected labels to apply, got %q", got)
	}
}
