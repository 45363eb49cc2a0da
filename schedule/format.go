package schedule

import (
	"fmt"
	"strings"
)

// Labels is the display-text table for event lines. The agency UI is
// Lithuanian; other locales inject their own table.
type Labels struct {
	Flight           string
	Train            string
	Bus              string
	Car              string
	Ferry            string
	DefaultTransport string
	Cruise           string
	Arrival          string
	CheckIn          string
	CheckOut         string
	Stay             string
	Activity         string
	Photos           string
	From             string
	To               string
}

var LabelsLT = Labels{
	Flight:           "Skrydis",
	Train:            "Traukinys",
	Bus:              "Autobusas",
	Car:              "Automobilis",
	Ferry:            "Keltas",
	DefaultTransport: "Transportas",
	Cruise:           "Kruizas",
	Arrival:          "Atvykimas",
	CheckIn:          "Įsiregistravimas",
	CheckOut:         "Išsiregistravimas",
	Stay:             "Nakvynė",
	Activity:         "Veikla",
	Photos:           "Nuotraukos",
	From:             "iš",
	To:               "į",
}

// DefaultLabels is used by the package-level EventLine.
var DefaultLabels = LabelsLT

// EventLine renders the one-line summary of a processed event using
// the default label table.
func EventLine(ev ProcessedEvent) string {
	return DefaultLabels.EventLine(ev)
}

// EventLine renders the one-line summary of a processed event. Echo
// entries get arrival/checkout phrasing; everything else degrades to
// the description when fields are missing.
func (l Labels) EventLine(ev ProcessedEvent) string {
	switch ev.Type {
	case EventTransport:
		if ev.IsArrivalEvent {
			return l.arrivalLine(l.transportLabel(ev.TransportType), ev.ArrivalPlace)
		}
		return l.routeLine(l.transportLabel(ev.TransportType), ev.DeparturePlace, ev.ArrivalPlace)
	case EventCruise:
		name := l.Cruise
		if ev.TransportName != "" {
			name = fmt.Sprintf("%s \"%s\"", l.Cruise, ev.TransportName)
		}
		if ev.IsArrivalEvent {
			return l.arrivalLine(name, ev.ArrivalPlace)
		}
		return l.routeLine(name, ev.DeparturePlace, ev.ArrivalPlace)
	case EventAccommodation:
		name := ev.HotelName
		if name == "" {
			name = ev.Description
		}
		switch {
		case ev.IsCheckoutEvent:
			return joined(l.CheckOut+":", name)
		case ev.CheckIn != "" && ev.CheckOut != "":
			return joined(l.Stay+":", name)
		case ev.CheckOut != "":
			return joined(l.CheckOut+":", name)
		default:
			return joined(l.CheckIn+":", name)
		}
	case EventActivity:
		if ev.Description != "" {
			return ev.Description
		}
		return l.Activity
	case EventImages:
		if ev.Description != "" {
			return ev.Description
		}
		return l.Photos
	default:
		return ev.Description
	}
}

func (l Labels) transportLabel(transportType string) string {
	switch strings.ToLower(transportType) {
	case "flight", "plane":
		return l.Flight
	case "train":
		return l.Train
	case "bus":
		return l.Bus
	case "car":
		return l.Car
	case "ferry":
		return l.Ferry
	default:
		return l.DefaultTransport
	}
}

func (l Labels) routeLine(label, from, to string) string {
	parts := []string{label}
	if from != "" {
		parts = append(parts, l.From, from)
	}
	if to != "" {
		parts = append(parts, l.To, to)
	}
	return strings.Join(parts, " ")
}

func (l Labels) arrivalLine(label, place string) string {
	if place == "" {
		return l.Arrival + " (" + label + ")"
	}
	return strings.Join([]string{l.Arrival, l.To, place}, " ")
}

func joined(prefix, rest string) string {
	if rest == "" {
		return strings.TrimSuffix(prefix, ":")
	}
	return prefix + " " + rest
}
