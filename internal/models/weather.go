package models

import "time"

// Location is the place a snapshot was reported for
type Location struct {
	Name      string
	Region    string
	Country   string
	LocalTime string // e.g. "2026-10-19 14:05", in the location's own timezone
}

// Condition describes the sky, e.g. "Partly cloudy"
type Condition struct {
	Text string
	Icon string // icon reference as returned by the API, may be scheme-relative
	Code int
}

// Current holds the current-conditions reading
type Current struct {
	TempC      float64
	TempF      float64
	FeelsLikeC float64
	FeelsLikeF float64
	Condition  Condition
	WindKph    float64
	WindDir    string // e.g. "WSW"
	Humidity   int     // percent
	PressureMb float64 // hPa
	VisKm      float64
	IsDay      bool
}

// WeatherSnapshot is one complete reading for a location at fetch time.
// It is never mutated after it has been built.
type WeatherSnapshot struct {
	Location  Location
	Current   Current
	FetchedAt time.Time
}

// Temperature returns the reading in the given unit
func (s *WeatherSnapshot) Temperature(u Unit) float64 {
	if u == Fahrenheit {
		return s.Current.TempF
	}
	return s.Current.TempC
}

// Suggestion is a candidate location returned by the search endpoint
type Suggestion struct {
	Name    string
	Region  string
	Country string
}

// Label returns the text shown in the suggestion list, "<name>, <country>"
func (s Suggestion) Label() string {
	if s.Country == "" {
		return s.Name
	}
	return s.Name + ", " + s.Country
}
