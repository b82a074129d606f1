package models

// State is the single mutable store behind the dashboard. It is owned by the
// UI event loop and is not safe for concurrent use.
type State struct {
	Unit         Unit
	LastLocation string
	Weather      *WeatherSnapshot

	generation uint64
}

// NewState creates the state seeded with the persisted location
func NewState(lastLocation string, unit Unit) *State {
	return &State{
		Unit:         unit,
		LastLocation: lastLocation,
	}
}

// BeginFetch stamps a new fetch and returns its generation. Any result carrying an
// older generation is stale.
func (s *State) BeginFetch() uint64 {
	s.generation++
	return s.generation
}

// IsCurrent reports whether gen belongs to the most recently started fetch
func (s *State) IsCurrent(gen uint64) bool {
	return gen == s.generation
}

// Accept replaces the snapshot wholesale and records the query as the last location.
// Results from a superseded fetch are rejected.
func (s *State) Accept(gen uint64, query string, snapshot *WeatherSnapshot) bool {
	if !s.IsCurrent(gen) || snapshot == nil {
		return false
	}
	s.Weather = snapshot
	s.LastLocation = query
	return true
}

// SetUnit switches the displayed unit. It returns false when nothing changed: the
// unit is already selected or there is no snapshot to re-render from.
func (s *State) SetUnit(u Unit) bool {
	if u == s.Unit || s.Weather == nil {
		return false
	}
	s.Unit = u
	return true
}

// Temperature returns the current snapshot's temperature in the selected unit
func (s *State) Temperature() (float64, bool) {
	if s.Weather == nil {
		return 0, false
	}
	return s.Weather.Temperature(s.Unit), true
}
