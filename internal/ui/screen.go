package ui

import (
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/render"
)

// screen holds the text of every dashboard field. It is the terminal's
// implementation of render.Display; View reads it back.
type screen struct {
	location    string
	timeText    string
	dateText    string
	temperature string
	activeUnit  models.Unit
	iconURL     string
	condition   string
	details     render.Details
	night       bool
}

func newScreen(unit models.Unit) *screen {
	return &screen{activeUnit: unit}
}

func (s *screen) SetLocation(label string) {
	s.location = label
}

func (s *screen) SetDateTime(timeText, dateText string) {
	s.timeText = timeText
	s.dateText = dateText
}

func (s *screen) SetTemperature(text string) {
	s.temperature = text
}

func (s *screen) SetUnitActive(u models.Unit) {
	s.activeUnit = u
}

func (s *screen) SetCondition(iconURL, text string) {
	s.iconURL = iconURL
	s.condition = text
}

func (s *screen) SetDetails(d render.Details) {
	s.details = d
}

func (s *screen) SetNightMode(night bool) {
	s.night = night
}
