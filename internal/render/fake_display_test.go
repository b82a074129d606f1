package render

import "github.com/ngmaloney/weather-terminal/internal/models"

// fakeDisplay records every write and counts calls per field group
type fakeDisplay struct {
	location    string
	timeText    string
	dateText    string
	temperature string
	activeUnit  models.Unit
	iconURL     string
	condition   string
	details     Details
	night       bool

	calls map[string]int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{calls: map[string]int{}}
}

func (f *fakeDisplay) SetLocation(label string) {
	f.calls["location"]++
	f.location = label
}

func (f *fakeDisplay) SetDateTime(timeText, dateText string) {
	f.calls["datetime"]++
	f.timeText, f.dateText = timeText, dateText
}

func (f *fakeDisplay) SetTemperature(text string) {
	f.calls["temperature"]++
	f.temperature = text
}

func (f *fakeDisplay) SetUnitActive(u models.Unit) {
	f.calls["unit"]++
	f.activeUnit = u
}

func (f *fakeDisplay) SetCondition(iconURL, text string) {
	f.calls["condition"]++
	f.iconURL, f.condition = iconURL, text
}

func (f *fakeDisplay) SetDetails(d Details) {
	f.calls["details"]++
	f.details = d
}

func (f *fakeDisplay) SetNightMode(night bool) {
	f.calls["night"]++
	f.night = night
}
