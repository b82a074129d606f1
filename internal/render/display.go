package render

import "github.com/ngmaloney/weather-terminal/internal/models"

// Details are the secondary readings, already formatted with their units
type Details struct {
	WindSpeed     string // "13 km/h"
	WindDirection string // "WSW"
	Humidity      string // "77%"
	Pressure      string // "1017 hPa"
	Visibility    string // "10 km"
}

// Display is the surface the renderer writes to, one method per field group
type Display interface {
	SetLocation(label string)
	SetDateTime(timeText, dateText string)
	SetTemperature(text string)
	// SetUnitActive marks u as the active unit toggle and every other unit inactive
	SetUnitActive(u models.Unit)
	SetCondition(iconURL, text string)
	SetDetails(d Details)
	SetNightMode(night bool)
}
