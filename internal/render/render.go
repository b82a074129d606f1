package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	// LoadingTemperature is shown while a fetch is in flight
	LoadingTemperature = "..."
	// LoadingText replaces the condition text while a fetch is in flight
	LoadingText = "Loading…"
	// ErrorTemperature is shown after a failed fetch
	ErrorTemperature = "--"
	// FallbackErrorText is shown when a failure carries no message
	FallbackErrorText = "Unable to load weather data"

	localTimeLayout = "2006-01-02 15:04"
)

// Renderer maps application state onto a Display
type Renderer struct {
	Locale Locale
}

// New creates a renderer for locale
func New(locale Locale) *Renderer {
	return &Renderer{Locale: locale}
}

// Render writes every field of the current snapshot. Nothing is written before the
// first successful fetch.
func (r *Renderer) Render(d Display, st *models.State) {
	if st == nil || st.Weather == nil {
		return
	}
	w := st.Weather

	d.SetLocation(LocationLabel(w.Location))

	if t, err := ParseLocalTime(w.Location.LocalTime); err == nil {
		d.SetDateTime(r.Locale.FormatTime(t), r.Locale.FormatDate(t))
	} else {
		d.SetDateTime("", w.Location.LocalTime)
	}

	r.RenderTemperature(d, st)
	d.SetCondition(SecureIconURL(w.Current.Condition.Icon), w.Current.Condition.Text)
	d.SetDetails(FormatDetails(w.Current))
	d.SetNightMode(!w.Current.IsDay)
}

// RenderTemperature writes only the temperature and the unit toggles
func (r *Renderer) RenderTemperature(d Display, st *models.State) {
	temp, ok := st.Temperature()
	if !ok {
		return
	}
	d.SetTemperature(FormatTemperature(temp))
	d.SetUnitActive(st.Unit)
}

// RenderLoading puts the display in its loading state
func (r *Renderer) RenderLoading(d Display) {
	d.SetTemperature(LoadingTemperature)
	d.SetCondition("", LoadingText)
}

// RenderError puts the display in its error state
func (r *Renderer) RenderError(d Display, message string) {
	if strings.TrimSpace(message) == "" {
		message = FallbackErrorText
	}
	d.SetTemperature(ErrorTemperature)
	d.SetCondition("", message)
}

// LocationLabel returns "<name>, <country>"
func LocationLabel(loc models.Location) string {
	return fmt.Sprintf("%s, %s", loc.Name, loc.Country)
}

// ParseLocalTime parses the API's local time string, e.g. "2026-10-19 9:05"
func ParseLocalTime(s string) (time.Time, error) {
	return time.Parse(localTimeLayout, strings.TrimSpace(s))
}

// FormatTemperature rounds to the nearest integer, halves rounding up
func FormatTemperature(v float64) string {
	return strconv.Itoa(int(math.Floor(v + 0.5)))
}

// SecureIconURL forces https on scheme-relative and plain http icon URLs
func SecureIconURL(icon string) string {
	switch {
	case icon == "":
		return ""
	case strings.HasPrefix(icon, "//"):
		return "https:" + icon
	case strings.HasPrefix(icon, "http://"):
		return "https://" + strings.TrimPrefix(icon, "http://")
	}
	return icon
}

// FormatDetails formats the secondary readings with their fixed units
func FormatDetails(c models.Current) Details {
	return Details{
		WindSpeed:     formatNumber(c.WindKph) + " km/h",
		WindDirection: c.WindDir,
		Humidity:      strconv.Itoa(c.Humidity) + "%",
		Pressure:      formatNumber(c.PressureMb) + " hPa",
		Visibility:    formatNumber(c.VisKm) + " km",
	}
}

// formatNumber drops a trailing ".0" the way the API values read, 13.0 -> "13"
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
