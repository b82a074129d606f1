package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/render"
	"github.com/ngmaloney/weather-terminal/internal/settings"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

func TestNewModel(t *testing.T) {
	m := newTestModel(t, newMockClient(), settings.NewMemoryStore(""))

	if m.status != StatusIdle {
		t.Errorf("NewModel() status = %v, want StatusIdle", m.status)
	}
	if m.startLocation != "London" {
		t.Errorf("startLocation = %q, want default %q", m.startLocation, "London")
	}
	if m.state.Unit != models.Celsius {
		t.Errorf("state.Unit = %v, want Celsius", m.state.Unit)
	}
	if m.state.Weather != nil {
		t.Error("state.Weather should be nil before the first fetch")
	}
}

func TestNewModel_StartLocation(t *testing.T) {
	tests := []struct {
		name      string
		persisted string
		override  string
		want      string
	}{
		{"default", "", "", "London"},
		{"persisted", "Paris", "", "Paris"},
		{"override wins", "Paris", "  Tokyo ", "Tokyo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(Options{
				Client:          newMockClient(),
				Store:           settings.NewMemoryStore(tt.persisted),
				DefaultLocation: "London",
				StartLocation:   tt.override,
			})
			defer m.Close()

			if m.startLocation != tt.want {
				t.Errorf("startLocation = %q, want %q", m.startLocation, tt.want)
			}
		})
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := newTestModel(t, newMockClient(), nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("After WindowSizeMsg, height = %d, want 40", m.height)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := newTestModel(t, newMockClient(), nil)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected Ctrl+C to return quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Ctrl+C command should produce tea.QuitMsg")
	}
}

func TestModel_Esc_HidesSuggestionsBeforeQuitting(t *testing.T) {
	m := newTestModel(t, newMockClient(), nil)
	m.suggestions.show([]models.Suggestion{{Name: "Paris", Country: "France"}})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd != nil {
		t.Error("first Esc should only close the dropdown")
	}
	if m.suggestions.visible {
		t.Error("suggestions should be hidden after Esc")
	}

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("second Esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("second Esc should produce tea.QuitMsg")
	}
}

func TestModel_BeginFetch_ShowsLoading(t *testing.T) {
	m := newTestModel(t, newMockClient(), nil)

	m, cmd := update(t, m, startupMsg{location: "London"})
	if cmd == nil {
		t.Fatal("startup should return a fetch command")
	}
	if m.status != StatusLoading {
		t.Errorf("status = %v, want StatusLoading", m.status)
	}
	if m.screen.temperature != render.LoadingTemperature {
		t.Errorf("temperature = %q, want %q", m.screen.temperature, render.LoadingTemperature)
	}
	if m.screen.condition != render.LoadingText {
		t.Errorf("condition = %q, want %q", m.screen.condition, render.LoadingText)
	}
}

func TestModel_EmptyStartupLocation(t *testing.T) {
	m := newTestModel(t, newMockClient(), nil)

	m, cmd := update(t, m, startupMsg{location: "   "})
	if cmd != nil {
		t.Error("blank startup location should not fetch")
	}
	if m.status != StatusIdle {
		t.Errorf("status = %v, want StatusIdle", m.status)
	}
}

func TestModel_WeatherFetched_RendersRoundedTemperature(t *testing.T) {
	client := newMockClient()
	client.snapshots["Paris"] = snapshotFor("Paris", "France", 12.6, 54.7)
	m := newTestModel(t, client, nil)

	m, cmd := update(t, m, startupMsg{location: "Paris"})
	m = run(t, m, cmd)

	if m.status != StatusReady {
		t.Fatalf("status = %v, want StatusReady", m.status)
	}
	if m.screen.temperature != "13" {
		t.Errorf("temperature = %q, want %q", m.screen.temperature, "13")
	}
	if m.screen.location != "Paris, France" {
		t.Errorf("location = %q, want %q", m.screen.location, "Paris, France")
	}
	if m.screen.iconURL != "https://cdn.weatherapi.com/weather/64x64/day/116.png" {
		t.Errorf("iconURL = %q, want https URL", m.screen.iconURL)
	}
	if m.screen.details.WindSpeed != "13 km/h" {
		t.Errorf("wind = %q, want %q", m.screen.details.WindSpeed, "13 km/h")
	}
	if m.state.LastLocation != "Paris" {
		t.Errorf("LastLocation = %q, want %q", m.state.LastLocation, "Paris")
	}
}

func TestModel_UnitToggle_NoNetwork(t *testing.T) {
	client := newMockClient()
	client.snapshots["Paris"] = snapshotFor("Paris", "France", 12.6, 54.7)
	m := newTestModel(t, client, nil)

	m, cmd := update(t, m, startupMsg{location: "Paris"})
	m = run(t, m, cmd)
	before, _ := client.calls()

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if cmd != nil {
		t.Error("switching units should not return a command")
	}
	if m.state.Unit != models.Fahrenheit {
		t.Errorf("Unit = %v, want Fahrenheit", m.state.Unit)
	}
	if m.screen.temperature != "55" {
		t.Errorf("temperature = %q, want %q", m.screen.temperature, "55")
	}
	if m.screen.activeUnit != models.Fahrenheit {
		t.Errorf("active unit = %v, want Fahrenheit", m.screen.activeUnit)
	}

	after, _ := client.calls()
	if len(after) != len(before) {
		t.Errorf("unit switch made %d weather requests, want 0", len(after)-len(before))
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.screen.temperature != "13" {
		t.Errorf("temperature after switching back = %q, want %q", m.screen.temperature, "13")
	}
}

func TestModel_UnitToggle_WithoutSnapshot(t *testing.T) {
	m := newTestModel(t, newMockClient(), nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	if m.state.Unit != models.Celsius {
		t.Errorf("Unit = %v, want Celsius when nothing has been fetched", m.state.Unit)
	}
	if m.screen.temperature != "" {
		t.Errorf("temperature = %q, want empty", m.screen.temperature)
	}
}

func TestModel_WeatherFetched_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api message",
			err:  &weatherapi.APIError{StatusCode: 400, Code: 1006, Message: "Location not found"},
			want: "Location not found",
		},
		{
			name: "api fallback",
			err:  &weatherapi.APIError{StatusCode: 502, Message: weatherapi.FallbackMessage},
			want: weatherapi.FallbackMessage,
		},
		{
			name: "network",
			err:  &weatherapi.NetworkError{Op: "current.json", Err: errConnRefused},
			want: "Network error: unable to reach the weather service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockClient()
			client.currentErr = tt.err
			m := newTestModel(t, client, nil)

			m, cmd := update(t, m, startupMsg{location: "Atlantis"})
			m = run(t, m, cmd)

			if m.status != StatusError {
				t.Errorf("status = %v, want StatusError", m.status)
			}
			if m.screen.temperature != render.ErrorTemperature {
				t.Errorf("temperature = %q, want %q", m.screen.temperature, render.ErrorTemperature)
			}
			if m.screen.condition != tt.want {
				t.Errorf("condition = %q, want %q", m.screen.condition, tt.want)
			}
			if m.state.Weather != nil {
				t.Error("a failed fetch should not set a snapshot")
			}
		})
	}
}

func TestModel_FailedFetch_DoesNotPersist(t *testing.T) {
	client := newMockClient()
	client.currentErr = &weatherapi.APIError{StatusCode: 400, Message: "Location not found"}
	store := settings.NewMemoryStore("Paris")
	m := newTestModel(t, client, store)

	m, cmd := update(t, m, startupMsg{location: "Atlantis"})
	run(t, m, cmd)

	if got, _ := store.GetPersistedLocation(); got != "Paris" {
		t.Errorf("persisted location = %q, want %q", got, "Paris")
	}
}

func TestModel_StaleWeatherResponseDropped(t *testing.T) {
	client := newMockClient()
	client.snapshots["Paris"] = snapshotFor("Paris", "France", 12.6, 54.7)
	client.snapshots["Tokyo"] = snapshotFor("Tokyo", "Japan", 18.2, 64.8)
	store := settings.NewMemoryStore("")
	m := newTestModel(t, client, store)

	m, slow := update(t, m, startupMsg{location: "Paris"})
	m = typeText(t, m, "Tokyo")
	m, fast := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = run(t, m, fast)
	m = run(t, m, slow)

	if m.screen.location != "Tokyo, Japan" {
		t.Errorf("location = %q, want the latest fetch %q", m.screen.location, "Tokyo, Japan")
	}
	if m.state.LastLocation != "Tokyo" {
		t.Errorf("LastLocation = %q, want %q", m.state.LastLocation, "Tokyo")
	}
	if got, _ := store.GetPersistedLocation(); got != "Tokyo" {
		t.Errorf("persisted location = %q, want %q", got, "Tokyo")
	}
}

func TestModel_View(t *testing.T) {
	client := newMockClient()
	client.snapshots["Paris"] = snapshotFor("Paris", "France", 12.6, 54.7)
	m := newTestModel(t, client, nil)

	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before sizing = %q, want %q", got, "Loading...")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if view := m.View(); !strings.Contains(view, "No weather data yet") {
		t.Error("View() should show the empty card before the first fetch")
	}

	m, cmd := update(t, m, startupMsg{location: "Paris"})
	m = run(t, m, cmd)
	m.now = func() time.Time { return m.state.Weather.FetchedAt.Add(3 * time.Minute) }

	view := m.View()
	for _, want := range []string{"Paris, France", "13", "°C", "°F", "Partly cloudy", "77%", "1017 hPa", "10 km", "Updated 3 minutes ago"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_View_NightMode(t *testing.T) {
	client := newMockClient()
	night := snapshotFor("Reykjavik", "Iceland", -1.4, 29.5)
	night.Current.IsDay = false
	night.Current.Condition = models.Condition{Text: "Clear", Icon: "//cdn.weatherapi.com/weather/64x64/night/113.png"}
	client.snapshots["Reykjavik"] = night
	m := newTestModel(t, client, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, cmd := update(t, m, startupMsg{location: "Reykjavik"})
	m = run(t, m, cmd)

	if !m.screen.night {
		t.Fatal("screen should be in night mode")
	}
	view := m.View()
	if !strings.Contains(view, "☾ Weather Terminal") {
		t.Error("night title missing")
	}
	if !strings.Contains(view, "-1") {
		t.Error("View() should show the rounded negative temperature")
	}
}

func TestConditionGlyph(t *testing.T) {
	tests := []struct {
		icon  string
		night bool
		want  string
	}{
		{"//cdn.weatherapi.com/weather/64x64/day/113.png", false, "☀"},
		{"//cdn.weatherapi.com/weather/64x64/night/113.png", true, "☾"},
		{"https://cdn.weatherapi.com/weather/64x64/day/116.png", false, "⛅"},
		{"https://cdn.weatherapi.com/weather/64x64/day/122.png", false, "☁"},
		{"https://cdn.weatherapi.com/weather/64x64/day/248.png", false, "🌫"},
		{"https://cdn.weatherapi.com/weather/64x64/day/302.png", false, "🌧"},
		{"https://cdn.weatherapi.com/weather/64x64/day/338.png", false, "❄"},
		{"https://cdn.weatherapi.com/weather/64x64/day/389.png", false, "⛈"},
		{"https://cdn.weatherapi.com/weather/64x64/day/999.png", false, ""},
		{"not-an-icon", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		if got := conditionGlyph(tt.icon, tt.night); got != tt.want {
			t.Errorf("conditionGlyph(%q, %v) = %q, want %q", tt.icon, tt.night, got, tt.want)
		}
	}
}
