package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/settings"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:1: connect: connection refused")

// mockWeatherClient answers from fixed data and records every call
type mockWeatherClient struct {
	mu sync.Mutex

	snapshots   map[string]*models.WeatherSnapshot
	suggestions []models.Suggestion
	currentErr  error
	searchErr   error

	currentCalls []string
	searchCalls  []string
}

func newMockClient() *mockWeatherClient {
	return &mockWeatherClient{snapshots: map[string]*models.WeatherSnapshot{}}
}

func (c *mockWeatherClient) GetCurrent(ctx context.Context, query string) (*models.WeatherSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentCalls = append(c.currentCalls, query)
	if c.currentErr != nil {
		return nil, c.currentErr
	}
	if s, ok := c.snapshots[query]; ok {
		return s, nil
	}
	return snapshotFor(query, "Nowhere", 20, 68), nil
}

func (c *mockWeatherClient) SearchLocations(ctx context.Context, query string) ([]models.Suggestion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchCalls = append(c.searchCalls, query)
	if c.searchErr != nil {
		return nil, c.searchErr
	}
	return c.suggestions, nil
}

func (c *mockWeatherClient) calls() (current, search []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.currentCalls...), append([]string(nil), c.searchCalls...)
}

func snapshotFor(name, country string, tempC, tempF float64) *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Location: models.Location{
			Name:      name,
			Country:   country,
			LocalTime: "2026-10-19 9:05",
		},
		Current: models.Current{
			TempC: tempC,
			TempF: tempF,
			Condition: models.Condition{
				Text: "Partly cloudy",
				Icon: "//cdn.weatherapi.com/weather/64x64/day/116.png",
				Code: 1003,
			},
			WindKph:    13.0,
			WindDir:    "WSW",
			Humidity:   77,
			PressureMb: 1017.0,
			VisKm:      10.0,
			IsDay:      true,
		},
		FetchedAt: time.Now(),
	}
}

// newTestModel builds a model whose debouncer never fires on its own
func newTestModel(t *testing.T, client *mockWeatherClient, store settings.LocationStore) Model {
	t.Helper()
	m := NewModel(Options{
		Client:          client,
		Store:           store,
		DefaultLocation: "London",
		SearchDelay:     time.Hour,
	})
	t.Cleanup(m.Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// run executes cmd and feeds its message back into the model
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	m, _ = update(t, m, cmd())
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
