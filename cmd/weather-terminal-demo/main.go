package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/settings"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// demoClient serves canned conditions for a handful of cities
type demoClient struct {
	cities []models.WeatherSnapshot
}

func (c *demoClient) GetCurrent(ctx context.Context, query string) (*models.WeatherSnapshot, error) {
	// Simulate network latency so the loading state is visible
	select {
	case <-time.After(400 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	q := strings.ToLower(strings.TrimSpace(query))
	for _, city := range c.cities {
		name := strings.ToLower(city.Location.Name)
		label := strings.ToLower(city.Location.Name + ", " + city.Location.Country)
		if q == name || q == label {
			snap := city
			snap.FetchedAt = time.Now()
			return &snap, nil
		}
	}
	return nil, &weatherapi.APIError{StatusCode: 400, Code: 1006, Message: "No matching location found."}
}

func (c *demoClient) SearchLocations(ctx context.Context, query string) ([]models.Suggestion, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Suggestion
	for _, city := range c.cities {
		if strings.HasPrefix(strings.ToLower(city.Location.Name), q) {
			out = append(out, models.Suggestion{
				Name:    city.Location.Name,
				Region:  city.Location.Region,
				Country: city.Location.Country,
			})
		}
	}
	return out, nil
}

func city(name, region, country, localTime string, tempC float64, text string, icon int, isDay bool) models.WeatherSnapshot {
	period := "day"
	if !isDay {
		period = "night"
	}
	return models.WeatherSnapshot{
		Location: models.Location{Name: name, Region: region, Country: country, LocalTime: localTime},
		Current: models.Current{
			TempC:      tempC,
			TempF:      tempC*9/5 + 32,
			FeelsLikeC: tempC - 1.5,
			FeelsLikeF: (tempC-1.5)*9/5 + 32,
			Condition: models.Condition{
				Text: text,
				Icon: fmt.Sprintf("//cdn.weatherapi.com/weather/64x64/%s/%d.png", period, icon),
			},
			WindKph:    13.0,
			WindDir:    "WSW",
			Humidity:   77,
			PressureMb: 1017.0,
			VisKm:      10.0,
			IsDay:      isDay,
		},
	}
}

// This demo runs the dashboard against canned data, no API key needed
func main() {
	client := &demoClient{cities: []models.WeatherSnapshot{
		city("London", "City of London, Greater London", "United Kingdom", "2026-10-19 14:05", 14.2, "Light rain", 296, true),
		city("Londonderry", "Derry", "United Kingdom", "2026-10-19 14:05", 11.8, "Overcast", 122, true),
		city("Paris", "Ile-de-France", "France", "2026-10-19 15:05", 12.6, "Partly cloudy", 116, true),
		city("Tokyo", "Tokyo", "Japan", "2026-10-19 22:05", 18.4, "Clear", 113, false),
		city("Toronto", "Ontario", "Canada", "2026-10-19 9:05", 6.5, "Sunny", 113, true),
	}}

	m := ui.NewModel(ui.Options{
		Client:          client,
		Store:           settings.NewMemoryStore(""),
		DefaultLocation: "London",
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
