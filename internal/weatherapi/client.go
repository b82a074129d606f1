package weatherapi

import (
	"context"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Client defines the interface for fetching data from WeatherAPI.com
type Client interface {
	// GetCurrent retrieves current conditions for a location query
	GetCurrent(ctx context.Context, query string) (*models.WeatherSnapshot, error)

	// SearchLocations retrieves autocomplete candidates for a partial query
	SearchLocations(ctx context.Context, query string) ([]models.Suggestion, error)
}
