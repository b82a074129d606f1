package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/render"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// AppConfig holds everything the dashboard needs at startup
type AppConfig struct {
	APIKey  string
	BaseURL string

	// DefaultLocation is fetched at startup when nothing has been persisted yet.
	DefaultLocation string
	// StartLocation, when set, overrides the persisted location for this run only.
	StartLocation string
	Unit          models.Unit

	DBPath   string
	LogFile  string
	LogLevel string

	Locale render.Locale

	// SearchDelay is the quiet period before an autocomplete request is sent.
	SearchDelay time.Duration
}

// Load reads configuration from the environment (and a .env file, if present)
// with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("INFO: error loading .env file: %v", err)
	}
	cfg := &AppConfig{}

	cfg.APIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.BaseURL = getenvDefault("WEATHERAPI_BASE_URL", weatherapi.DefaultBaseURL)
	cfg.DefaultLocation = getenvDefault("WEATHER_DEFAULT_LOCATION", "London")

	unit, err := models.ParseUnit(getenvDefault("WEATHER_UNIT", "c"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_UNIT: %w", err)
	}
	cfg.Unit = unit

	cfg.DBPath = getenvDefault("WEATHER_DB_PATH", database.DBPath())
	cfg.LogFile = getenvDefault("WEATHER_LOG_FILE", DefaultLogFile())
	cfg.LogLevel = getenvDefault("WEATHER_LOG_LEVEL", "info")

	delay, err := time.ParseDuration(getenvDefault("WEATHER_SEARCH_DELAY", "300ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_SEARCH_DELAY: %w", err)
	}
	cfg.SearchDelay = delay

	cfg.Locale = render.ParseLocale(localeName())

	return cfg, nil
}

// Validate checks the settings that can be overridden from the command line
func (c *AppConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("no WeatherAPI key: set WEATHERAPI_API_KEY or pass --api-key")
	}
	if c.DefaultLocation == "" {
		return fmt.Errorf("default location cannot be empty")
	}
	return nil
}

// DefaultLogFile returns the log path used when WEATHER_LOG_FILE is unset
func DefaultLogFile() string {
	return "data/weather-terminal.log"
}

// localeName follows the POSIX precedence for time formatting
func localeName() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
