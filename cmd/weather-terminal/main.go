package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/logging"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/settings"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

var (
	flagLocation string
	flagUnit     string
	flagDBPath   string
	flagAPIKey   string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "weather-terminal",
	Short: "Current weather conditions in your terminal",
	Long: `weather-terminal shows current conditions from WeatherAPI.com for a
location you search for, with live suggestions and a °C/°F toggle.
The last location you viewed is loaded again on the next start.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

var forgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Forget the last viewed location",
	Long:  `Remove the persisted location so the next start uses the default location.`,
	RunE:  runForget,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the settings database (default from WEATHER_DB_PATH)")
	rootCmd.Flags().StringVarP(&flagLocation, "location", "l", "", "Location to show on startup instead of the last viewed one")
	rootCmd.Flags().StringVarP(&flagUnit, "unit", "u", "", "Temperature unit: c or f")
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "WeatherAPI.com key (default from WEATHERAPI_API_KEY)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file path (default from WEATHER_LOG_FILE)")

	rootCmd.AddCommand(forgetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies command-line overrides
func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if flagUnit != "" {
		unit, err := models.ParseUnit(flagUnit)
		if err != nil {
			return nil, fmt.Errorf("invalid --unit: %w", err)
		}
		cfg.Unit = unit
	}
	cfg.StartLocation = flagLocation

	return cfg, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open settings database: %w", err)
	}
	defer db.Close()

	store := settings.NewStore(settings.NewRepository(db), logger)
	client := weatherapi.NewWeatherClient(cfg.APIKey, weatherapi.WithBaseURL(cfg.BaseURL))

	logger.Info("starting weather terminal",
		zap.String("db", cfg.DBPath),
		zap.String("unit", cfg.Unit.String()),
		zap.String("locale", cfg.Locale.Tag.String()),
	)

	m := ui.NewModel(ui.Options{
		Client:          client,
		Store:           store,
		Logger:          logger,
		Locale:          cfg.Locale,
		Unit:            cfg.Unit,
		DefaultLocation: cfg.DefaultLocation,
		StartLocation:   cfg.StartLocation,
		SearchDelay:     cfg.SearchDelay,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}

func runForget(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open settings database: %w", err)
	}
	defer db.Close()

	if err := settings.NewRepository(db).Delete(settings.LastLocationKey); err != nil {
		return fmt.Errorf("failed to forget location: %w", err)
	}
	fmt.Printf("Forgot last location; next start shows %s\n", cfg.DefaultLocation)
	return nil
}
