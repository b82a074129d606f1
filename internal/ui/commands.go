package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// fetchWeather fetches current conditions in the background. No deadline is set;
// the transport's defaults apply.
func fetchWeather(client weatherapi.Client, logger *zap.Logger, query string, generation uint64) tea.Cmd {
	return func() tea.Msg {
		log := logger.With(
			zap.String("request_id", uuid.NewString()),
			zap.String("query", query),
			zap.Uint64("generation", generation),
		)
		log.Debug("fetching current conditions")

		snapshot, err := client.GetCurrent(context.Background(), query)
		if err != nil {
			log.Warn("fetching current conditions failed",
				zap.Bool("network", weatherapi.IsNetworkError(err)),
				zap.Error(err),
			)
		} else {
			log.Info("fetched current conditions",
				zap.String("location", snapshot.Location.Name),
				zap.String("country", snapshot.Location.Country),
			)
		}

		return weatherFetchedMsg{
			generation: generation,
			query:      query,
			snapshot:   snapshot,
			err:        err,
		}
	}
}

// searchLocations fetches autocomplete candidates in the background
func searchLocations(client weatherapi.Client, query string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := client.SearchLocations(context.Background(), query)
		return suggestionsFetchedMsg{query: query, suggestions: suggestions, err: err}
	}
}

// waitForSuggestQuery waits for the debouncer to hand over the latest search text
func waitForSuggestQuery(queries <-chan string) tea.Cmd {
	return func() tea.Msg {
		return suggestQueryMsg{query: <-queries}
	}
}

// offerQuery puts q in the one-slot channel, replacing anything not yet consumed
func offerQuery(queries chan string, q string) {
	for {
		select {
		case queries <- q:
			return
		default:
		}
		select {
		case <-queries:
		default:
		}
	}
}
