package ui

import (
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Message types for async operations

// startupMsg kicks off the first fetch once the program is running
type startupMsg struct {
	location string
}

// weatherFetchedMsg is sent when a current-conditions fetch completes
type weatherFetchedMsg struct {
	generation uint64
	query      string
	snapshot   *models.WeatherSnapshot
	err        error
}

// suggestQueryMsg is sent when the search field has been quiet for the debounce period
type suggestQueryMsg struct {
	query string
}

// suggestionsFetchedMsg is sent when an autocomplete search completes
type suggestionsFetchedMsg struct {
	query       string
	suggestions []models.Suggestion
	err         error
}
