package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	// maxSuggestions caps how many search results are listed
	maxSuggestions = 5
	// noResultsText is listed when a search matches nothing
	noResultsText = "No results found"
	// minSuggestQuery is the shortest trimmed text that is searched
	minSuggestQuery = 2
)

// suggestionList is the autocomplete dropdown under the search field
type suggestionList struct {
	items   []models.Suggestion
	visible bool
	cursor  int // -1 when nothing is highlighted
}

// show replaces the list with the first maxSuggestions results
func (l *suggestionList) show(items []models.Suggestion) {
	if len(items) > maxSuggestions {
		items = items[:maxSuggestions]
	}
	l.items = items
	l.visible = true
	l.cursor = -1
}

func (l *suggestionList) hide() {
	l.items = nil
	l.visible = false
	l.cursor = -1
}

// empty reports whether the list is showing the no-results placeholder
func (l *suggestionList) empty() bool {
	return l.visible && len(l.items) == 0
}

func (l *suggestionList) moveUp() {
	if len(l.items) == 0 {
		return
	}
	if l.cursor <= 0 {
		l.cursor = len(l.items) - 1
		return
	}
	l.cursor--
}

func (l *suggestionList) moveDown() {
	if len(l.items) == 0 {
		return
	}
	l.cursor = (l.cursor + 1) % len(l.items)
}

// selected returns the highlighted suggestion
func (l *suggestionList) selected() (models.Suggestion, bool) {
	if !l.visible || l.cursor < 0 || l.cursor >= len(l.items) {
		return models.Suggestion{}, false
	}
	return l.items[l.cursor], true
}

// labels returns the text of each visible entry, or the placeholder
func (l *suggestionList) labels() []string {
	if !l.visible {
		return nil
	}
	if len(l.items) == 0 {
		return []string{noResultsText}
	}
	out := make([]string, len(l.items))
	for i, s := range l.items {
		out[i] = s.Label()
	}
	return out
}

func suggestionZoneID(i int) string {
	return fmt.Sprintf("suggestion-%d", i)
}

func unitZoneID(u models.Unit) string {
	return "unit-" + strings.ToLower(strings.TrimPrefix(u.Symbol(), "°"))
}
