package ui

import (
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// renderSearch renders the search box and, when open, the suggestion dropdown
func (m Model) renderSearch(th theme) string {
	box := th.searchBox.Render(m.searchInput.View())

	labels := m.suggestions.labels()
	if len(labels) == 0 {
		return box
	}

	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		if m.suggestions.empty() {
			lines = append(lines, th.suggestion.Inherit(mutedStyle).Render(label))
			continue
		}
		style := th.suggestion
		if i == m.suggestions.cursor {
			style = th.highlight
		}
		lines = append(lines, m.zones.Mark(suggestionZoneID(i), style.Render(label)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, box, strings.Join(lines, "\n"))
}

// renderCard renders the dashboard fields written by the renderer
func (m Model) renderCard(th theme) string {
	s := m.screen

	if s.location == "" && s.temperature == "" && s.condition == "" {
		return th.card.Render(mutedStyle.Render("No weather data yet"))
	}

	var lines []string

	if s.location != "" {
		lines = append(lines, th.title.Render("📍 "+s.location))
	}
	if s.dateText != "" || s.timeText != "" {
		lines = append(lines, mutedStyle.Render(strings.TrimSpace(s.timeText+"  "+s.dateText)))
	}
	lines = append(lines, "")

	temp := th.temperature.Render(s.temperature)
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, temp, m.renderUnitToggles(th)))

	condition := s.condition
	if m.status == StatusError {
		condition = errorStyle.Render("✗ " + condition)
	} else if m.status == StatusLoading {
		condition = m.spinner.View() + " " + condition
	} else if glyph := conditionGlyph(s.iconURL, s.night); glyph != "" {
		condition = glyph + "  " + condition
	}
	lines = append(lines, condition, "")

	if s.details.WindSpeed != "" {
		lines = append(lines,
			labelStyle.Render("Wind")+valueStyle.Render(strings.TrimSpace(s.details.WindSpeed+" "+s.details.WindDirection)),
			labelStyle.Render("Humidity")+valueStyle.Render(s.details.Humidity),
			labelStyle.Render("Pressure")+valueStyle.Render(s.details.Pressure),
			labelStyle.Render("Visibility")+valueStyle.Render(s.details.Visibility),
		)
	}

	return th.card.Render(strings.Join(lines, "\n"))
}

// renderUnitToggles renders one clickable button per unit, the active one highlighted
func (m Model) renderUnitToggles(th theme) string {
	buttons := make([]string, 0, len(models.Units))
	for _, u := range models.Units {
		style := th.unitIdle
		if u == m.screen.activeUnit {
			style = th.unitActive
		}
		buttons = append(buttons, m.zones.Mark(unitZoneID(u), style.Render(u.Symbol())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// renderUpdated renders "Updated 3 minutes ago" for the current snapshot
func (m Model) renderUpdated(now time.Time) string {
	if m.state.Weather == nil || m.state.Weather.FetchedAt.IsZero() {
		return ""
	}
	return mutedStyle.Render("Updated " + humanize.RelTime(m.state.Weather.FetchedAt, now, "ago", "from now"))
}

// conditionGlyph picks a symbol from the icon number in a WeatherAPI icon URL,
// e.g. ".../day/116.png" is partly cloudy
func conditionGlyph(iconURL string, night bool) string {
	if iconURL == "" {
		return ""
	}
	n, err := strconv.Atoi(strings.TrimSuffix(path.Base(iconURL), path.Ext(iconURL)))
	if err != nil {
		return ""
	}

	switch {
	case n == 113:
		if night {
			return "☾"
		}
		return "☀"
	case n == 116:
		return "⛅"
	case n == 119 || n == 122:
		return "☁"
	case n == 143 || n == 248 || n == 260:
		return "🌫"
	case n == 200 || (n >= 386 && n <= 395):
		return "⛈"
	case n == 179 || n == 182 || n == 185 || n == 227 || n == 230 ||
		(n >= 317 && n <= 350) || (n >= 362 && n <= 377):
		return "❄"
	case n == 176 || (n >= 263 && n <= 314) || (n >= 353 && n <= 359):
		return "🌧"
	}
	return ""
}
