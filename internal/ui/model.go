package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/ngmaloney/weather-terminal/internal/debounce"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/render"
	"github.com/ngmaloney/weather-terminal/internal/settings"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// Status represents what the dashboard is currently showing
type Status int

const (
	StatusIdle    Status = iota // Nothing fetched yet
	StatusLoading               // A fetch is in flight
	StatusReady                 // Showing a snapshot
	StatusError                 // The last fetch failed
)

// DefaultSearchDelay is the quiet period before the search field is autocompleted
const DefaultSearchDelay = 300 * time.Millisecond

// Options wires the model to its collaborators
type Options struct {
	Client weatherapi.Client
	Store  settings.LocationStore
	Logger *zap.Logger
	Locale render.Locale
	Unit   models.Unit

	// DefaultLocation is used when nothing has been persisted
	DefaultLocation string
	// StartLocation overrides the persisted location for the first fetch only
	StartLocation string
	SearchDelay   time.Duration
}

// Model is the Bubble Tea model for the dashboard. It routes user events to the
// weather client, the application state and the renderer.
type Model struct {
	status Status
	width  int
	height int
	err    error

	// Search
	searchInput textinput.Model
	suggestions *suggestionList
	// suggestQuery is the text of the latest autocomplete request; responses for
	// anything else are dropped
	suggestQuery string
	debouncer    *debounce.Debouncer[string]
	queries      chan string

	// Collaborators
	client   weatherapi.Client
	store    settings.LocationStore
	renderer *render.Renderer
	logger   *zap.Logger

	// Data
	state         *models.State
	screen        *screen
	startLocation string

	spinner spinner.Model
	zones   *zone.Manager
	now     func() time.Time
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Store == nil {
		opts.Store = settings.NewMemoryStore("")
	}
	if opts.SearchDelay <= 0 {
		opts.SearchDelay = DefaultSearchDelay
	}
	if opts.Locale.Tag.IsRoot() {
		opts.Locale = render.DefaultLocale
	}

	lastLocation, ok := opts.Store.GetPersistedLocation()
	if !ok {
		lastLocation = opts.DefaultLocation
	}
	startLocation := lastLocation
	if loc := strings.TrimSpace(opts.StartLocation); loc != "" {
		startLocation = loc
	}

	ti := textinput.New()
	ti.Placeholder = "Search for a city (e.g. Paris or Tokyo, Japan)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 58

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	queries := make(chan string, 1)

	return Model{
		status:        StatusIdle,
		searchInput:   ti,
		suggestions:   &suggestionList{cursor: -1},
		debouncer:     debounce.New(opts.SearchDelay, func(q string) { offerQuery(queries, q) }),
		queries:       queries,
		client:        opts.Client,
		store:         opts.Store,
		renderer:      render.New(opts.Locale),
		logger:        opts.Logger,
		state:         models.NewState(lastLocation, opts.Unit),
		screen:        newScreen(opts.Unit),
		startLocation: startLocation,
		spinner:       s,
		zones:         zone.New(),
		now:           time.Now,
	}
}

// Init starts the cursor, the spinner, the autocomplete waiter and the first fetch
func (m Model) Init() tea.Cmd {
	start := m.startLocation
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForSuggestQuery(m.queries),
		func() tea.Msg { return startupMsg{location: start} },
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case startupMsg:
		if strings.TrimSpace(msg.location) == "" {
			return m, nil
		}
		return m, m.beginFetch(msg.location)

	case weatherFetchedMsg:
		return m.handleWeatherFetched(msg), nil

	case suggestQueryMsg:
		cmd := m.handleSuggestQuery(msg.query)
		return m, tea.Batch(cmd, waitForSuggestQuery(m.queries))

	case suggestionsFetchedMsg:
		m.handleSuggestionsFetched(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.debouncer.Stop()
		return m, tea.Quit

	case "esc":
		if m.suggestions.visible {
			m.suggestions.hide()
			return m, nil
		}
		m.debouncer.Stop()
		return m, tea.Quit

	case "ctrl+t":
		m.selectUnit(m.state.Unit.Other())
		return m, nil

	case "up":
		m.suggestions.moveUp()
		return m, nil

	case "down":
		m.suggestions.moveDown()
		return m, nil

	case "enter":
		if s, ok := m.suggestions.selected(); ok {
			return m, m.selectSuggestion(s)
		}
		return m, m.submitSearch()
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != before {
		m.debouncer.Trigger(value)
	}
	return m, cmd
}

// handleMouse turns clicks on unit toggles and suggestions into selections
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for _, u := range models.Units {
		if m.clicked(unitZoneID(u), msg) {
			m.selectUnit(u)
			return m, nil
		}
	}

	for i, s := range m.suggestions.items {
		if m.clicked(suggestionZoneID(i), msg) {
			return m, m.selectSuggestion(s)
		}
	}

	return m, nil
}

func (m Model) clicked(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// submitSearch fetches the trimmed search text, then clears the field
func (m *Model) submitSearch() tea.Cmd {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		return nil
	}
	cmd := m.beginFetch(query)
	m.resetSearch()
	return cmd
}

// selectSuggestion fetches the suggestion's label as a location query
func (m *Model) selectSuggestion(s models.Suggestion) tea.Cmd {
	cmd := m.beginFetch(s.Label())
	m.resetSearch()
	return cmd
}

// resetSearch clears the field and closes the dropdown, dropping any autocomplete
// work still pending for the old text
func (m *Model) resetSearch() {
	m.searchInput.SetValue("")
	m.suggestions.hide()
	m.debouncer.Stop()
	m.suggestQuery = ""
}

// selectUnit switches the displayed unit without touching the network
func (m *Model) selectUnit(u models.Unit) {
	if m.state.SetUnit(u) {
		m.renderer.RenderTemperature(m.screen, m.state)
	}
}

// beginFetch stamps a new fetch, shows the loading state and returns the request
func (m *Model) beginFetch(query string) tea.Cmd {
	generation := m.state.BeginFetch()
	m.status = StatusLoading
	m.err = nil
	m.renderer.RenderLoading(m.screen)
	return fetchWeather(m.client, m.logger, query, generation)
}

// handleWeatherFetched applies a fetch result unless a newer fetch has started
func (m Model) handleWeatherFetched(msg weatherFetchedMsg) Model {
	if !m.state.IsCurrent(msg.generation) {
		m.logger.Debug("dropping superseded weather response",
			zap.String("query", msg.query),
			zap.Uint64("generation", msg.generation),
		)
		return m
	}

	if msg.err != nil {
		m.status = StatusError
		m.err = msg.err
		m.renderer.RenderError(m.screen, weatherapi.Message(msg.err))
		return m
	}

	if !m.state.Accept(msg.generation, msg.query, msg.snapshot) {
		return m
	}
	m.store.SetPersistedLocation(msg.query)
	m.status = StatusReady
	m.renderer.Render(m.screen, m.state)
	return m
}

// handleSuggestQuery runs once the search field has been quiet for the debounce period
func (m *Model) handleSuggestQuery(text string) tea.Cmd {
	query := strings.TrimSpace(text)
	if len([]rune(query)) < minSuggestQuery {
		m.suggestQuery = ""
		m.suggestions.hide()
		return nil
	}
	m.suggestQuery = query
	return searchLocations(m.client, query)
}

// handleSuggestionsFetched shows the results of the latest autocomplete request.
// Failures only close the dropdown.
func (m *Model) handleSuggestionsFetched(msg suggestionsFetchedMsg) {
	if msg.query != m.suggestQuery {
		return
	}
	if msg.err != nil {
		m.logger.Warn("location search failed",
			zap.String("query", msg.query),
			zap.Error(msg.err),
		)
		m.suggestions.hide()
		return
	}
	m.suggestions.show(msg.suggestions)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	th := themeFor(m.screen.night)

	title := "☀ Weather Terminal"
	if m.screen.night {
		title = "☾ Weather Terminal"
	}

	var sections []string
	sections = append(sections, th.title.Render(title))
	sections = append(sections, mutedStyle.Render("Current conditions from WeatherAPI.com"))
	sections = append(sections, "")
	sections = append(sections, m.renderSearch(th))
	sections = append(sections, "")
	sections = append(sections, m.renderCard(th))

	if updated := m.renderUpdated(m.now()); updated != "" && m.status == StatusReady {
		sections = append(sections, updated)
	}

	help := helpStyle.Render("Enter: Search • ↑/↓: Suggestions • Ctrl+T or click: °C/°F • Esc: Quit")
	sections = append(sections, help)

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Close releases the click-zone tracker
func (m Model) Close() {
	m.debouncer.Stop()
	m.zones.Close()
}
