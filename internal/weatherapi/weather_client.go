package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	DefaultBaseURL   = "https://api.weatherapi.com/v1"
	defaultUserAgent = "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)"
)

// WeatherAPIClient implements Client using the WeatherAPI.com REST API
type WeatherAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
	now        func() time.Time
}

// Option configures a WeatherAPIClient
type Option func(*WeatherAPIClient)

// WithBaseURL points the client at a different host, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(c *WeatherAPIClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the transport
func WithHTTPClient(hc *http.Client) Option {
	return func(c *WeatherAPIClient) {
		c.httpClient = hc
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *WeatherAPIClient) {
		c.userAgent = ua
	}
}

// NewWeatherClient creates a new WeatherAPI.com client. No timeout is set on the
// default transport; callers bound requests through the context.
func NewWeatherClient(apiKey string, opts ...Option) *WeatherAPIClient {
	c := &WeatherAPIClient{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		userAgent:  defaultUserAgent,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCurrent retrieves current conditions for a location
func (c *WeatherAPIClient) GetCurrent(ctx context.Context, query string) (*models.WeatherSnapshot, error) {
	var resp currentResponse
	if err := c.get(ctx, "current.json", query, &resp); err != nil {
		return nil, err
	}

	return &models.WeatherSnapshot{
		Location: models.Location{
			Name:      resp.Location.Name,
			Region:    resp.Location.Region,
			Country:   resp.Location.Country,
			LocalTime: resp.Location.Localtime,
		},
		Current: models.Current{
			TempC:      resp.Current.TempC,
			TempF:      resp.Current.TempF,
			FeelsLikeC: resp.Current.FeelslikeC,
			FeelsLikeF: resp.Current.FeelslikeF,
			Condition: models.Condition{
				Text: resp.Current.Condition.Text,
				Icon: resp.Current.Condition.Icon,
				Code: resp.Current.Condition.Code,
			},
			WindKph:    resp.Current.WindKph,
			WindDir:    resp.Current.WindDir,
			Humidity:   resp.Current.Humidity,
			PressureMb: resp.Current.PressureMb,
			VisKm:      resp.Current.VisKm,
			IsDay:      resp.Current.IsDay == 1,
		},
		FetchedAt: c.now(),
	}, nil
}

// SearchLocations retrieves matching locations in the order the API ranks them
func (c *WeatherAPIClient) SearchLocations(ctx context.Context, query string) ([]models.Suggestion, error) {
	var resp []searchResult
	if err := c.get(ctx, "search.json", query, &resp); err != nil {
		return nil, err
	}

	suggestions := make([]models.Suggestion, 0, len(resp))
	for _, r := range resp {
		suggestions = append(suggestions, models.Suggestion{
			Name:    r.Name,
			Region:  r.Region,
			Country: r.Country,
		})
	}
	return suggestions, nil
}

// get issues a GET against endpoint with the key/q parameters and decodes the body into v
func (c *WeatherAPIClient) get(ctx context.Context, endpoint, query string, v any) error {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// parseAPIError builds an APIError from the {"error":{...}} payload when there is one
func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    FallbackMessage,
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		apiErr.Code = payload.Error.Code
		apiErr.Message = payload.Error.Message
	}
	return apiErr
}

// Internal types for WeatherAPI responses

type currentResponse struct {
	Location struct {
		Name      string `json:"name"`
		Region    string `json:"region"`
		Country   string `json:"country"`
		Localtime string `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		TempF      float64 `json:"temp_f"`
		FeelslikeC float64 `json:"feelslike_c"`
		FeelslikeF float64 `json:"feelslike_f"`
		IsDay      int     `json:"is_day"`
		Condition  struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
			Code int    `json:"code"`
		} `json:"condition"`
		WindKph    float64 `json:"wind_kph"`
		WindDir    string  `json:"wind_dir"`
		PressureMb float64 `json:"pressure_mb"`
		Humidity   int     `json:"humidity"`
		VisKm      float64 `json:"vis_km"`
	} `json:"current"`
}

type searchResult struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
