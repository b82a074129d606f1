package weatherapi

import (
	"errors"
	"fmt"
)

// FallbackMessage is used when the service fails without a structured message
const FallbackMessage = "Weather data unavailable"

// NetworkError is returned when the request never produced an HTTP response
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is returned when the service answers with a non-success status
type APIError struct {
	StatusCode int
	Code       int // WeatherAPI error code, e.g. 1006 for "No matching location found."
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNetworkError reports whether err was caused by the transport
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// Message returns the text to show a user for err
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "Network error: unable to reach the weather service"
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
