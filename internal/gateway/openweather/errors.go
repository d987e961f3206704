package openweather

import (
	"errors"
	"fmt"
	"strings"
)

const maxErrorBodyPreview = 400

// ErrUpstream indicates OpenWeather API failure.
var ErrUpstream = errors.New("error when trying to get response from the OpenWeather API")

// ErrNoResult is returned when a geocoding query matches nothing.
var ErrNoResult = errors.New("geocoding returned an empty result")

// ErrEmptyResponse is returned when the weather endpoint answers with an
// empty document.
var ErrEmptyResponse = errors.New("weather endpoint returned an empty document")

// ErrMissingCredentials is returned when no API key has been provided.
var ErrMissingCredentials = errors.New("OpenWeather API key is not configured")

// RequestError carries HTTP context for failed upstream calls. A zero
// StatusCode with a non-nil Cause means the request never completed
// (connect failure or body decode failure).
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	Cause      error
}

func (e *RequestError) Error() string {
	parts := []string{ErrUpstream.Error()}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	method := strings.TrimSpace(e.Method)
	url := strings.TrimSpace(e.URL)
	if method != "" || url != "" {
		parts = append(parts, strings.TrimSpace(method+" "+url))
	}
	if trimmed := compactBodyPreview(e.Body); trimmed != "" {
		parts = append(parts, fmt.Sprintf("body=%q", trimmed))
	}
	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Cause))
	}
	return strings.Join(parts, "; ")
}

func (e *RequestError) Unwrap() error {
	return ErrUpstream
}

// MissingFieldError reports a provider document that lacks a field the
// reading requires, or carries it with a non-numeric value.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("provider response is missing %s", e.Field)
}

// ProviderError reports an application-level error document from the
// provider, such as an unknown city.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("provider returned error code %d", e.Code)
	}
	return fmt.Sprintf("provider returned error: %s", e.Message)
}

func compactBodyPreview(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	body = strings.ReplaceAll(body, "\n", " ")
	body = strings.ReplaceAll(body, "\r", " ")
	body = strings.Join(strings.Fields(body), " ")
	if len(body) > maxErrorBodyPreview {
		return body[:maxErrorBodyPreview] + "..."
	}
	return body
}
