package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avelhart/weather-cli/internal/domain"
	"github.com/avelhart/weather-cli/internal/sanitize"
)

const (
	defaultGeocodeAPIURL = "http://api.openweathermap.org/geo/1.0/direct"
	defaultWeatherAPIURL = "http://api.openweathermap.org/data/2.5/weather"
	defaultUnits         = "metric"
	geocodeResultLimit   = 1
	redactedCredential   = "REDACTED"
)

// HTTPClient is implemented by http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Endpoints stores upstream endpoint urls.
type Endpoints struct {
	Geocode string
	Weather string
}

// Client queries OpenWeather geocoding and current-weather endpoints.
type Client struct {
	httpClient     HTTPClient
	endpoints      Endpoints
	units          string
	apiKey         string
	apiKeyM        sync.RWMutex
	verboseOutput  io.Writer
	verboseOutputM sync.RWMutex
}

// Option applies Client options.
type Option func(*Client)

// WithHTTPClient replaces default HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithEndpoints replaces default endpoint set.
func WithEndpoints(endpoints Endpoints) Option {
	return func(c *Client) {
		c.endpoints = endpoints
	}
}

// WithAPIKey sets the OpenWeather credential sent with every call.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.SetAPIKey(apiKey)
	}
}

// WithUnits sets the unit system requested from the weather endpoint.
func WithUnits(units string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(units); trimmed != "" {
			c.units = trimmed
		}
	}
}

// WithVerboseOutput enables per-request trace output for upstream HTTP calls.
func WithVerboseOutput(out io.Writer) Option {
	return func(c *Client) {
		c.SetVerboseOutput(out)
	}
}

// NewClient creates a production OpenWeather gateway client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		endpoints: Endpoints{
			Geocode: defaultGeocodeAPIURL,
			Weather: defaultWeatherAPIURL,
		},
		units: defaultUnits,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAPIKey replaces the upstream credential.
func (c *Client) SetAPIKey(apiKey string) {
	c.apiKeyM.Lock()
	c.apiKey = strings.TrimSpace(apiKey)
	c.apiKeyM.Unlock()
}

// HasCredentials reports whether an API key is configured.
func (c *Client) HasCredentials() bool {
	c.apiKeyM.RLock()
	defer c.apiKeyM.RUnlock()
	return c.apiKey != ""
}

// SetVerboseOutput sets destination for verbose HTTP request trace lines.
func (c *Client) SetVerboseOutput(out io.Writer) {
	c.verboseOutputM.Lock()
	c.verboseOutput = out
	c.verboseOutputM.Unlock()
}

func (c *Client) credential() (string, error) {
	c.apiKeyM.RLock()
	defer c.apiKeyM.RUnlock()
	if c.apiKey == "" {
		return "", ErrMissingCredentials
	}
	return c.apiKey, nil
}

// getJSON performs one upstream GET and decodes the response body into out.
// rawQuery keeps caller-provided parameter order; the credential is always
// appended as the final query parameter.
func (c *Client) getJSON(ctx context.Context, endpoint string, rawQuery string, out any) error {
	apiKey, err := c.credential()
	if err != nil {
		return err
	}
	rawURL := endpoint + "?" + rawQuery + "&appid=" + apiKey
	// the credential never reaches trace lines or error text
	safeURL := endpoint + "?" + rawQuery + "&appid=" + redactedCredential

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	startedAt := time.Now()
	c.traceRequestStart(http.MethodGet, safeURL)

	res, err := c.httpClient.Do(req)
	if err != nil {
		upstreamErr := &RequestError{
			Method: http.MethodGet,
			URL:    safeURL,
			Cause:  err,
		}
		c.traceRequestDone(http.MethodGet, safeURL, 0, 0, startedAt, upstreamErr)
		return upstreamErr
	}
	defer func() {
		_ = res.Body.Close()
	}()

	rawResponse, err := io.ReadAll(res.Body)
	if err != nil {
		upstreamErr := &RequestError{
			Method:     http.MethodGet,
			URL:        safeURL,
			StatusCode: res.StatusCode,
			Cause:      fmt.Errorf("read response body: %w", err),
		}
		c.traceRequestDone(http.MethodGet, safeURL, res.StatusCode, 0, startedAt, upstreamErr)
		return upstreamErr
	}

	if res.StatusCode != http.StatusOK {
		upstreamErr := &RequestError{
			Method:     http.MethodGet,
			URL:        safeURL,
			StatusCode: res.StatusCode,
			Body:       string(rawResponse),
		}
		c.traceRequestDone(http.MethodGet, safeURL, res.StatusCode, len(rawResponse), startedAt, upstreamErr)
		return upstreamErr
	}

	if err := json.Unmarshal(rawResponse, out); err != nil {
		upstreamErr := &RequestError{
			Method:     http.MethodGet,
			URL:        safeURL,
			StatusCode: res.StatusCode,
			Body:       string(rawResponse),
			Cause:      fmt.Errorf("decode response body: %w", err),
		}
		c.traceRequestDone(http.MethodGet, safeURL, res.StatusCode, len(rawResponse), startedAt, upstreamErr)
		return upstreamErr
	}

	c.traceRequestDone(http.MethodGet, safeURL, res.StatusCode, len(rawResponse), startedAt, nil)
	return nil
}

type geocodeResult struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// ResolveCity geocodes a city name into decimal coordinate text.
func (c *Client) ResolveCity(ctx context.Context, cityName string) (string, string, error) {
	rawQuery := "q=" + sanitize.SanitizeAndEncode(cityName) + "&limit=" + strconv.Itoa(geocodeResultLimit)

	var results []geocodeResult
	if err := c.getJSON(ctx, c.endpoints.Geocode, rawQuery, &results); err != nil {
		return "", "", fmt.Errorf("error fetching geocoding data: %w", err)
	}
	if len(results) == 0 {
		return "", "", fmt.Errorf("error fetching geocoding data: %w", ErrNoResult)
	}
	first := results[0]
	if first.Lat == nil {
		return "", "", fmt.Errorf("error fetching geocoding data: %w", &MissingFieldError{Field: "lat"})
	}
	if first.Lon == nil {
		return "", "", fmt.Errorf("error fetching geocoding data: %w", &MissingFieldError{Field: "lon"})
	}
	return formatCoordinate(*first.Lat), formatCoordinate(*first.Lon), nil
}

// CurrentWeather fetches current conditions for decimal coordinate text.
func (c *Client) CurrentWeather(ctx context.Context, lat string, lon string) (domain.Reading, error) {
	rawQuery := "lat=" + lat + "&lon=" + lon + "&units=" + c.units

	var payload map[string]any
	if err := c.getJSON(ctx, c.endpoints.Weather, rawQuery, &payload); err != nil {
		return domain.Reading{}, fmt.Errorf("error fetching weather data: %w", err)
	}
	if len(payload) == 0 {
		return domain.Reading{}, fmt.Errorf("error fetching weather data: %w", ErrEmptyResponse)
	}
	if code := providerCode(payload["cod"]); code != http.StatusOK {
		return domain.Reading{}, fmt.Errorf("error fetching weather data: %w", &ProviderError{
			Code:    code,
			Message: providerMessage(payload["message"]),
		})
	}

	reading := domain.Reading{}
	mandatory := []struct {
		target *float64
		path   []string
	}{
		{&reading.Temperature, []string{"main", "temp"}},
		{&reading.FeelsLike, []string{"main", "feels_like"}},
		{&reading.Pressure, []string{"main", "pressure"}},
		{&reading.Humidity, []string{"main", "humidity"}},
		{&reading.TempMin, []string{"main", "temp_min"}},
		{&reading.TempMax, []string{"main", "temp_max"}},
		{&reading.WindSpeed, []string{"wind", "speed"}},
		{&reading.Cloudiness, []string{"clouds", "all"}},
	}
	for _, field := range mandatory {
		value, ok := numberAt(payload, field.path...)
		if !ok {
			return domain.Reading{}, fmt.Errorf("error fetching weather data: %w", &MissingFieldError{
				Field: strings.Join(field.path, "."),
			})
		}
		*field.target = value
	}
	reading.Rain = optionalVolume(payload, "rain")
	reading.Snow = optionalVolume(payload, "snow")
	return reading, nil
}

// formatCoordinate renders a provider coordinate as canonical decimal text.
func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func numberAt(payload map[string]any, path ...string) (float64, bool) {
	current := payload
	for i, key := range path {
		raw, ok := current[key]
		if !ok {
			return 0, false
		}
		if i == len(path)-1 {
			value, ok := raw.(float64)
			return value, ok
		}
		current, ok = raw.(map[string]any)
		if !ok {
			return 0, false
		}
	}
	return 0, false
}

// optionalVolume reads the 1-hour precipitation volume from an optional
// section, defaulting to zero when the section or its value is absent.
func optionalVolume(payload map[string]any, section string) float64 {
	value, ok := numberAt(payload, section, "1h")
	if !ok {
		return 0
	}
	return value
}

func providerCode(raw any) int {
	switch value := raw.(type) {
	case float64:
		return int(value)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return 0
}

func providerMessage(raw any) string {
	if message, ok := raw.(string); ok {
		return message
	}
	return ""
}

func (c *Client) traceRequestStart(method, rawURL string) {
	c.tracef("[http] -> %s %s", method, rawURL)
}

func (c *Client) traceRequestDone(method, rawURL string, statusCode int, responseBytes int, startedAt time.Time, reqErr error) {
	duration := time.Since(startedAt).Round(time.Millisecond)
	if reqErr != nil {
		c.tracef("[http] <- %s %s error=%v duration=%s", method, rawURL, reqErr, duration)
		return
	}
	c.tracef(
		"[http] <- %s %s status=%d duration=%s bytes=%d",
		method,
		rawURL,
		statusCode,
		duration,
		responseBytes,
	)
}

func (c *Client) tracef(format string, args ...any) {
	c.verboseOutputM.RLock()
	out := c.verboseOutput
	c.verboseOutputM.RUnlock()
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}
