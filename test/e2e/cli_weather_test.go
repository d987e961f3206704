package e2e_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/avelhart/weather-cli/internal/cli"
	"github.com/avelhart/weather-cli/internal/gateway/openweather"
)

type stubProvider struct {
	geocodeBody string
	weatherBody string
	requests    []string
}

func (s *stubProvider) Do(req *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, req.URL.String())
	body := s.weatherBody
	if strings.Contains(req.URL.Path, "/geo/") {
		body = s.geocodeBody
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func newStubbedDeps(provider *stubProvider, input string) cli.Dependencies {
	client := openweather.NewClient(
		openweather.WithHTTPClient(provider),
		openweather.WithAPIKey("e2e-key"),
	)
	deps := cli.Dependencies{
		Weather: client,
		Version: "e2e",
	}
	if input != "" {
		deps.Input = strings.NewReader(input)
	}
	return deps
}

func londonProvider() *stubProvider {
	return &stubProvider{
		geocodeBody: `[{"name":"London","lat":51.5072,"lon":-0.1276}]`,
		weatherBody: `{
			"cod": 200,
			"main": {"temp": 15.3, "feels_like": 14.1, "pressure": 1012, "humidity": 70, "temp_min": 13.0, "temp_max": 17.0},
			"wind": {"speed": 4.1},
			"clouds": {"all": 80}
		}`,
	}
}

func TestSearchEndToEnd(t *testing.T) {
	provider := londonProvider()
	deps := newStubbedDeps(provider, "")

	var stdout, stderr bytes.Buffer
	code := cli.Execute(context.Background(), []string{"search", "London"}, deps, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}

	if len(provider.requests) != 2 {
		t.Fatalf("expected geocode then weather request, got %v", provider.requests)
	}
	if !strings.Contains(provider.requests[0], "q=London&limit=1&appid=e2e-key") {
		t.Fatalf("unexpected geocode request: %s", provider.requests[0])
	}
	if !strings.Contains(provider.requests[1], "lat=51.5072&lon=-0.1276&units=metric&appid=e2e-key") {
		t.Fatalf("unexpected weather request: %s", provider.requests[1])
	}

	want := []string{
		"Temperature: 15.3",
		"Feels Like: 14.1",
		"Pressure: 1012",
		"Humidity: 70",
		"Min Temperature: 13",
		"Max Temperature: 17",
		"Wind Speed: 4.1",
		"Cloudiness: 80",
		"Rain: 0",
		"Snow: 0",
	}
	previous := -1
	for _, line := range want {
		index := strings.Index(stdout.String(), line)
		if index < 0 {
			t.Fatalf("expected line %q in output:\n%s", line, stdout.String())
		}
		if index < previous {
			t.Fatalf("expected %q after previous field, output order wrong:\n%s", line, stdout.String())
		}
		previous = index
	}
}

func TestInteractiveSessionEndToEnd(t *testing.T) {
	provider := londonProvider()
	deps := newStubbedDeps(provider, "2\nLondon\n4\n5\n")

	var stdout, stderr bytes.Buffer
	code := cli.Execute(context.Background(), nil, deps, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Favorite successfully added: London") {
		t.Fatalf("expected favorite confirmation, got:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "City Name: London") {
		t.Fatalf("expected favorites view, got:\n%s", stdout.String())
	}
	// one geocode for the add, one weather fetch for the view
	if len(provider.requests) != 2 {
		t.Fatalf("expected 2 upstream requests, got %v", provider.requests)
	}
	if !strings.Contains(provider.requests[1], "lat=51.5072&lon=-0.1276") {
		t.Fatalf("expected stored coordinates reused, got %s", provider.requests[1])
	}
}

func TestSearchNotFoundEndToEnd(t *testing.T) {
	provider := londonProvider()
	provider.geocodeBody = `[]`
	deps := newStubbedDeps(provider, "")

	var stdout, stderr bytes.Buffer
	code := cli.Execute(context.Background(), []string{"search", "Nowhereville", "--verbose"}, deps, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stdout.String(), "error fetching geocoding data") {
		t.Fatalf("expected geocoding error context, got:\n%s", stdout.String())
	}
}
