package output

import (
	"strings"
	"testing"

	"github.com/avelhart/weather-cli/internal/domain"
)

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{
		"":       FormatTable,
		"table":  FormatTable,
		" JSON ": FormatJSON,
		"yaml":   FormatYAML,
	} {
		got, err := ParseFormat(raw)
		if err != nil {
			t.Fatalf("ParseFormat(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestRenderReadingKeepsDisplayOrder(t *testing.T) {
	reading := domain.Reading{
		Temperature: 15.3,
		FeelsLike:   14.1,
		Pressure:    1012,
		Humidity:    70,
		TempMin:     13,
		TempMax:     17,
		WindSpeed:   4.1,
		Cloudiness:  80,
	}
	rendered := RenderReading("Weather for London:", reading)
	lines := strings.Split(rendered, "\n")
	want := []string{
		"Weather for London:",
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
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), rendered)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d: expected %q, got %q", i, line, lines[i])
		}
	}
}

func TestRenderPayloadJSON(t *testing.T) {
	env := BuildEnvelope("London", "metric", map[string]any{"temperature": 15.3}, nil)
	rendered, err := RenderPayload(env, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if !strings.Contains(rendered, `"temperature": 15.3`) {
		t.Fatalf("expected temperature in payload, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, `"city": "London"`) {
		t.Fatalf("expected city meta in payload, got:\n%s", rendered)
	}
}

func TestRenderPayloadRejectsTable(t *testing.T) {
	if _, err := RenderPayload(Envelope{}, FormatTable); err == nil {
		t.Fatal("expected error for table format")
	}
}

func TestRenderTable(t *testing.T) {
	rendered := RenderTable("Favorites", []string{"#", "City"}, [][]string{{"1", "London"}})
	want := "Favorites\n#\tCity\n1\tLondon"
	if rendered != want {
		t.Fatalf("expected %q, got %q", want, rendered)
	}
}
