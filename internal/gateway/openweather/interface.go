package openweather

import (
	"context"

	"github.com/avelhart/weather-cli/internal/domain"
)

// API describes all OpenWeather upstream operations used by the CLI.
type API interface {
	// ResolveCity geocodes a free-text city name into decimal coordinate
	// text. The name is sanitized and encoded before it is sent upstream.
	ResolveCity(ctx context.Context, cityName string) (lat string, lon string, err error)
	// CurrentWeather fetches current conditions for decimal coordinate text.
	CurrentWeather(ctx context.Context, lat string, lon string) (domain.Reading, error)
	// HasCredentials reports whether an API key is configured.
	HasCredentials() bool
}
