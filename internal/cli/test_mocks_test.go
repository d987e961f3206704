package cli

import (
	"context"
	"sync"

	"github.com/avelhart/weather-cli/internal/domain"
)

type testWeatherAPI struct {
	mu            sync.Mutex
	resolveFn     func(ctx context.Context, city string) (string, string, error)
	weatherFn     func(ctx context.Context, lat, lon string) (domain.Reading, error)
	noCredentials bool
	resolvedNames []string
	weatherCalls  [][2]string
}

func (m *testWeatherAPI) ResolveCity(ctx context.Context, city string) (string, string, error) {
	m.mu.Lock()
	m.resolvedNames = append(m.resolvedNames, city)
	m.mu.Unlock()
	if m.resolveFn != nil {
		return m.resolveFn(ctx, city)
	}
	return "51.5072", "-0.1276", nil
}

func (m *testWeatherAPI) CurrentWeather(ctx context.Context, lat, lon string) (domain.Reading, error) {
	m.mu.Lock()
	m.weatherCalls = append(m.weatherCalls, [2]string{lat, lon})
	m.mu.Unlock()
	if m.weatherFn != nil {
		return m.weatherFn(ctx, lat, lon)
	}
	return londonReading(), nil
}

func (m *testWeatherAPI) HasCredentials() bool {
	return !m.noCredentials
}

func londonReading() domain.Reading {
	return domain.Reading{
		Temperature: 15.3,
		FeelsLike:   14.1,
		Pressure:    1012,
		Humidity:    70,
		TempMin:     13.0,
		TempMax:     17.0,
		WindSpeed:   4.1,
		Cloudiness:  80,
	}
}

type recordingConfig struct {
	loadCfg domain.Config
	loadErr error
	saved   *domain.Config
	saveErr error
}

func (r *recordingConfig) Path() string {
	return "/tmp/test-weather-config.json"
}

func (r *recordingConfig) Load(context.Context) (domain.Config, error) {
	if r.loadErr != nil {
		return domain.Config{}, r.loadErr
	}
	return r.loadCfg, nil
}

func (r *recordingConfig) Save(_ context.Context, cfg domain.Config) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copyCfg := cfg
	r.saved = &copyCfg
	return nil
}
