package cli

import (
	"strings"
	"testing"

	"github.com/avelhart/weather-cli/internal/config"
	"github.com/avelhart/weather-cli/internal/domain"
)

func TestConfigureCreatesConfig(t *testing.T) {
	cfg := &recordingConfig{loadErr: config.ErrConfigNotFound}
	deps := Dependencies{Weather: &testWeatherAPI{}, Config: cfg}
	code, stdout, stderr := runCLI(t, deps, "configure", "--api-key", "k-123", "--units", "imperial")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr)
	}
	if cfg.saved == nil {
		t.Fatal("expected config to be saved")
	}
	if cfg.saved.APIKey != "k-123" || cfg.saved.Units != "imperial" {
		t.Fatalf("unexpected saved config: %+v", cfg.saved)
	}
	if !strings.Contains(stdout, "Config saved to") {
		t.Fatalf("expected confirmation, got:\n%s", stdout)
	}
}

func TestConfigureRequiresAPIKeyWithoutExistingConfig(t *testing.T) {
	cfg := &recordingConfig{loadErr: config.ErrConfigNotFound}
	deps := Dependencies{Weather: &testWeatherAPI{}, Config: cfg}
	code, _, stderr := runCLI(t, deps, "configure", "--units", "metric")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "--api-key is required") {
		t.Fatalf("expected api-key requirement, got: %s", stderr)
	}
}

func TestConfigureKeepsExistingKeyWhenUpdatingUnits(t *testing.T) {
	cfg := &recordingConfig{loadCfg: domain.Config{APIKey: "old-key", Units: "metric"}}
	deps := Dependencies{Weather: &testWeatherAPI{}, Config: cfg}
	code, _, stderr := runCLI(t, deps, "configure", "--units", "standard")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr)
	}
	if cfg.saved == nil || cfg.saved.APIKey != "old-key" || cfg.saved.Units != "standard" {
		t.Fatalf("unexpected saved config: %+v", cfg.saved)
	}
}

func TestConfigureRejectsUnknownUnits(t *testing.T) {
	cfg := &recordingConfig{loadErr: config.ErrConfigNotFound}
	deps := Dependencies{Weather: &testWeatherAPI{}, Config: cfg}
	code, _, stderr := runCLI(t, deps, "configure", "--api-key", "k", "--units", "kelvinish")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "unsupported units") {
		t.Fatalf("expected units error, got: %s", stderr)
	}
}
