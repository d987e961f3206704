package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avelhart/weather-cli/internal/config"
	"github.com/avelhart/weather-cli/internal/domain"
	"github.com/spf13/cobra"
)

var allowedUnits = map[string]struct{}{
	"metric":   {},
	"imperial": {},
	"standard": {},
}

func newConfigureCommand(deps Dependencies) *cobra.Command {
	var apiKey string
	var units string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Save the OpenWeather API key and default units to the local config file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			trimmedKey := strings.TrimSpace(apiKey)
			trimmedUnits := strings.ToLower(strings.TrimSpace(units))
			if trimmedUnits != "" {
				if _, ok := allowedUnits[trimmedUnits]; !ok {
					return fmt.Errorf("unsupported units %q (use metric, imperial, or standard)", trimmedUnits)
				}
			}

			existing, loadErr := deps.Config.Load(cmd.Context())
			if loadErr != nil && !errors.Is(loadErr, config.ErrConfigNotFound) && !errors.Is(loadErr, config.ErrInvalidConfig) {
				return loadErr
			}
			hasExisting := loadErr == nil

			if trimmedKey == "" {
				if !hasExisting {
					return fmt.Errorf("--api-key is required when no config exists yet")
				}
				trimmedKey = existing.APIKey
			}
			if trimmedUnits == "" && hasExisting {
				trimmedUnits = existing.Units
			}

			cfg := domain.Config{APIKey: trimmedKey, Units: trimmedUnits}
			if err := deps.Config.Save(cmd.Context(), cfg); err != nil {
				return err
			}
			return writeTable(cmd, fmt.Sprintf("Config saved to %s", deps.Config.Path()))
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "OpenWeather API key to store.")
	cmd.Flags().StringVar(&units, "units", "", "Default unit system: metric, imperial, or standard.")
	return cmd
}
