package cli

import (
	"fmt"
	"strings"

	"github.com/avelhart/weather-cli/internal/sanitize"
	"github.com/avelhart/weather-cli/internal/service/output"
	"github.com/spf13/cobra"
)

func newSearchCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "search <city>",
		Short: "Look up current weather for a city.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			city := sanitize.Normalize(joinedCityArg(args))
			if city == "" {
				return fmt.Errorf("city name is required")
			}
			applyGlobalFlags(cmd, deps, flags)
			if err := requireCredentials(cmd, deps, format, city); err != nil {
				return err
			}

			lat, lon, err := deps.Weather.ResolveCity(cmd.Context(), city)
			if err != nil {
				return emitUpstreamError(cmd, format, city, flags.Verbose, err)
			}
			reading, err := deps.Weather.CurrentWeather(cmd.Context(), lat, lon)
			if err != nil {
				return emitUpstreamError(cmd, format, city, flags.Verbose, err)
			}

			if format == output.FormatTable {
				title := fmt.Sprintf("Weather Data for %s (%s, %s):", city, lat, lon)
				return writeTable(cmd, output.RenderReading(title, reading))
			}
			env := output.BuildEnvelope(city, resolveUnits(deps.Units), map[string]any{
				"lat":     lat,
				"lon":     lon,
				"reading": reading,
			}, nil)
			return writeMachinePayload(cmd, env, format)
		},
	}
	addGlobalFlags(cmd, &flags)
	return cmd
}

func joinedCityArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
