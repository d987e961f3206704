package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/avelhart/weather-cli/internal/gateway/openweather"
	"github.com/avelhart/weather-cli/internal/service/output"
	"github.com/spf13/cobra"
)

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return ""
}

type globalFlags struct {
	Format  string
	APIKey  string
	Verbose bool
}

func addGlobalFlags(cmd *cobra.Command, flags *globalFlags) {
	cmd.Flags().StringVar(&flags.Format, "format", "table", "Output format: table, json, or yaml.")
	cmd.Flags().StringVar(&flags.APIKey, "api-key", "", "OpenWeather API key override for this command.")
	cmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Enable verbose output (prints upstream request trace).")
}

type apiKeySetter interface {
	SetAPIKey(apiKey string)
}

type verboseHTTPTraceSetter interface {
	SetVerboseOutput(out io.Writer)
}

// applyGlobalFlags pushes per-command overrides into the gateway before any
// upstream call happens.
func applyGlobalFlags(cmd *cobra.Command, deps Dependencies, flags globalFlags) {
	if key := strings.TrimSpace(flags.APIKey); key != "" {
		if setter, ok := deps.Weather.(apiKeySetter); ok {
			setter.SetAPIKey(key)
		}
	}
	if flags.Verbose {
		if setter, ok := deps.Weather.(verboseHTTPTraceSetter); ok {
			setter.SetVerboseOutput(cmd.ErrOrStderr())
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "[verbose] http trace enabled")
		}
	}
}

func parseOutputFormat(format string) (output.Format, error) {
	return output.ParseFormat(format)
}

func writeTable(cmd *cobra.Command, text string) error {
	return output.WriteOutput(cmd.OutOrStdout(), text)
}

func writeMachinePayload(cmd *cobra.Command, env output.Envelope, format output.Format) error {
	rendered, err := output.RenderPayload(env, format)
	if err != nil {
		return err
	}
	return output.WriteOutput(cmd.OutOrStdout(), rendered)
}

func emitError(cmd *cobra.Command, format output.Format, city string, code string, message string) error {
	if format == output.FormatTable {
		if err := output.WriteOutput(cmd.OutOrStdout(), message); err != nil {
			return err
		}
		return &exitError{code: 1}
	}
	env := output.BuildEnvelope(city, "", nil, map[string]any{
		"code":    code,
		"message": message,
	})
	if err := writeMachinePayload(cmd, env, format); err != nil {
		return err
	}
	return &exitError{code: 1}
}

func emitUpstreamError(cmd *cobra.Command, format output.Format, city string, verbose bool, err error) error {
	if err == nil {
		err = openweather.ErrUpstream
	}
	if verbose {
		return emitError(cmd, format, city, "WEATHER_UPSTREAM_ERROR", err.Error())
	}

	message := err.Error()
	var upstreamErr *openweather.RequestError
	if errors.As(err, &upstreamErr) {
		message = openweather.ErrUpstream.Error() + " (use --verbose for details)"
		if upstreamErr.StatusCode > 0 {
			message = fmt.Sprintf("%s (status %d, use --verbose for details)", openweather.ErrUpstream.Error(), upstreamErr.StatusCode)
		}
	}
	return emitError(cmd, format, city, "WEATHER_UPSTREAM_ERROR", message)
}

func resolveUnits(units string) string {
	if trimmed := strings.TrimSpace(units); trimmed != "" {
		return trimmed
	}
	return "metric"
}

func requireCredentials(cmd *cobra.Command, deps Dependencies, format output.Format, city string) error {
	if deps.Weather != nil && deps.Weather.HasCredentials() {
		return nil
	}
	return emitError(
		cmd,
		format,
		city,
		"WEATHER_AUTH_REQUIRED",
		"An OpenWeather API key is required. Run 'weather configure --api-key <key>' or set OPENWEATHER_API_KEY.",
	)
}
