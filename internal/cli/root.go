package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCommand builds the complete command tree. Running the root command
// without a subcommand starts the interactive menu session.
func NewRootCommand(deps Dependencies) *cobra.Command {
	version := resolvedVersion(deps.Version)
	var flags globalFlags

	root := &cobra.Command{
		Use:           "weather",
		Short:         "Look up current city weather and manage a short favorites list.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			showVersion, _ := cmd.Flags().GetBool("version")
			if showVersion {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
				return errVersionShown
			}
			applyGlobalFlags(cmd, deps, flags)
			return runInteractive(cmd, deps)
		},
	}
	root.Flags().BoolP("version", "v", false, "Show CLI version and exit.")
	addGlobalFlags(root, &flags)
	root.SetHelpCommand(&cobra.Command{Hidden: true})

	root.AddCommand(newSearchCommand(deps))
	root.AddCommand(newConfigureCommand(deps))

	root.Long = strings.Join(append([]string{
		"Terminal client for OpenWeather. Without a subcommand the root",
		"command starts an interactive menu session.",
		"",
		"Options:",
	}, optionLines(root.Flags())...), "\n")

	return root
}

// optionLines renders one help line per visible flag.
func optionLines(flags *pflag.FlagSet) []string {
	lines := make([]string, 0)
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden || flag.Name == "help" {
			return
		}
		lines = append(lines, fmt.Sprintf("  %s\t%s", flagToken(flag), strings.TrimSpace(flag.Usage)))
	})
	return lines
}

func flagToken(flag *pflag.Flag) string {
	token := "--" + flag.Name
	if flag.Shorthand != "" {
		token += "/-" + flag.Shorthand
	}
	return token
}
