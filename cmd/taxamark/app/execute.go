package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/taxamark/pkg/logging"
)

// Execute runs the taxamark CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "taxamark",
		Short:   "Render taxa as Markdown",
		Version: a.version,
		Long: `Taxamark renders taxon records, as returned by the iNaturalist API,
as Markdown for chat messages: names with rank, italics and common names,
ancestor hierarchies truncated to a length budget, and one-line descriptions
with conservation status, observation counts and establishment means.

Records are read from YAML or JSON files, or from stdin when FILE is "-".`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "format",
		Title: "Formatting Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.taxamark.yaml or $HOME/.taxamark.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored log output")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.String("locale", a.config.Locale, "prefer common names in this locale, e.g. fr")
	flags.Int("max-len", a.config.MaxLen, "maximum length of name lists and hierarchies (0 = unbounded)")
	flags.String("base-url", a.config.BaseURL, "website that links point to")
	flags.Bool("with-url", a.config.WithURL, "link taxon titles to their pages")

	rootCmd.SetVersionTemplate("taxamark {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It reloads the
// configuration with the parsed flags bound over env and file values.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	a.config = config

	if !a.customLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
		logging.SetDefault(logger)
	}

	a.logger.Debug().
		Str("config_file", a.config.ConfigFile).
		Str("locale", a.config.Locale).
		Int("max_len", a.config.MaxLen).
		Msg("Loaded configuration")
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewNameCommand())
	rootCmd.AddCommand(a.NewNamesCommand())
	rootCmd.AddCommand(a.NewDescribeCommand())
	rootCmd.AddCommand(a.NewReportCommand())
	rootCmd.AddCommand(a.NewQualityCommand())

	rootCmd.AddCommand(a.NewValidateCommand())
	rootCmd.AddCommand(a.NewRanksCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
