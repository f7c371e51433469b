// Package root contains the root command for the application
package root

import (
	"os"

	"fjacquet/ngtax/internal/config"
	"fjacquet/ngtax/internal/container"
	"fjacquet/ngtax/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
	Period string
	Demo   bool
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapterWithOutput("info", "text", os.Stderr)

	// AppContainer is wired by PersistentPreRunE before any subcommand runs
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ngtax",
		Short: "A CLI tool to compute Nigerian VAT returns, deadlines and compliance scores.",
		Long: `ngtax computes monthly tax periods, VAT returns and due dates, monthly tax
summaries and a compliance score from a snapshot of transactions, filings and a
business profile. Use --demo to run against the built-in sample data.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ngtax!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env before reading configuration so it can feed viper
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Log = config.ConfigureLogging(cfg)

			AppContainer, err = container.NewContainer(cfg,
				container.WithDemo(SharedFlags.Demo),
				container.WithTransactionsFile(SharedFlags.Input),
				container.WithLogger(Log))
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close container")
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Log = logging.NewLogrusAdapterWithOutput(config.GetEnv("LOG_LEVEL", "info"), "text", os.Stderr)

	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Transactions CSV file (overrides data.transactions)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: json, yaml or csv (default: report.format)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Period, "period", "p", "", "Tax period as YYYY-MM (default: current month)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.Demo, "demo", false, "Use the built-in demo snapshot")
}
