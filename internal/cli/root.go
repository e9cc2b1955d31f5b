package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ankan123basu/CPUXpert/config"
	"github.com/ankan123basu/CPUXpert/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the cpuxpert CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpuxpert",
		Short: "CPUXpert simulates CPU scheduling algorithms",
		Long:  "CPUXpert computes execution timelines and scheduling metrics for FCFS, SJF, SRTF, Priority and Round Robin.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				loaded.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				loaded.LogFormat = flagLogFormat
			}
			if flagDebug {
				loaded.LogLevel = "debug"
			}
			cfg = loaded
			logger = logging.New(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(),
		newSimulateCmd(),
		newCompareCmd(),
		newSuggestCmd(),
	)

	return root
}

// quantumOrDefault resolves the Round Robin quantum, 0 meaning "use config".
func quantumOrDefault(quantum int) int {
	if quantum == 0 {
		return cfg.RoundRobinTimeQuantum
	}
	return quantum
}
