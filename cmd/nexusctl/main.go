package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexuscore/internal/logging"
	"nexuscore/internal/services/checks"
	reportsvc "nexuscore/internal/services/reports"
)

var (
	// Global flags
	verbose      bool
	checkTimeout time.Duration
	policyName   string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nexusctl",
	Short: "NexusCore - mock AI investing intelligence",
	Long: `nexusctl runs the NexusCore report checks from the command line.

Use "generate" for a one-shot report or "tui" for the interactive,
role-gated terminal interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New("development", level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().DurationVar(&checkTimeout, "timeout", 0, "deadline for all checks (0 = none)")
	rootCmd.PersistentFlags().StringVar(&policyName, "on-check-error", "fail", "fail | placeholder")
	rootCmd.AddCommand(generateCmd, tuiCmd)
}

func newReports() (*reportsvc.Service, error) {
	policy, err := reportsvc.ParsePolicy(policyName)
	if err != nil {
		return nil, err
	}
	l := logger
	if l == nil {
		l = zap.NewNop()
	}
	return reportsvc.New(checks.Default(),
		reportsvc.WithLogger(l),
		reportsvc.WithTimeout(checkTimeout),
		reportsvc.WithPolicy(policy),
	), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
