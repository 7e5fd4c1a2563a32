// Package commands provides CLI commands for thrivemum.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diogo/thrivemum/internal/config"
	"github.com/diogo/thrivemum/internal/logging"
	"github.com/diogo/thrivemum/internal/models"
	"github.com/diogo/thrivemum/internal/tui"
)

var (
	// Global flags
	offlineFlag bool
	backendFlag string
	verboseFlag bool
	configFlag  string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// NewRootCmd builds the command tree around deps
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}

	cmd := &cobra.Command{
		Use:   "thrivemum [question]",
		Short: "Money-saving coach for busy mums",
		Long: `thrivemum answers everyday money questions with specific, actionable advice:
grocery savings, batch cooking, emergency funds, beginner investing and DIY.

Replies come from Gemini when GEMINI_API_KEY is set and from a built-in
keyword table otherwise (or with --offline).

Examples:
  thrivemum chat                            Start interactive chat
  thrivemum "How do I save on groceries?"   Ask a single question
  echo "Build emergency fund?" | thrivemum ask
  thrivemum calc invest --monthly 50 --years 10
  thrivemum suggestions                     List quick questions`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "thrivemum %s (built %s)\n", Version, BuildTime)
				return nil
			}

			question, err := readQuestion(args, deps.stdin())
			if err != nil {
				return err
			}
			if question == "" {
				return cmd.Help()
			}
			return runAsk(cmd, deps, question, false)
		},
	}

	cmd.PersistentFlags().BoolVar(&offlineFlag, "offline", false, "Answer from the built-in keyword table only")
	cmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Generate backend: rest or sdk")
	cmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default ~/.thrivemum/config.yaml)")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(NewChatCmd(deps))
	cmd.AddCommand(NewAskCmd(deps))
	cmd.AddCommand(NewCalcCmd())
	cmd.AddCommand(NewSuggestionsCmd())
	cmd.AddCommand(NewConfigCmd())

	return cmd
}

// Execute runs the root command
func Execute() {
	root := NewRootCmd(NewDependencies())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, tui.FormatError(err))
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if configFlag != "" {
		cfg, err = config.Load(configFlag)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("offline") {
		cfg.Offline = offlineFlag
	}
	if flags.Changed("backend") {
		cfg.Backend = backendFlag
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verboseFlag
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the logger for a command. The chat screen logs to a file.
func newLogger(cfg config.Config, toFile bool) *zap.Logger {
	opts := logging.Options{Verbose: cfg.Verbose}
	if toFile {
		path, err := config.GetLogPath()
		if err != nil {
			return zap.NewNop()
		}
		opts.OutputPath = path
	}

	logger, err := logging.New(opts)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// backendLabel names the reply source shown to the user
func backendLabel(cfg config.Config) string {
	if cfg.Offline {
		return "offline"
	}
	if cfg.Backend == models.BackendSDK {
		return "Gemini SDK"
	}
	return "Gemini"
}
