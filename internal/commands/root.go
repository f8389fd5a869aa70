package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/campaignclean/internal/buildinfo"
	"github.com/cleared-dev/campaignclean/internal/config"
	"github.com/cleared-dev/campaignclean/internal/logging"
	"github.com/cleared-dev/campaignclean/internal/pipeline"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	input      string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Running the root command with no arguments cleans the input directory.
func NewRootCommand() *cobra.Command {
	var flags globalFlags
	var output string

	rootCmd := &cobra.Command{
		Use:     "campaignclean",
		Short:   "Split compressed campaign exports into client, campaign and economics tables",
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			return runClean(cmd, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flags.input, "input", config.Default().Input, "directory holding *.csv.zip files")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.Flags().StringVar(&output, "output", config.Default().Output, "directory receiving the cleaned CSV files")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newInspectCommand(&flags))
	rootCmd.AddCommand(newHistoryCommand(&flags))

	return rootCmd
}

// resolveConfig layers defaults, the optional config file and flags.
func resolveConfig(cmd *cobra.Command, flags globalFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = flags.input
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return logger, nil
}

func runClean(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sum, err := pipeline.Run(cmd.Context(), pipeline.Options{
		InputDir:  cfg.Input,
		OutputDir: cfg.Output,
		RunLog:    cfg.RunLog,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %d rows from %d files into %s\n", sum.Rows, len(sum.Files), cfg.Output)
	return nil
}
