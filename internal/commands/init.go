package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/campaignclean/internal/config"
)

func newInitCommand() *cobra.Command {
	var runLog string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create the input and output directories and a default campaignclean.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, runLog, force)
		},
	}

	cmd.Flags().StringVar(&runLog, "run-log", "logs/runs.csv", "run history file recorded in the config (empty disables it)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing campaignclean.yaml")

	return cmd
}

func runInit(out io.Writer, dir, runLog string, force bool) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if !force {
		if _, err := os.Stat(cfgPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", cfgPath, err)
		}
	}

	// Paths in the config are relative to the directory the tool runs in.
	cfg := config.Default()
	cfg.RunLog = runLog

	for _, d := range []string{cfg.Input, cfg.Output} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "Initialized campaignclean project at %s\n", dir)
	return nil
}
