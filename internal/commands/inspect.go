package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/campaignclean/internal/loader"
	"github.com/cleared-dev/campaignclean/internal/report"
)

func newInspectCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List the input files and the unified columns without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Debug("Inspecting input", zap.String("dir", cfg.Input))
			res, err := loader.Load(cfg.Input)
			if err != nil {
				return err
			}
			return report.Input(cmd.OutOrStdout(), res)
		},
	}
}
