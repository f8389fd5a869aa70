// Package pipeline runs one clean: load, extract, write.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/campaignclean/internal/extract"
	"github.com/cleared-dev/campaignclean/internal/loader"
	"github.com/cleared-dev/campaignclean/internal/runlog"
	"github.com/cleared-dev/campaignclean/internal/table"
	"github.com/cleared-dev/campaignclean/internal/writer"
)

// Options configures a run.
type Options struct {
	InputDir  string
	OutputDir string
	RunLog    string // optional; "" disables the run history
	Logger    *zap.Logger
}

// Summary describes a finished run.
type Summary struct {
	RunID     string
	Started   time.Time
	Finished  time.Time
	Files     []loader.FileInfo
	Rows      int
	Clients   int
	Campaigns int
	Economics int
	Outputs   []string
}

// Run loads every compressed table in opts.InputDir, builds the client,
// campaign and economics tables, writes them to opts.OutputDir and reads
// them back to check row alignment. The first error aborts the run.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sum := &Summary{RunID: uuid.NewString(), Started: time.Now()}
	logger = logger.With(zap.String("run_id", sum.RunID))

	err := run(ctx, opts, logger, sum)
	sum.Finished = time.Now()

	if opts.RunLog != "" {
		entry := runlog.Entry{
			Timestamp:  sum.Finished,
			RunID:      sum.RunID,
			Status:     runlog.StatusOK,
			InputFiles: len(sum.Files),
			Rows:       sum.Rows,
			OutputDir:  opts.OutputDir,
		}
		if err != nil {
			entry.Status = runlog.StatusFailed
			entry.Error = err.Error()
		}
		if logErr := runlog.Append(opts.RunLog, []runlog.Entry{entry}); logErr != nil {
			logger.Warn("Failed to write run log", zap.String("path", opts.RunLog), zap.Error(logErr))
		}
	}

	if err != nil {
		logger.Error("Run failed", zap.Error(err))
		return nil, err
	}

	logger.Info("Run complete",
		zap.Int("rows", sum.Rows),
		zap.Strings("outputs", sum.Outputs),
		zap.Duration("elapsed", sum.Finished.Sub(sum.Started)))
	return sum, nil
}

func run(ctx context.Context, opts Options, logger *zap.Logger, sum *Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Info("Loading input", zap.String("dir", opts.InputDir))
	res, err := loader.Load(opts.InputDir)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}
	sum.Files = res.Files
	sum.Rows = res.Table.Len()
	for _, f := range res.Files {
		logger.Debug("Loaded file", zap.String("file", f.Name), zap.Int64("bytes", f.Size), zap.Int("rows", f.Rows))
	}
	logger.Info("Input loaded", zap.Int("files", len(res.Files)), zap.Int("rows", sum.Rows))

	tables, err := Extract(ctx, res.Table)
	if err != nil {
		return err
	}
	sum.Clients = len(tables.Clients)
	sum.Campaigns = len(tables.Campaigns)
	sum.Economics = len(tables.Economics)

	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Info("Writing output", zap.String("dir", opts.OutputDir))
	paths, err := writer.Write(opts.OutputDir, tables)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	sum.Outputs = paths

	if err := writer.Verify(opts.OutputDir, tables); err != nil {
		return fmt.Errorf("verifying output: %w", err)
	}
	logger.Debug("Output verified", zap.Strings("outputs", paths))
	return nil
}

// Extract runs the three extractors concurrently over the unified table.
func Extract(ctx context.Context, t *table.Table) (writer.Tables, error) {
	var out writer.Tables
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		clients, err := extract.Clients(t)
		if err != nil {
			return fmt.Errorf("extracting clients: %w", err)
		}
		out.Clients = clients
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		campaigns, err := extract.Campaigns(t)
		if err != nil {
			return fmt.Errorf("extracting campaigns: %w", err)
		}
		out.Campaigns = campaigns
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		econ, err := extract.Economics(t)
		if err != nil {
			return fmt.Errorf("extracting economics: %w", err)
		}
		out.Economics = econ
		return nil
	})

	if err := g.Wait(); err != nil {
		return writer.Tables{}, err
	}
	return out, nil
}
