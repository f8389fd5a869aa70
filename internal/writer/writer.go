// Package writer serializes the cleaned record sets as CSV files.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cleared-dev/campaignclean/internal/model"
)

// Output file names.
const (
	ClientFile    = "client.csv"
	CampaignFile  = "campaign.csv"
	EconomicsFile = "economics.csv"
)

// Tables is the full output of one run.
type Tables struct {
	Clients   []model.Client
	Campaigns []model.Campaign
	Economics []model.Economics
}

// Write creates dir if needed and writes the three output files into it,
// replacing any existing files of the same name. Each file is written to a
// temporary sibling and renamed into place, so a failed run never leaves a
// truncated file behind. Returns the paths written.
func Write(dir string, t Tables) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &model.WriteError{Path: dir, Err: fmt.Errorf("creating output dir: %w", err)}
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{ClientFile, func(w io.Writer) error { return WriteClients(w, t.Clients) }},
		{CampaignFile, func(w io.Writer) error { return WriteCampaigns(w, t.Campaigns) }},
		{EconomicsFile, func(w io.Writer) error { return WriteEconomics(w, t.Economics) }},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &model.WriteError{Path: path, Err: fmt.Errorf("creating temp file: %w", err)}
	}
	tmpPath := tmp.Name()
	// No-op once the rename has happened.
	defer os.Remove(tmpPath)

	if err := write(tmp); err != nil {
		tmp.Close()
		return &model.WriteError{Path: path, Err: err}
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return &model.WriteError{Path: path, Err: fmt.Errorf("chmod: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		return &model.WriteError{Path: path, Err: fmt.Errorf("closing: %w", err)}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &model.WriteError{Path: path, Err: fmt.Errorf("renaming into place: %w", err)}
	}
	return nil
}
