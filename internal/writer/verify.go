package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cleared-dev/campaignclean/internal/model"
)

// Verify reads the three output files back from dir and checks that each
// decodes and holds the expected client ids in the expected order.
func Verify(dir string, want Tables) error {
	if err := verifyFile(filepath.Join(dir, ClientFile), ReadClients, clientIDs(want.Clients),
		func(c model.Client) int { return c.ClientID }); err != nil {
		return err
	}
	if err := verifyFile(filepath.Join(dir, CampaignFile), ReadCampaigns, campaignIDs(want.Campaigns),
		func(c model.Campaign) int { return c.ClientID }); err != nil {
		return err
	}
	return verifyFile(filepath.Join(dir, EconomicsFile), ReadEconomics, economicsIDs(want.Economics),
		func(e model.Economics) int { return e.ClientID })
}

func verifyFile[T any](path string, read func(io.Reader) ([]T, error), ids []int, id func(T) int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	defer f.Close()

	got, err := read(f)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	if len(got) != len(ids) {
		return fmt.Errorf("verifying %s: %d rows, expected %d", path, len(got), len(ids))
	}
	for i, rec := range got {
		if id(rec) != ids[i] {
			return fmt.Errorf("verifying %s: row %d: client_id %d, expected %d", path, i+2, id(rec), ids[i])
		}
	}
	return nil
}

func clientIDs(rows []model.Client) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ClientID
	}
	return ids
}

func campaignIDs(rows []model.Campaign) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ClientID
	}
	return ids
}

func economicsIDs(rows []model.Economics) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ClientID
	}
	return ids
}
