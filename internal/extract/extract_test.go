package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/campaignclean/internal/table"
	"github.com/cleared-dev/campaignclean/internal/testutil"
)

func rawTable(t *testing.T, rows ...testutil.Raw) *table.Table {
	t.Helper()
	tbl, err := table.New(testutil.RawHeader, testutil.Records(testutil.RawHeader, rows...))
	require.NoError(t, err)
	return tbl
}

func strPtr(s string) *string { return &s }
