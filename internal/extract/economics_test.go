package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/campaignclean/internal/model"
	"github.com/cleared-dev/campaignclean/internal/table"
	"github.com/cleared-dev/campaignclean/internal/testutil"
)

func TestEconomics(t *testing.T) {
	got, err := Economics(rawTable(t,
		testutil.DefaultRow("1"),
		testutil.DefaultRow("2").With("cons_price_idx", "92.893").With("euribor_three_months", "-0.5"),
	))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 1, got[0].ClientID)
	assert.Equal(t, "93.994", got[0].ConsPriceIdx.String())
	assert.Equal(t, "4.857", got[0].EuriborThreeMonths.String())
	assert.Equal(t, 2, got[1].ClientID)
	assert.Equal(t, "92.893", got[1].ConsPriceIdx.String())
	assert.Equal(t, "-0.5", got[1].EuriborThreeMonths.String())
}

func TestEconomics_MissingColumn(t *testing.T) {
	tbl, err := table.New([]string{"client_id", "cons_price_idx"}, [][]string{{"1", "93.2"}})
	require.NoError(t, err)

	_, err = Economics(tbl)
	var schemaErr *model.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"euribor_three_months"}, schemaErr.Missing)
}

func TestEconomics_BadDecimal(t *testing.T) {
	_, err := Economics(rawTable(t, testutil.DefaultRow("1").With("euribor_three_months", "n/a")))

	var valueErr *model.ValueError
	require.True(t, errors.As(err, &valueErr))
	assert.Equal(t, "euribor_three_months", valueErr.Column)
	assert.Equal(t, 0, valueErr.Row)
}

func TestExtractors_RowCountsAndIDsAlign(t *testing.T) {
	tbl := rawTable(t, testutil.DefaultRow("5"), testutil.DefaultRow("3"), testutil.DefaultRow("5"))

	clients, err := Clients(tbl)
	require.NoError(t, err)
	campaigns, err := Campaigns(tbl)
	require.NoError(t, err)
	econ, err := Economics(tbl)
	require.NoError(t, err)

	require.Len(t, clients, tbl.Len())
	require.Len(t, campaigns, tbl.Len())
	require.Len(t, econ, tbl.Len())

	for i, want := range []int{5, 3, 5} {
		assert.Equal(t, want, clients[i].ClientID)
		assert.Equal(t, want, campaigns[i].ClientID)
		assert.Equal(t, want, econ[i].ClientID)
	}
}
