package extract

import (
	"github.com/cleared-dev/campaignclean/internal/model"
	"github.com/cleared-dev/campaignclean/internal/table"
)

// EconomicsColumns are the raw macroeconomic columns.
var EconomicsColumns = []string{ColClientID, ColConsPriceIdx, ColEuriborThreeMonths}

// Economics builds the economics record set. Values pass through unchanged.
func Economics(t *table.Table) ([]model.Economics, error) {
	cols, err := t.Columns(EconomicsColumns...)
	if err != nil {
		return nil, err
	}

	out := make([]model.Economics, t.Len())
	for i := range out {
		id, err := parseInt(i, ColClientID, cols[ColClientID][i])
		if err != nil {
			return nil, err
		}
		cpi, err := parseDecimal(i, ColConsPriceIdx, cols[ColConsPriceIdx][i])
		if err != nil {
			return nil, err
		}
		euribor, err := parseDecimal(i, ColEuriborThreeMonths, cols[ColEuriborThreeMonths][i])
		if err != nil {
			return nil, err
		}
		out[i] = model.Economics{ClientID: id, ConsPriceIdx: cpi, EuriborThreeMonths: euribor}
	}
	return out, nil
}
