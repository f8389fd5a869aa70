// Package extract projects the unified raw table onto the client, campaign
// and economics record sets. Each extractor is a pure function of the table
// and returns one record per input row, in input order.
package extract

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/campaignclean/internal/model"
)

// Raw column names.
const (
	ColClientID                 = "client_id"
	ColAge                      = "age"
	ColJob                      = "job"
	ColMarital                  = "marital"
	ColEducation                = "education"
	ColCreditDefault            = "credit_default"
	ColMortgage                 = "mortgage"
	ColNumberContacts           = "number_contacts"
	ColContactDuration          = "contact_duration"
	ColPreviousCampaignContacts = "previous_campaign_contacts"
	ColPreviousOutcome          = "previous_outcome"
	ColCampaignOutcome          = "campaign_outcome"
	ColDay                      = "day"
	ColMonth                    = "month"
	ColConsPriceIdx             = "cons_price_idx"
	ColEuriborThreeMonths       = "euribor_three_months"
)

// flag is 1 iff s equals want exactly.
func flag(s, want string) int {
	if s == want {
		return 1
	}
	return 0
}

func parseInt(row int, column, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &model.ValueError{Row: row, Column: column, Value: s, Err: err}
	}
	return n, nil
}

func parseDecimal(row int, column, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &model.ValueError{Row: row, Column: column, Value: s, Err: err}
	}
	return d, nil
}
