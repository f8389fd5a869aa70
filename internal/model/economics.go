package model

import "github.com/shopspring/decimal"

// Economics is one row of economics.csv: indicators at contact time.
type Economics struct {
	ClientID           int
	ConsPriceIdx       decimal.Decimal
	EuriborThreeMonths decimal.Decimal
}
