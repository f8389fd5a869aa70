package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/campaignclean/internal/model"
)

// CSV headers of the three output files.
const (
	ClientHeader    = "client_id,age,job,marital,education,credit_default,mortgage"
	CampaignHeader  = "client_id,number_contacts,contact_duration,previous_campaign_contacts,previous_outcome,campaign_outcome,last_contact_date"
	EconomicsHeader = "client_id,cons_price_idx,euribor_three_months"
)

const dateFormat = "2006-01-02"

const (
	clientNumFields = 7
	colCliID        = 0
	colCliAge       = 1
	colCliJob       = 2
	colCliMarital   = 3
	colCliEdu       = 4
	colCliCredit    = 5
	colCliMortgage  = 6
)

const (
	campaignNumFields = 7
	colCmpID          = 0
	colCmpContacts    = 1
	colCmpDuration    = 2
	colCmpPrevious    = 3
	colCmpPrevOutcome = 4
	colCmpOutcome     = 5
	colCmpDate        = 6
)

const (
	economicsNumFields = 3
	colEcoID           = 0
	colEcoCPI          = 1
	colEcoEuribor      = 2
)

// MarshalClient converts a Client to a CSV row. A missing education level
// is written as an empty field.
func MarshalClient(c model.Client) []string {
	row := make([]string, clientNumFields)
	row[colCliID] = strconv.Itoa(c.ClientID)
	row[colCliAge] = strconv.Itoa(c.Age)
	row[colCliJob] = c.Job
	row[colCliMarital] = c.Marital
	row[colCliEdu] = c.EducationOrEmpty()
	row[colCliCredit] = strconv.Itoa(c.CreditDefault)
	row[colCliMortgage] = strconv.Itoa(c.Mortgage)
	return row
}

// UnmarshalClient converts a CSV row to a Client.
func UnmarshalClient(record []string) (model.Client, error) {
	if len(record) != clientNumFields {
		return model.Client{}, fmt.Errorf("expected %d fields, got %d", clientNumFields, len(record))
	}

	ints, err := atoiFields(record, map[int]string{
		colCliID: "client_id", colCliAge: "age", colCliCredit: "credit_default", colCliMortgage: "mortgage",
	})
	if err != nil {
		return model.Client{}, err
	}

	var education *string
	if record[colCliEdu] != "" {
		e := record[colCliEdu]
		education = &e
	}

	return model.Client{
		ClientID:      ints[colCliID],
		Age:           ints[colCliAge],
		Job:           record[colCliJob],
		Marital:       record[colCliMarital],
		Education:     education,
		CreditDefault: ints[colCliCredit],
		Mortgage:      ints[colCliMortgage],
	}, nil
}

// MarshalCampaign converts a Campaign to a CSV row.
func MarshalCampaign(c model.Campaign) []string {
	row := make([]string, campaignNumFields)
	row[colCmpID] = strconv.Itoa(c.ClientID)
	row[colCmpContacts] = strconv.Itoa(c.NumberContacts)
	row[colCmpDuration] = strconv.Itoa(c.ContactDuration)
	row[colCmpPrevious] = strconv.Itoa(c.PreviousCampaignContacts)
	row[colCmpPrevOutcome] = strconv.Itoa(c.PreviousOutcome)
	row[colCmpOutcome] = strconv.Itoa(c.CampaignOutcome)
	row[colCmpDate] = c.LastContactDate.Format(dateFormat)
	return row
}

// UnmarshalCampaign converts a CSV row to a Campaign.
func UnmarshalCampaign(record []string) (model.Campaign, error) {
	if len(record) != campaignNumFields {
		return model.Campaign{}, fmt.Errorf("expected %d fields, got %d", campaignNumFields, len(record))
	}

	ints, err := atoiFields(record, map[int]string{
		colCmpID:          "client_id",
		colCmpContacts:    "number_contacts",
		colCmpDuration:    "contact_duration",
		colCmpPrevious:    "previous_campaign_contacts",
		colCmpPrevOutcome: "previous_outcome",
		colCmpOutcome:     "campaign_outcome",
	})
	if err != nil {
		return model.Campaign{}, err
	}

	date, err := time.Parse(dateFormat, record[colCmpDate])
	if err != nil {
		return model.Campaign{}, fmt.Errorf("parsing last_contact_date %q: %w", record[colCmpDate], err)
	}

	return model.Campaign{
		ClientID:                 ints[colCmpID],
		NumberContacts:           ints[colCmpContacts],
		ContactDuration:          ints[colCmpDuration],
		PreviousCampaignContacts: ints[colCmpPrevious],
		PreviousOutcome:          ints[colCmpPrevOutcome],
		CampaignOutcome:          ints[colCmpOutcome],
		LastContactDate:          date,
	}, nil
}

// MarshalEconomics converts an Economics row to a CSV row.
func MarshalEconomics(e model.Economics) []string {
	row := make([]string, economicsNumFields)
	row[colEcoID] = strconv.Itoa(e.ClientID)
	row[colEcoCPI] = formatDecimal(e.ConsPriceIdx)
	row[colEcoEuribor] = formatDecimal(e.EuriborThreeMonths)
	return row
}

// formatDecimal keeps the scale the value was parsed with, so "1.30" stays
// "1.30".
func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// UnmarshalEconomics converts a CSV row to an Economics row.
func UnmarshalEconomics(record []string) (model.Economics, error) {
	if len(record) != economicsNumFields {
		return model.Economics{}, fmt.Errorf("expected %d fields, got %d", economicsNumFields, len(record))
	}

	id, err := strconv.Atoi(record[colEcoID])
	if err != nil {
		return model.Economics{}, fmt.Errorf("parsing client_id %q: %w", record[colEcoID], err)
	}
	cpi, err := decimal.NewFromString(record[colEcoCPI])
	if err != nil {
		return model.Economics{}, fmt.Errorf("parsing cons_price_idx %q: %w", record[colEcoCPI], err)
	}
	euribor, err := decimal.NewFromString(record[colEcoEuribor])
	if err != nil {
		return model.Economics{}, fmt.Errorf("parsing euribor_three_months %q: %w", record[colEcoEuribor], err)
	}

	return model.Economics{ClientID: id, ConsPriceIdx: cpi, EuriborThreeMonths: euribor}, nil
}

// WriteClients writes client.csv content (including header).
func WriteClients(w io.Writer, clients []model.Client) error {
	return writeRows(w, ClientHeader, len(clients), func(i int) []string { return MarshalClient(clients[i]) })
}

// WriteCampaigns writes campaign.csv content (including header).
func WriteCampaigns(w io.Writer, campaigns []model.Campaign) error {
	return writeRows(w, CampaignHeader, len(campaigns), func(i int) []string { return MarshalCampaign(campaigns[i]) })
}

// WriteEconomics writes economics.csv content (including header).
func WriteEconomics(w io.Writer, rows []model.Economics) error {
	return writeRows(w, EconomicsHeader, len(rows), func(i int) []string { return MarshalEconomics(rows[i]) })
}

func writeRows(w io.Writer, header string, n int, row func(int) []string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := 0; i < n; i++ {
		if err := cw.Write(row(i)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadClients reads client.csv content.
func ReadClients(r io.Reader) ([]model.Client, error) {
	return readRows(r, clientNumFields, UnmarshalClient)
}

// ReadCampaigns reads campaign.csv content.
func ReadCampaigns(r io.Reader) ([]model.Campaign, error) {
	return readRows(r, campaignNumFields, UnmarshalCampaign)
}

// ReadEconomics reads economics.csv content.
func ReadEconomics(r io.Reader) ([]model.Economics, error) {
	return readRows(r, economicsNumFields, UnmarshalEconomics)
}

func readRows[T any](r io.Reader, numFields int, unmarshal func([]string) (T, error)) ([]T, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	// Skip header row.
	out := make([]T, 0, len(records)-1)
	for i, rec := range records[1:] {
		v, err := unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func atoiFields(record []string, cols map[int]string) (map[int]int, error) {
	out := make(map[int]int, len(cols))
	for idx, name := range cols {
		n, err := strconv.Atoi(record[idx])
		if err != nil {
			return nil, fmt.Errorf("parsing %s %q: %w", name, record[idx], err)
		}
		out[idx] = n
	}
	return out, nil
}
