package extract

import (
	"strings"

	"github.com/cleared-dev/campaignclean/internal/model"
	"github.com/cleared-dev/campaignclean/internal/table"
)

// ClientColumns are the raw columns describing a client.
var ClientColumns = []string{
	ColClientID, ColAge, ColJob, ColMarital, ColEducation, ColCreditDefault, ColMortgage,
}

// unknownEducation is the source's placeholder for a missing education level.
const unknownEducation = "unknown"

// Clients builds the client record set.
func Clients(t *table.Table) ([]model.Client, error) {
	cols, err := t.Columns(ClientColumns...)
	if err != nil {
		return nil, err
	}

	out := make([]model.Client, t.Len())
	for i := range out {
		id, err := parseInt(i, ColClientID, cols[ColClientID][i])
		if err != nil {
			return nil, err
		}
		age, err := parseInt(i, ColAge, cols[ColAge][i])
		if err != nil {
			return nil, err
		}
		out[i] = model.Client{
			ClientID:      id,
			Age:           age,
			Job:           NormalizeJob(cols[ColJob][i]),
			Marital:       cols[ColMarital][i],
			Education:     NormalizeEducation(cols[ColEducation][i]),
			CreditDefault: flag(cols[ColCreditDefault][i], "yes"),
			Mortgage:      flag(cols[ColMortgage][i], "yes"),
		}
	}
	return out, nil
}

// NormalizeJob drops every "." and turns every "-" into "_".
// "admin.-clerical" -> "admin_clerical"
func NormalizeJob(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, "-", "_")
}

// NormalizeEducation turns every "." into "_" and maps "unknown" to nil.
func NormalizeEducation(s string) *string {
	s = strings.ReplaceAll(s, ".", "_")
	if s == unknownEducation {
		return nil
	}
	return &s
}
