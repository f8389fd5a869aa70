package extract

import (
	"fmt"
	"time"

	"github.com/cleared-dev/campaignclean/internal/model"
	"github.com/cleared-dev/campaignclean/internal/table"
)

// CampaignColumns are the raw columns describing the last contact.
var CampaignColumns = []string{
	ColClientID, ColNumberContacts, ColContactDuration, ColPreviousCampaignContacts,
	ColPreviousOutcome, ColCampaignOutcome, ColDay, ColMonth,
}

// ContactYear is the year every contact date is placed in. The exports
// carry only day and month.
const ContactYear = 2022

// contactLayout matches "2022-may-21"; month names match case-insensitively.
const contactLayout = "2006-Jan-2"

// Campaigns builds the campaign record set.
func Campaigns(t *table.Table) ([]model.Campaign, error) {
	cols, err := t.Columns(CampaignColumns...)
	if err != nil {
		return nil, err
	}

	out := make([]model.Campaign, t.Len())
	for i := range out {
		var ints [4]int
		for j, col := range []string{ColClientID, ColNumberContacts, ColContactDuration, ColPreviousCampaignContacts} {
			n, err := parseInt(i, col, cols[col][i])
			if err != nil {
				return nil, err
			}
			ints[j] = n
		}

		date, err := ContactDate(cols[ColMonth][i], cols[ColDay][i])
		if err != nil {
			return nil, &model.DateParseError{Row: i, Month: cols[ColMonth][i], Day: cols[ColDay][i], Err: err}
		}

		out[i] = model.Campaign{
			ClientID:                 ints[0],
			NumberContacts:           ints[1],
			ContactDuration:          ints[2],
			PreviousCampaignContacts: ints[3],
			PreviousOutcome:          flag(cols[ColPreviousOutcome][i], "success"),
			CampaignOutcome:          flag(cols[ColCampaignOutcome][i], "yes"),
			LastContactDate:          date,
		}
	}
	return out, nil
}

// ContactDate places a month abbreviation and day of month in ContactYear.
func ContactDate(month, day string) (time.Time, error) {
	return time.Parse(contactLayout, fmt.Sprintf("%d-%s-%s", ContactYear, month, day))
}
