package extract

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/campaignclean/internal/model"
	"github.com/cleared-dev/campaignclean/internal/testutil"
)

func TestContactDate(t *testing.T) {
	tests := []struct {
		month, day string
		want       string
	}{
		{"may", "21", "2022-05-21"},
		{"jan", "1", "2022-01-01"},
		{"dec", "31", "2022-12-31"},
		{"feb", "28", "2022-02-28"},
		{"Aug", "05", "2022-08-05"},
		{"NOV", "9", "2022-11-09"},
	}
	for _, tt := range tests {
		got, err := ContactDate(tt.month, tt.day)
		require.NoError(t, err, "ContactDate(%q, %q)", tt.month, tt.day)
		assert.Equal(t, tt.want, got.Format("2006-01-02"))
	}
}

func TestContactDate_Invalid(t *testing.T) {
	tests := []struct{ month, day string }{
		{"feb", "29"}, // 2022 is not a leap year
		{"jun", "31"},
		{"may", "0"},
		{"may", "32"},
		{"june", "1"},
		{"foo", "1"},
		{"may", ""},
		{"", "1"},
	}
	for _, tt := range tests {
		_, err := ContactDate(tt.month, tt.day)
		assert.Error(t, err, "ContactDate(%q, %q)", tt.month, tt.day)
	}
}

func TestCampaigns(t *testing.T) {
	tbl := rawTable(t,
		testutil.DefaultRow("1").
			With("month", "may").
			With("day", "21").
			With("previous_outcome", "success").
			With("campaign_outcome", "yes"),
		testutil.DefaultRow("2").
			With("number_contacts", "3").
			With("contact_duration", "149").
			With("previous_campaign_contacts", "2").
			With("month", "nov").
			With("day", "3").
			With("previous_outcome", "failure").
			With("campaign_outcome", "no"),
	)

	got, err := Campaigns(tbl)
	require.NoError(t, err)

	want := []model.Campaign{
		{
			ClientID: 1, NumberContacts: 1, ContactDuration: 261, PreviousCampaignContacts: 0,
			PreviousOutcome: 1, CampaignOutcome: 1,
			LastContactDate: time.Date(2022, time.May, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			ClientID: 2, NumberContacts: 3, ContactDuration: 149, PreviousCampaignContacts: 2,
			PreviousOutcome: 0, CampaignOutcome: 0,
			LastContactDate: time.Date(2022, time.November, 3, 0, 0, 0, 0, time.UTC),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Campaigns() mismatch (-want +got):\n%s", diff)
	}
}

func TestCampaigns_DatesStartWithContactYear(t *testing.T) {
	months := []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
	rows := make([]testutil.Raw, 0, len(months))
	for _, m := range months {
		rows = append(rows, testutil.DefaultRow("1").With("month", m).With("day", "28"))
	}

	got, err := Campaigns(rawTable(t, rows...))
	require.NoError(t, err)
	for i, c := range got {
		s := c.LastContactDate.Format("2006-01-02")
		assert.True(t, strings.HasPrefix(s, "2022-"), s)
		assert.Equal(t, time.Month(i+1), c.LastContactDate.Month())
	}
}

func TestCampaigns_OutcomeFlags(t *testing.T) {
	got, err := Campaigns(rawTable(t,
		testutil.DefaultRow("1").With("previous_outcome", "nonexistent").With("campaign_outcome", "Yes"),
		testutil.DefaultRow("2").With("previous_outcome", "Success").With("campaign_outcome", "yes"),
	))
	require.NoError(t, err)
	assert.Equal(t, 0, got[0].PreviousOutcome)
	assert.Equal(t, 0, got[0].CampaignOutcome)
	assert.Equal(t, 0, got[1].PreviousOutcome)
	assert.Equal(t, 1, got[1].CampaignOutcome)
}

func TestCampaigns_BadDate(t *testing.T) {
	_, err := Campaigns(rawTable(t,
		testutil.DefaultRow("1"),
		testutil.DefaultRow("2").With("month", "feb").With("day", "30"),
	))

	var dateErr *model.DateParseError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, 1, dateErr.Row)
	assert.Equal(t, "feb", dateErr.Month)
	assert.Equal(t, "30", dateErr.Day)
}

func TestCampaigns_BadInteger(t *testing.T) {
	_, err := Campaigns(rawTable(t, testutil.DefaultRow("1").With("contact_duration", "4.5")))

	var valueErr *model.ValueError
	require.True(t, errors.As(err, &valueErr))
	assert.Equal(t, "contact_duration", valueErr.Column)
}
