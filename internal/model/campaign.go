package model

import "time"

// Campaign is one row of campaign.csv: the last contact made with a client.
type Campaign struct {
	ClientID                 int
	NumberContacts           int
	ContactDuration          int // seconds
	PreviousCampaignContacts int
	PreviousOutcome          int // 1 iff the previous campaign was a "success"
	CampaignOutcome          int // 1 iff the client said "yes"
	LastContactDate          time.Time
}
