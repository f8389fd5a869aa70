package model

// Client is one row of client.csv.
type Client struct {
	ClientID      int
	Age           int
	Job           string
	Marital       string
	Education     *string // nil when the source value was "unknown"
	CreditDefault int     // 1 iff the source value was "yes"
	Mortgage      int     // 1 iff the source value was "yes"
}

// EducationOrEmpty returns the education level, or "" when it is missing.
func (c Client) EducationOrEmpty() string {
	if c.Education == nil {
		return ""
	}
	return *c.Education
}
