package domain

// Report is the normalized analytics record for a single ad account over
// the trailing 30 days. The top-level counters are the column sums of
// DailyData. For an unsupported platform the zero record is returned:
// every counter 0, empty DailyData and LeadsList and no platform label.
type Report struct {
	Platform    string        `json:"platform,omitempty"`
	Impressions int           `json:"impressions"`
	Clicks      int           `json:"clicks"`
	Conversions int           `json:"conversions"`
	Leads       int           `json:"leads"`
	Spend       int           `json:"spend"`
	DailyData   []DailyMetric `json:"daily_data"`
	LeadsList   []Lead        `json:"leads_list"`
}

// PagedLeads is one page of the combined lead list plus the metadata the
// caller needs to render navigation.
type PagedLeads struct {
	Items   []Lead `json:"items"`
	Total   int    `json:"total"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}
