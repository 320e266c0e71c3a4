package domain

import "time"

// LeadStatus is the pipeline stage of a prospective customer.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusQualified LeadStatus = "Qualified"
	LeadStatusConverted LeadStatus = "Converted"
)

// LeadStatuses lists all pipeline stages.
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusConverted,
}

// Lead is a synthetic prospective-customer record tied to an ad account.
// AccountName, AccountPlatform and AccountID are only set when leads from
// several accounts are combined for the dashboard; the generator leaves
// them empty.
type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	Campaign  string     `json:"campaign"`

	AccountName     string   `json:"account_name,omitempty"`
	AccountPlatform Platform `json:"platform,omitempty"`
	AccountID       int64    `json:"account_id,omitempty"`
}
