package domain

import "time"

// Platform identifies the advertising network an account belongs to.
type Platform string

const (
	PlatformGoogle   Platform = "google"
	PlatformFacebook Platform = "facebook"
	PlatformLinkedIn Platform = "linkedin"
	PlatformOther    Platform = "other"
)

// Valid reports whether p is one of the supported platform values.
func (p Platform) Valid() bool {
	switch p {
	case PlatformGoogle, PlatformFacebook, PlatformLinkedIn, PlatformOther:
		return true
	}
	return false
}

// AdAccount is an advertising account registered by a user. The external
// AccountID and the OAuth tokens identify the account on the ad network
// side; they are never serialised into API responses.
type AdAccount struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	Platform     Platform  `json:"platform"`
	AccountID    string    `json:"account_id"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
