package port

import (
	"context"
	"time"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
)

// DashboardPerPage is the fixed page size of the combined lead list on the
// dashboard.
const DashboardPerPage = 15

// AnalyticsUseCase produces mock analytics for ad accounts. None of its
// operations fail: unknown platforms degrade to the zero record and the
// generators cannot error.
type AnalyticsUseCase interface {
	// FetchAnalytics returns the analytics record for one account. The
	// start and end parameters are accepted for interface stability but the
	// generated data always covers the trailing 30 days.
	FetchAnalytics(ctx context.Context, acc domain.AdAccount, start, end time.Time) domain.Report

	// RecentLeads combines the lead lists of all given accounts, tags each
	// lead with its source account, sorts the result by CreatedAt
	// descending and returns the requested page. A page past the end
	// yields an empty item list with a correct total.
	RecentLeads(ctx context.Context, accounts []domain.AdAccount, page, perPage int) domain.PagedLeads
}

// CreateAccountReq carries the form fields for registering an ad account.
type CreateAccountReq struct {
	Name        string          `json:"name"`
	Platform    domain.Platform `json:"platform"`
	AccountID   string          `json:"account_id"`
	AccessToken string          `json:"access_token"`
}

// DashboardResp is the dashboard view model: the user's accounts plus one
// page of recent leads aggregated across all of them.
type DashboardResp struct {
	Accounts    []domain.AdAccount `json:"accounts"`
	RecentLeads domain.PagedLeads  `json:"recent_leads"`
}

// AccountUseCase exposes the ad-account operations of the application. All
// operations act on behalf of a user; ownership is enforced here, not in
// the HTTP layer.
type AccountUseCase interface {
	// CreateAccount validates the request and stores a new account owned by
	// userID. Validation failures wrap ErrValidation.
	CreateAccount(ctx context.Context, userID int64, req CreateAccountReq) (domain.AdAccount, error)
	// DeleteAccount removes an account. It returns ErrNotFound when the
	// account does not exist and ErrForbidden when it belongs to another
	// user.
	DeleteAccount(ctx context.Context, userID, accountID int64) error
	// ListAccounts returns the user's accounts, newest first.
	ListAccounts(ctx context.Context, userID int64) ([]domain.AdAccount, error)
	// AccountAnalytics returns the analytics record for one of the user's
	// accounts, enforcing ownership first.
	AccountAnalytics(ctx context.Context, userID, accountID int64, start, end time.Time) (*domain.Report, error)
	// Dashboard returns the user's accounts and one page of aggregated
	// recent leads.
	Dashboard(ctx context.Context, userID int64, page int) (*DashboardResp, error)
}

// AuthUseCase handles registration and login. Tokens are signed JWTs
// carrying the user id as subject.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	// UserID validates a token and returns the authenticated user id.
	UserID(token string) (int64, error)
}
