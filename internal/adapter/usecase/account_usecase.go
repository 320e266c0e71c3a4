package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
	"github.com/sestevao/marketing-analytics/internal/core/port"
)

// AccountUseCase implements ad-account CRUD and the dashboard view model.
// Ownership is enforced here: every operation receives the authenticated
// user id and refuses to touch accounts owned by someone else.
type AccountUseCase struct {
	repo      port.AccountRepository
	analytics port.AnalyticsUseCase
}

// NewAccountUseCase creates an account usecase over the given repository
// and analytics provider.
func NewAccountUseCase(repo port.AccountRepository, analytics port.AnalyticsUseCase) *AccountUseCase {
	return &AccountUseCase{repo: repo, analytics: analytics}
}

// CreateAccount validates the request and stores a new account owned by
// userID. The external account id and access token are optional.
func (u *AccountUseCase) CreateAccount(ctx context.Context, userID int64, req port.CreateAccountReq) (domain.AdAccount, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.AdAccount{}, fmt.Errorf("%w: name is required", port.ErrValidation)
	}
	if len(name) > 255 {
		return domain.AdAccount{}, fmt.Errorf("%w: name must be at most 255 characters", port.ErrValidation)
	}
	if !req.Platform.Valid() {
		return domain.AdAccount{}, fmt.Errorf("%w: platform must be one of google, facebook, linkedin, other", port.ErrValidation)
	}

	return u.repo.Create(ctx, domain.AdAccount{
		UserID:      userID,
		Name:        name,
		Platform:    req.Platform,
		AccountID:   req.AccountID,
		AccessToken: req.AccessToken,
		IsActive:    true,
	})
}

// DeleteAccount removes one of the user's accounts. Deleting an account
// owned by another user returns ErrForbidden.
func (u *AccountUseCase) DeleteAccount(ctx context.Context, userID, accountID int64) error {
	acc, err := u.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return port.ErrNotFound
	}
	if acc.UserID != userID {
		return port.ErrForbidden
	}
	return u.repo.Delete(ctx, accountID)
}

// ListAccounts returns the user's accounts, newest first.
func (u *AccountUseCase) ListAccounts(ctx context.Context, userID int64) ([]domain.AdAccount, error) {
	return u.repo.ListByUser(ctx, userID)
}

// AccountAnalytics returns the analytics record for one of the user's
// accounts after checking ownership.
func (u *AccountUseCase) AccountAnalytics(ctx context.Context, userID, accountID int64, start, end time.Time) (*domain.Report, error) {
	acc, err := u.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, port.ErrNotFound
	}
	if acc.UserID != userID {
		return nil, port.ErrForbidden
	}
	rep := u.analytics.FetchAnalytics(ctx, *acc, start, end)
	return &rep, nil
}

// Dashboard returns the user's accounts plus one page of recent leads
// aggregated across all of them.
func (u *AccountUseCase) Dashboard(ctx context.Context, userID int64, page int) (*port.DashboardResp, error) {
	accounts, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &port.DashboardResp{
		Accounts:    accounts,
		RecentLeads: u.analytics.RecentLeads(ctx, accounts, page, port.DashboardPerPage),
	}, nil
}
