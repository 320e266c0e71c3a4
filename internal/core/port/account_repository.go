package port

import (
	"context"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
)

// AccountRepository defines the persistence layer for ad accounts. It is an
// outbound port; implementations return (nil, nil) when a record does not
// exist rather than an error.
type AccountRepository interface {
	// Create stores a new ad account and returns it with the generated id
	// and timestamps filled in.
	Create(ctx context.Context, acc domain.AdAccount) (domain.AdAccount, error)
	// GetByID returns the account with the given id, or nil when missing.
	GetByID(ctx context.Context, id int64) (*domain.AdAccount, error)
	// ListByUser returns all accounts owned by the user, newest first.
	ListByUser(ctx context.Context, userID int64) ([]domain.AdAccount, error)
	// Delete removes the account with the given id.
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the persistence layer for users.
type UserRepository interface {
	// Create stores a new user and returns it with the generated id filled
	// in.
	Create(ctx context.Context, u domain.User) (domain.User, error)
	// GetByEmail returns the user with the given email, or nil when missing.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByID returns the user with the given id, or nil when missing.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
