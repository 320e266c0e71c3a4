package db

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
)

// Seed inserts demo data: an administrator user (admin@example.com /
// "password") and five ad accounts with randomised platforms and tokens.
// Re-running it is a no-op thanks to ON CONFLICT guards.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var userID int64
	err = db.QueryRow(ctx, `INSERT INTO users (name, email, password_hash, created_at, updated_at)
VALUES ($1,$2,$3,now(),now())
ON CONFLICT (email) DO UPDATE SET updated_at = now()
RETURNING id`,
		"Administrator", "admin@example.com", string(hash)).Scan(&userID)
	if err != nil {
		return err
	}

	platforms := []domain.Platform{
		domain.PlatformGoogle,
		domain.PlatformFacebook,
		domain.PlatformLinkedIn,
		domain.PlatformOther,
	}
	for i := 0; i < 5; i++ {
		platform := platforms[r.Intn(len(platforms))]
		name := fmt.Sprintf("%s Account %03d", title(string(platform)), r.Intn(1000))
		isActive := r.Intn(100) < 80
		_, err = db.Exec(ctx, `INSERT INTO ad_accounts
(user_id, name, platform, account_id, access_token, refresh_token, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now()) ON CONFLICT DO NOTHING`,
			userID, name, platform, uuid.NewString(), randomToken(r), randomToken(r), isActive)
		if err != nil {
			return err
		}
	}
	return nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// randomToken mimics an opaque OAuth token: 64 hex characters.
func randomToken(r *rand.Rand) string {
	b := make([]byte, 32)
	r.Read(b)
	return hex.EncodeToString(b)
}
