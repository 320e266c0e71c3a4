package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
	"github.com/sestevao/marketing-analytics/internal/core/port"
)

// AuthUseCase implements registration and login. Passwords are hashed with
// bcrypt; sessions are stateless HS256 JWTs carrying the user id as
// subject.
type AuthUseCase struct {
	users    port.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthUseCase creates an auth usecase signing tokens with secret that
// expire after ttl.
func NewAuthUseCase(users port.UserRepository, secret string, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{users: users, secret: []byte(secret), tokenTTL: ttl}
}

// Register creates a new user and returns it together with a signed token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case name == "":
		return domain.User{}, "", fmt.Errorf("%w: name is required", port.ErrValidation)
	case email == "" || !strings.Contains(email, "@"):
		return domain.User{}, "", fmt.Errorf("%w: a valid email is required", port.ErrValidation)
	case len(password) < 8:
		return domain.User{}, "", fmt.Errorf("%w: password must be at least 8 characters", port.ErrValidation)
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, "", err
	}
	if existing != nil {
		return domain.User{}, "", port.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := u.users.Create(ctx, domain.User{Name: name, Email: email, PasswordHash: string(hash)})
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := u.sign(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and returns the user with a fresh token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return domain.User{}, "", err
	}
	if user == nil {
		return domain.User{}, "", port.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, "", port.ErrInvalidCredentials
	}

	token, err := u.sign(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return *user, token, nil
}

// UserID validates a token and returns the user id it was issued for.
func (u *AuthUseCase) UserID(token string) (int64, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return u.secret, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return 0, errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("token has no subject")
	}
	return strconv.ParseInt(sub, 10, 64)
}

func (u *AuthUseCase) sign(userID int64) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(u.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}
