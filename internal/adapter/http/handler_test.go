package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
	"github.com/sestevao/marketing-analytics/internal/core/port"
	"github.com/sestevao/marketing-analytics/internal/metrics"
)

// promauto registers on the default registry, so the metrics instance is
// shared across tests.
var testMetrics = metrics.New()

type fakeAuth struct{}

func (fakeAuth) Register(_ context.Context, name, email, _ string) (domain.User, string, error) {
	if name == "" {
		return domain.User{}, "", fmt.Errorf("%w: name is required", port.ErrValidation)
	}
	return domain.User{ID: 7, Name: name, Email: email}, "issued-token", nil
}

func (fakeAuth) Login(_ context.Context, email, password string) (domain.User, string, error) {
	if email != "admin@example.com" || password != "password" {
		return domain.User{}, "", port.ErrInvalidCredentials
	}
	return domain.User{ID: 7, Email: email}, "issued-token", nil
}

func (fakeAuth) UserID(token string) (int64, error) {
	if token != "issued-token" {
		return 0, fmt.Errorf("invalid token")
	}
	return 7, nil
}

type fakeAccounts struct{}

func (fakeAccounts) CreateAccount(_ context.Context, userID int64, req port.CreateAccountReq) (domain.AdAccount, error) {
	if !req.Platform.Valid() {
		return domain.AdAccount{}, fmt.Errorf("%w: bad platform", port.ErrValidation)
	}
	return domain.AdAccount{ID: 1, UserID: userID, Name: req.Name, Platform: req.Platform}, nil
}

func (fakeAccounts) DeleteAccount(_ context.Context, _, accountID int64) error {
	switch accountID {
	case 1:
		return nil
	case 2:
		return port.ErrForbidden
	}
	return port.ErrNotFound
}

func (fakeAccounts) ListAccounts(context.Context, int64) ([]domain.AdAccount, error) {
	return []domain.AdAccount{{ID: 1, UserID: 7, Name: "A", Platform: domain.PlatformGoogle}}, nil
}

func (fakeAccounts) AccountAnalytics(_ context.Context, _, accountID int64, _, _ time.Time) (*domain.Report, error) {
	if accountID != 1 {
		return nil, port.ErrNotFound
	}
	return &domain.Report{Platform: "Google Ads", DailyData: []domain.DailyMetric{}, LeadsList: []domain.Lead{}}, nil
}

func (fakeAccounts) Dashboard(_ context.Context, userID int64, page int) (*port.DashboardResp, error) {
	return &port.DashboardResp{
		Accounts: []domain.AdAccount{{ID: 1, UserID: userID, Name: "A", Platform: domain.PlatformGoogle}},
		RecentLeads: domain.PagedLeads{
			Items:   []domain.Lead{},
			Total:   0,
			Page:    page,
			PerPage: port.DashboardPerPage,
		},
	}, nil
}

func newTestHandler() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(fakeAccounts{}, fakeAuth{}, testMetrics, logger).Router()
}

func doRequest(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	h := newTestHandler()

	for _, path := range []string{"/api/v1/dashboard", "/api/v1/ad-accounts"} {
		rec := doRequest(t, h, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := doRequest(t, h, http.MethodGet, "/api/v1/dashboard", "wrong", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginAndDashboard(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"admin@example.com","password":"password"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.Equal(t, "issued-token", login.Token)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/dashboard?page=2", login.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp port.DashboardResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Accounts, 1)
	require.Equal(t, 2, resp.RecentLeads.Page)
}

func TestLoginRejected(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(t, h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"admin@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAccountStatusCodes(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(t, h, http.MethodPost, "/api/v1/ad-accounts", "issued-token", `{"name":"A","platform":"google"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/ad-accounts", "issued-token", `{"name":"A","platform":"myspace"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/ad-accounts", "issued-token", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAccountStatusCodes(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(t, h, http.MethodDelete, "/api/v1/ad-accounts/1", "issued-token", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/v1/ad-accounts/2", "issued-token", "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/v1/ad-accounts/3", "issued-token", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/v1/ad-accounts/abc", "issued-token", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountAnalyticsEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(t, h, http.MethodGet, "/api/v1/ad-accounts/1/analytics", "issued-token", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rep domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	require.Equal(t, "Google Ads", rep.Platform)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/ad-accounts/9/analytics", "issued-token", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/ad-accounts/1/analytics?from=garbage", "issued-token", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(t, h, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
