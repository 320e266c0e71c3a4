package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sestevao/marketing-analytics/internal/core/domain"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

type credentialsReq struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResp struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// handleRegister creates a new user from a JSON body of name, email and
// password and returns the user with a signed token.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	user, token, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, authResp{Token: token, User: user})
}

// handleLogin verifies email/password credentials and returns a fresh
// token.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, authResp{Token: token, User: user})
}

// authenticate validates the Authorization bearer token and stores the
// authenticated user id on the request context. Requests without a valid
// token get HTTP 401.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		userID, err := h.auth.UserID(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// currentUserID returns the authenticated user id placed on the context by
// the authenticate middleware.
func currentUserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}
