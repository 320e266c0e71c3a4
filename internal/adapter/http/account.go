package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sestevao/marketing-analytics/internal/core/port"
)

// handleCreateAccount registers a new ad account for the authenticated
// user. The body carries name, platform and the optional external
// account_id and access_token. Validation failures produce HTTP 400.
func (h *Handler) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req port.CreateAccountReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	acc, err := h.accounts.CreateAccount(r.Context(), currentUserID(r.Context()), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, acc)
}

// handleDeleteAccount removes one of the authenticated user's accounts.
// Accounts owned by other users produce HTTP 403.
func (h *Handler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}
	if err = h.accounts.DeleteAccount(r.Context(), currentUserID(r.Context()), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListAccounts returns the authenticated user's accounts, newest
// first.
func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.ListAccounts(r.Context(), currentUserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, accounts)
}
