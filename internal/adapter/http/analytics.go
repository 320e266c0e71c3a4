package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// handleAccountAnalytics returns the analytics record for one of the
// authenticated user's accounts. It accepts optional `from` and `to`
// (RFC3339 timestamps) query parameters; without them the period defaults
// to the trailing 30 days. The generators currently ignore the period, but
// the parameters are parsed and validated so the API contract holds when
// real integrations land. Invalid parameters result in HTTP 400.
func (h *Handler) handleAccountAnalytics(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	var (
		q        = r.URL.Query()
		from, to time.Time
	)
	if s := q.Get("from"); s != "" {
		if from, err = time.Parse(time.RFC3339, s); err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		from = time.Now().AddDate(0, 0, -30)
	}
	if s := q.Get("to"); s != "" {
		if to, err = time.Parse(time.RFC3339, s); err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		to = time.Now()
	}

	rep, err := h.accounts.AccountAnalytics(r.Context(), currentUserID(r.Context()), id, from, to)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rep)
}

// handleDashboard returns the dashboard view model: the user's accounts
// and one page of recent leads aggregated across all of them. The `page`
// query parameter is 1-based and defaults to 1.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	page := 1
	if s := r.URL.Query().Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		page = n
	}

	resp, err := h.accounts.Dashboard(r.Context(), currentUserID(r.Context()), page)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
