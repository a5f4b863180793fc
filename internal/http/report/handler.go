package report

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/casabooks/casabooks/internal/registry"
	"github.com/casabooks/casabooks/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/gl/{code}", h.glBalance)
	r.Get("/bank/{type}", h.bankBalance)
	r.Get("/party/{partyType}/{clientID}", h.partyOpenBalance)
	r.Get("/trial", h.trialBalance)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, registry.ErrAmbiguous):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, registry.ErrInvalidKey):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// asOf parses the optional as_of query parameter, date or RFC 3339.
func asOf(r *http.Request) (*time.Time, error) {
	s := r.URL.Query().Get("as_of")
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

func (h *Handler) glBalance(w http.ResponseWriter, r *http.Request) {
	cutoff, err := asOf(r)
	if err != nil {
		http.Error(w, "invalid as_of", http.StatusBadRequest)
		return
	}

	balance, err := h.svc.GLBalance(r.Context(), chi.URLParam(r, "code"), cutoff)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{Balance: balance})
}

func (h *Handler) bankBalance(w http.ResponseWriter, r *http.Request) {
	cutoff, err := asOf(r)
	if err != nil {
		http.Error(w, "invalid as_of", http.StatusBadRequest)
		return
	}

	balance, err := h.svc.BankBalance(
		r.Context(),
		registry.BankAccountType(chi.URLParam(r, "type")),
		r.URL.Query().Get("name"),
		cutoff,
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{Balance: balance})
}

func (h *Handler) partyOpenBalance(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	balance, err := h.svc.PartyOpenBalance(r.Context(), registry.PartyType(chi.URLParam(r, "partyType")), clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{Balance: balance})
}

type trialRowResponse struct {
	Code    string               `json:"code"`
	Name    string               `json:"name"`
	Type    registry.AccountType `json:"type"`
	Debits  int64                `json:"debits"`
	Credits int64                `json:"credits"`
}

func (h *Handler) trialBalance(w http.ResponseWriter, r *http.Request) {
	cutoff, err := asOf(r)
	if err != nil {
		http.Error(w, "invalid as_of", http.StatusBadRequest)
		return
	}

	rows, err := h.svc.TrialBalance(r.Context(), cutoff)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]trialRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, trialRowResponse{
			Code:    row.Code,
			Name:    row.Name,
			Type:    row.Type,
			Debits:  row.Debits,
			Credits: row.Credits,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
