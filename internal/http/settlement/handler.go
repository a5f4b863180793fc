package settlement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/registry"
	"github.com/casabooks/casabooks/internal/settlement"
)

type Handler struct {
	svc *settlement.Service
}

func NewHandler(svc *settlement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{partyType}/{clientID}", h.settle)
	r.Post("/manual", h.settleLines)
}

type linkResponse struct {
	ID           uuid.UUID `json:"id"`
	DebitLineID  uuid.UUID `json:"debit_line_id"`
	CreditLineID uuid.UUID `json:"credit_line_id"`
	Amount       int64     `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

type settleResponse struct {
	Links []linkResponse `json:"links"`
}

func toResponse(links []*settlement.Link) settleResponse {
	resp := settleResponse{Links: make([]linkResponse, 0, len(links))}
	for _, l := range links {
		resp.Links = append(resp.Links, linkResponse{
			ID:           l.ID,
			DebitLineID:  l.DebitLineID,
			CreditLineID: l.CreditLineID,
			Amount:       l.Amount,
			CreatedAt:    l.CreatedAt,
		})
	}

	return resp
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settlement.ErrLineNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, settlement.ErrInvalidMatch), errors.Is(err, settlement.ErrOverSettled):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
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

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	links, err := h.svc.Settle(r.Context(), registry.PartyType(chi.URLParam(r, "partyType")), clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(links))
}

type settleLinesRequest struct {
	CreditLineID uuid.UUID   `json:"credit_line_id"`
	DebitLineIDs []uuid.UUID `json:"debit_line_ids"`
}

func (h *Handler) settleLines(w http.ResponseWriter, r *http.Request) {
	var req settleLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	links, err := h.svc.SettleLines(r.Context(), req.CreditLineID, req.DebitLineIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(links))
}
