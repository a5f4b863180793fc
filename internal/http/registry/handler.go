package registry

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/registry"
)

type Handler struct {
	svc *registry.Service
}

func NewHandler(svc *registry.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Put("/gl-accounts", h.upsertGLAccount)
	r.Get("/gl-accounts/{code}", h.getGLAccount)
	r.Delete("/gl-accounts/{code}", h.deactivateGLAccount)
	r.Put("/bank-accounts", h.upsertBankAccount)
	r.Get("/bank-accounts/resolve", h.resolveBankAccount)
	r.Get("/parties/{partyType}/{clientID}", h.resolveParty)
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

type glAccountResponse struct {
	ID       uuid.UUID            `json:"id"`
	Code     string               `json:"code"`
	Name     string               `json:"name"`
	Type     registry.AccountType `json:"type"`
	IsActive bool                 `json:"is_active"`
}

func toGLResponse(a *registry.GLAccount) glAccountResponse {
	return glAccountResponse{
		ID:       a.ID,
		Code:     a.Code,
		Name:     a.Name,
		Type:     a.Type,
		IsActive: a.IsActive,
	}
}

type upsertGLAccountRequest struct {
	Code string               `json:"code"`
	Name string               `json:"name"`
	Type registry.AccountType `json:"type"`
}

func (h *Handler) upsertGLAccount(w http.ResponseWriter, r *http.Request) {
	var req upsertGLAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acct, err := h.svc.UpsertGLAccount(r.Context(), req.Code, req.Name, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGLResponse(acct))
}

func (h *Handler) getGLAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.svc.GetGLAccount(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGLResponse(acct))
}

func (h *Handler) deactivateGLAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeactivateGLAccount(r.Context(), chi.URLParam(r, "code")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type bankAccountResponse struct {
	ID             uuid.UUID                `json:"id"`
	Name           string                   `json:"name"`
	Type           registry.BankAccountType `json:"type"`
	OpeningBalance int64                    `json:"opening_balance"`
	IsActive       bool                     `json:"is_active"`
}

func toBankResponse(a *registry.BankAccount) bankAccountResponse {
	return bankAccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Type:           a.Type,
		OpeningBalance: a.OpeningBalance,
		IsActive:       a.IsActive,
	}
}

type upsertBankAccountRequest struct {
	Name           string                   `json:"name"`
	Type           registry.BankAccountType `json:"type"`
	OpeningBalance int64                    `json:"opening_balance"`
}

func (h *Handler) upsertBankAccount(w http.ResponseWriter, r *http.Request) {
	var req upsertBankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acct, err := h.svc.UpsertBankAccount(r.Context(), req.Name, req.Type, req.OpeningBalance)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBankResponse(acct))
}

func (h *Handler) resolveBankAccount(w http.ResponseWriter, r *http.Request) {
	accountType := registry.BankAccountType(r.URL.Query().Get("type"))
	name := r.URL.Query().Get("name")

	acct, err := h.svc.GetBankAccount(r.Context(), accountType, name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBankResponse(acct))
}

type partyResponse struct {
	Type     registry.PartyType `json:"type"`
	ClientID int64              `json:"client_id"`
}

func (h *Handler) resolveParty(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	ref, err := h.svc.ResolveParty(r.Context(), registry.PartyType(chi.URLParam(r, "partyType")), clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, partyResponse{Type: ref.Type, ClientID: ref.ClientID})
}
