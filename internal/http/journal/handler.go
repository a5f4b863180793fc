package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/journal"
	"github.com/casabooks/casabooks/internal/registry"
)

type Handler struct {
	svc      *journal.Service
	accounts *registry.Service
}

func NewHandler(svc *journal.Service, accounts *registry.Service) *Handler {
	return &Handler{svc: svc, accounts: accounts}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.post)
	r.Get("/{id}", h.get)
	r.Post("/{id}/reverse", h.reverse)
	r.Get("/lines", h.lines)
}

// targetDTO addresses a line by natural key; the handler resolves it through
// the registry before the poster sees it.
type targetDTO struct {
	Kind          journal.TargetKind        `json:"kind"`
	GLCode        string                    `json:"gl_code,omitempty"`
	BankType      registry.BankAccountType  `json:"bank_type,omitempty"`
	BankName      string                    `json:"bank_name,omitempty"`
	PartyType     registry.PartyType        `json:"party_type,omitempty"`
	PartyClientID int64                     `json:"party_client_id,omitempty"`
}

type lineDTO struct {
	Side            journal.Side `json:"side"`
	Amount          int64        `json:"amount"`
	Target          targetDTO    `json:"target"`
	RentAgreementID *int64       `json:"rent_agreement_id,omitempty"`
	PropertyID      *int64       `json:"property_id,omitempty"`
	UnitID          *int64       `json:"unit_id,omitempty"`
	Memo            string       `json:"memo,omitempty"`
}

type postEntryRequest struct {
	Description string    `json:"description"`
	Lines       []lineDTO `json:"lines"`
}

type lineResponse struct {
	ID              uuid.UUID          `json:"id"`
	Side            journal.Side       `json:"side"`
	Amount          int64              `json:"amount"`
	TargetKind      journal.TargetKind `json:"target_kind"`
	GLAccountID     *uuid.UUID         `json:"gl_account_id,omitempty"`
	BankAccountID   *uuid.UUID         `json:"bank_account_id,omitempty"`
	PartyType       registry.PartyType `json:"party_type,omitempty"`
	PartyClientID   int64              `json:"party_client_id,omitempty"`
	RentAgreementID *int64             `json:"rent_agreement_id,omitempty"`
	Memo            string             `json:"memo,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

type entryResponse struct {
	ID          uuid.UUID      `json:"id"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	Lines       []lineResponse `json:"lines"`
}

func toLineResponse(l *journal.Line) lineResponse {
	resp := lineResponse{
		ID:              l.ID,
		Side:            l.Side,
		Amount:          l.Amount,
		TargetKind:      l.Target.Kind,
		RentAgreementID: l.RentAgreementID,
		Memo:            l.Memo,
		CreatedAt:       l.CreatedAt,
	}

	switch l.Target.Kind {
	case journal.TargetGL:
		id := l.Target.GLAccountID
		resp.GLAccountID = &id
	case journal.TargetBank:
		id := l.Target.BankAccountID
		resp.BankAccountID = &id
	case journal.TargetParty:
		resp.PartyType = l.Target.Party.Type
		resp.PartyClientID = l.Target.Party.ClientID
	}

	return resp
}

func toEntryResponse(e *journal.Entry) entryResponse {
	resp := entryResponse{
		ID:          e.ID,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		Lines:       make([]lineResponse, 0, len(e.Lines)),
	}
	for _, l := range e.Lines {
		resp.Lines = append(resp.Lines, toLineResponse(l))
	}

	return resp
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, journal.ErrUnbalanced),
		errors.Is(err, journal.ErrInvalidTarget),
		errors.Is(err, journal.ErrInvalidAmount),
		errors.Is(err, journal.ErrTooFewLines):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, journal.ErrNotFound), errors.Is(err, registry.ErrNotFound):
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

// resolveTarget turns a natural-key target into a resolved one.
func (h *Handler) resolveTarget(r *http.Request, dto targetDTO) (journal.Target, error) {
	switch dto.Kind {
	case journal.TargetGL:
		id, err := h.accounts.ResolveGLAccount(r.Context(), dto.GLCode)
		if err != nil {
			return journal.Target{}, err
		}

		return journal.GLTarget(id), nil
	case journal.TargetBank:
		id, err := h.accounts.ResolveBankAccount(r.Context(), dto.BankType, dto.BankName)
		if err != nil {
			return journal.Target{}, err
		}

		return journal.BankTarget(id), nil
	case journal.TargetParty:
		ref, err := h.accounts.ResolveParty(r.Context(), dto.PartyType, dto.PartyClientID)
		if err != nil {
			return journal.Target{}, err
		}

		return journal.PartyTarget(ref.Type, ref.ClientID), nil
	default:
		return journal.Target{}, fmt.Errorf("%w: unknown target kind %q", journal.ErrInvalidTarget, dto.Kind)
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	var req postEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inputs := make([]journal.LineInput, 0, len(req.Lines))

	for _, l := range req.Lines {
		target, err := h.resolveTarget(r, l.Target)
		if err != nil {
			writeError(w, err)
			return
		}

		inputs = append(inputs, journal.LineInput{
			Side:            l.Side,
			Amount:          l.Amount,
			Target:          target,
			RentAgreementID: l.RentAgreementID,
			PropertyID:      l.PropertyID,
			UnitID:          l.UnitID,
			Memo:            l.Memo,
		})
	}

	entry, err := h.svc.Post(r.Context(), req.Description, inputs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

type reverseRequest struct {
	Description string `json:"description"`
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req reverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Reverse(r.Context(), id, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *Handler) lines(w http.ResponseWriter, r *http.Request) {
	filter := journal.LineFilter{}

	q := r.URL.Query()

	if pt := q.Get("party_type"); pt != "" {
		clientID, err := strconv.ParseInt(q.Get("party_client_id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid party_client_id", http.StatusBadRequest)
			return
		}

		filter.Party = &registry.PartyRef{Type: registry.PartyType(pt), ClientID: clientID}
	}

	if s := q.Get("rent_agreement_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "invalid rent_agreement_id", http.StatusBadRequest)
			return
		}

		filter.RentAgreementID = &id
	}

	lines, err := h.svc.Lines(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]lineResponse, 0, len(lines))
	for _, l := range lines {
		resp = append(resp, toLineResponse(l))
	}

	writeJSON(w, http.StatusOK, resp)
}
