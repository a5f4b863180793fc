package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/casabooks/casabooks/internal/export"
	"github.com/casabooks/casabooks/internal/registry"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/statement/{partyType}/{clientID}", h.statement)
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	partyType := registry.PartyType(chi.URLParam(r, "partyType"))

	clientID, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	// Statements are small; buffering keeps the error path clean.
	var buf bytes.Buffer

	if err := h.svc.WriteStatement(r.Context(), &buf, partyType, clientID); err != nil {
		if errors.Is(err, registry.ErrInvalidKey) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	filename := fmt.Sprintf("statement_%s_%d_%s.csv", partyType, clientID, time.Now().Format("20060102"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("writing statement response", "party_type", partyType, "client_id", clientID, "error", err)
	}
}
