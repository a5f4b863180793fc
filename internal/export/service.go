package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/casabooks/casabooks/internal/journal"
	"github.com/casabooks/casabooks/internal/registry"
)

//go:generate mockgen -source=service.go -destination=lines_mock.go -package=export

// Lines is the slice of the journal the exporter needs. Satisfied by
// *journal.Service.
type Lines interface {
	Lines(ctx context.Context, filter journal.LineFilter) ([]*journal.Line, error)
}

// Service renders party statements as CSV for the back office. Amounts stay
// in minor units; presentation formatting is the consumer's problem.
type Service struct {
	lines Lines
}

func NewService(lines Lines) *Service {
	return &Service{lines: lines}
}

var statementHeader = []string{"date", "line_id", "side", "amount", "running_balance", "rent_agreement_id", "memo"}

// WriteStatement writes the party's full line history to w as CSV, oldest
// first, with a running balance where debits increase what the party owes.
func (s *Service) WriteStatement(ctx context.Context, w io.Writer, partyType registry.PartyType, clientID int64) error {
	party := registry.PartyRef{Type: partyType, ClientID: clientID}
	if !party.Valid() {
		return fmt.Errorf("%w: party %s/%d", registry.ErrInvalidKey, partyType, clientID)
	}

	lines, err := s.lines.Lines(ctx, journal.LineFilter{Party: &party})
	if err != nil {
		return fmt.Errorf("listing lines: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(statementHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var balance int64

	for _, l := range lines {
		if l.Side == journal.SideDebit {
			balance += l.Amount
		} else {
			balance -= l.Amount
		}

		agreement := ""
		if l.RentAgreementID != nil {
			agreement = strconv.FormatInt(*l.RentAgreementID, 10)
		}

		rec := []string{
			l.CreatedAt.Format("2006-01-02"),
			l.ID.String(),
			string(l.Side),
			strconv.FormatInt(l.Amount, 10),
			strconv.FormatInt(balance, 10),
			agreement,
			l.Memo,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing line %s: %w", l.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
