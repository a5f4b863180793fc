package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/journal"
	"github.com/casabooks/casabooks/internal/registry"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settlement
type Repository interface {
	// Begin opens a transaction holding the party's advisory lock, so no
	// concurrent poster or matcher can move the same subledger underneath us.
	Begin(ctx context.Context, party registry.PartyRef) (Tx, error)
	// LineParty resolves which party subledger a line belongs to.
	// Fails with ErrLineNotFound or ErrInvalidMatch for non-party lines.
	LineParty(ctx context.Context, lineID uuid.UUID) (registry.PartyRef, error)
}

type Tx interface {
	// OpenLines returns every line of the party, oldest first, line ID
	// ascending on equal timestamps, each with its already-matched total.
	OpenLines(ctx context.Context) ([]*OpenLine, error)
	// GetOpenLines returns the subset of the party's lines with the given IDs.
	GetOpenLines(ctx context.Context, ids []uuid.UUID) ([]*OpenLine, error)
	CreateLinks(ctx context.Context, links []*Link) error
	Commit() error
	Rollback() error
}

// Service reconciles a party's open debit lines against its open credit
// lines. Auto mode walks both sides oldest-open-first; manual mode links an
// explicit credit line against chosen debit lines. Both run through the same
// matching primitive, so the conservation invariant lives in one place.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Settle runs a FIFO reconciliation pass over the party's subledger and
// returns the links it created. Lines with nothing open are skipped; a party
// with only one side open yields no links, which just means "not collected
// yet". Repeated calls with no new postings in between are no-ops.
func (s *Service) Settle(ctx context.Context, partyType registry.PartyType, clientID int64) ([]*Link, error) {
	party := registry.PartyRef{Type: partyType, ClientID: clientID}
	if !party.Valid() {
		return nil, fmt.Errorf("%w: party %s/%d", ErrInvalidMatch, partyType, clientID)
	}

	tx, err := s.repo.Begin(ctx, party)
	if err != nil {
		return nil, fmt.Errorf("begin settle: %w", err)
	}
	defer tx.Rollback()

	lines, err := tx.OpenLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading open lines: %w", err)
	}

	var debits, credits []*OpenLine

	for _, l := range lines {
		if l.Open() <= 0 {
			continue
		}

		if l.Side == journal.SideDebit {
			debits = append(debits, l)
		} else {
			credits = append(credits, l)
		}
	}

	var links []*Link

	for len(debits) > 0 && len(credits) > 0 {
		link, err := matchAmount(debits[0], credits[0])
		if err != nil {
			return nil, err
		}

		links = append(links, link)

		if debits[0].Open() == 0 {
			debits = debits[1:]
		}

		if credits[0].Open() == 0 {
			credits = credits[1:]
		}
	}

	if len(links) == 0 {
		return nil, nil
	}

	if err := tx.CreateLinks(ctx, links); err != nil {
		return nil, fmt.Errorf("creating links: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing settle: %w", err)
	}

	return links, nil
}

// SettleLines links one credit line against the given debit lines, in the
// order given, for manual reconciliation. All lines must belong to the same
// party and carry the expected sides.
func (s *Service) SettleLines(ctx context.Context, creditLineID uuid.UUID, debitLineIDs []uuid.UUID) ([]*Link, error) {
	if len(debitLineIDs) == 0 {
		return nil, fmt.Errorf("%w: no debit lines given", ErrInvalidMatch)
	}

	party, err := s.repo.LineParty(ctx, creditLineID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx, party)
	if err != nil {
		return nil, fmt.Errorf("begin settle: %w", err)
	}
	defer tx.Rollback()

	lines, err := tx.GetOpenLines(ctx, append([]uuid.UUID{creditLineID}, debitLineIDs...))
	if err != nil {
		return nil, fmt.Errorf("loading lines: %w", err)
	}

	byID := make(map[uuid.UUID]*OpenLine, len(lines))
	for _, l := range lines {
		byID[l.ID] = l
	}

	credit, ok := byID[creditLineID]
	if !ok {
		return nil, fmt.Errorf("%w: credit line %s", ErrLineNotFound, creditLineID)
	}

	if credit.Side != journal.SideCredit {
		return nil, fmt.Errorf("%w: line %s is not a credit", ErrInvalidMatch, creditLineID)
	}

	var links []*Link

	for _, id := range debitLineIDs {
		debit, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: debit line %s", ErrLineNotFound, id)
		}

		if debit.Side != journal.SideDebit {
			return nil, fmt.Errorf("%w: line %s is not a debit", ErrInvalidMatch, id)
		}

		if credit.Open() == 0 {
			break
		}

		if debit.Open() == 0 {
			continue
		}

		link, err := matchAmount(debit, credit)
		if err != nil {
			return nil, err
		}

		links = append(links, link)
	}

	if len(links) == 0 {
		return nil, nil
	}

	if err := tx.CreateLinks(ctx, links); err != nil {
		return nil, fmt.Errorf("creating links: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing settle: %w", err)
	}

	return links, nil
}

// matchAmount links as much as both lines still have open and bumps their
// matched counters. The sum matched against a line can never exceed the
// line's own amount.
func matchAmount(debit, credit *OpenLine) (*Link, error) {
	amount := min(debit.Open(), credit.Open())
	if amount <= 0 {
		return nil, fmt.Errorf("%w: debit %s open %d, credit %s open %d",
			ErrOverSettled, debit.ID, debit.Open(), credit.ID, credit.Open())
	}

	debit.Matched += amount
	credit.Matched += amount

	return &Link{
		DebitLineID:  debit.ID,
		CreditLineID: credit.ID,
		Amount:       amount,
	}, nil
}
