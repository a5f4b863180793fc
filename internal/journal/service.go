package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/registry"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=journal
type Repository interface {
	// CreateEntry persists an entry and all of its lines as one atomic unit.
	// A failure leaves zero rows behind.
	CreateEntry(ctx context.Context, entry *Entry) error
	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
	ListLines(ctx context.Context, filter LineFilter) ([]*Line, error)
}

type LineFilter struct {
	Party           *registry.PartyRef
	GLAccountID     *uuid.UUID
	BankAccountID   *uuid.UUID
	RentAgreementID *int64
}

// Service is the journal entry poster. All validation happens before the
// repository is touched, so a rejected entry never leaves partial state.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LineInput is one proposed line of an entry. Targets must already be
// resolved through the account registry.
type LineInput struct {
	Side            Side
	Amount          int64
	Target          Target
	RentAgreementID *int64
	PropertyID      *int64
	UnitID          *int64
	Memo            string
}

// Post validates and commits a balanced set of lines as one entry.
// Debits and credits must cancel exactly in minor units.
func (s *Service) Post(ctx context.Context, description string, inputs []LineInput) (*Entry, error) {
	if len(inputs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewLines, len(inputs))
	}

	var balance int64

	for i, in := range inputs {
		if !in.Side.Valid() {
			return nil, fmt.Errorf("line %d: %w: side %q", i, ErrInvalidTarget, in.Side)
		}

		if in.Amount <= 0 {
			return nil, fmt.Errorf("line %d: %w: got %d", i, ErrInvalidAmount, in.Amount)
		}

		if err := in.Target.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}

		if in.Side == SideDebit {
			balance += in.Amount
		} else {
			balance -= in.Amount
		}
	}

	if balance != 0 {
		return nil, fmt.Errorf("%w: debits minus credits is %d", ErrUnbalanced, balance)
	}

	entry := &Entry{
		Description: description,
		Lines:       make([]*Line, len(inputs)),
	}
	for i, in := range inputs {
		entry.Lines[i] = &Line{
			Side:            in.Side,
			Amount:          in.Amount,
			Target:          in.Target,
			RentAgreementID: in.RentAgreementID,
			PropertyID:      in.PropertyID,
			UnitID:          in.UnitID,
			Memo:            in.Memo,
		}
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Reverse posts a mirror image of an existing entry: same lines, sides
// flipped. History is never edited; this is the only correction mechanism.
func (s *Service) Reverse(ctx context.Context, entryID uuid.UUID, description string) (*Entry, error) {
	original, err := s.repo.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if description == "" {
		description = "Reversal of: " + original.Description
	}

	inputs := make([]LineInput, len(original.Lines))
	for i, l := range original.Lines {
		inputs[i] = LineInput{
			Side:            l.Side.Opposite(),
			Amount:          l.Amount,
			Target:          l.Target,
			RentAgreementID: l.RentAgreementID,
			PropertyID:      l.PropertyID,
			UnitID:          l.UnitID,
			Memo:            l.Memo,
		}
	}

	return s.Post(ctx, description, inputs)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.repo.GetEntry(ctx, id)
}

func (s *Service) Lines(ctx context.Context, filter LineFilter) ([]*Line, error) {
	return s.repo.ListLines(ctx, filter)
}
