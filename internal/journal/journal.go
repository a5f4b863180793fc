package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/registry"
)

var (
	ErrNotFound = errors.New("journal entry not found")
	// ErrUnbalanced means the proposed lines do not sum to zero. The entry is
	// rejected before any write; it is never auto-corrected.
	ErrUnbalanced = errors.New("entry debits and credits do not balance")
	// ErrInvalidTarget means a line carries zero or more than one target
	// selector, or an unresolved one.
	ErrInvalidTarget = errors.New("invalid line target")
	ErrInvalidAmount = errors.New("line amount must be positive")
	ErrTooFewLines   = errors.New("entry needs at least two lines")
)

// Side says which column of the ledger a line lands in.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

func (s Side) Valid() bool {
	return s == SideDebit || s == SideCredit
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideDebit {
		return SideCredit
	}

	return SideDebit
}

// TargetKind discriminates the three account kinds a line can address.
type TargetKind string

const (
	TargetGL    TargetKind = "gl"
	TargetBank  TargetKind = "bank"
	TargetParty TargetKind = "party"
)

// Target is a tagged union over the three account kinds. Exactly one selector
// is set, determined by Kind. Use the constructors; a zero Target is invalid.
type Target struct {
	Kind          TargetKind
	GLAccountID   uuid.UUID
	BankAccountID uuid.UUID
	Party         registry.PartyRef
}

func GLTarget(id uuid.UUID) Target {
	return Target{Kind: TargetGL, GLAccountID: id}
}

func BankTarget(id uuid.UUID) Target {
	return Target{Kind: TargetBank, BankAccountID: id}
}

func PartyTarget(partyType registry.PartyType, clientID int64) Target {
	return Target{Kind: TargetParty, Party: registry.PartyRef{Type: partyType, ClientID: clientID}}
}

// Validate checks that exactly the selector named by Kind is set.
func (t Target) Validate() error {
	switch t.Kind {
	case TargetGL:
		if t.GLAccountID == uuid.Nil {
			return fmt.Errorf("%w: missing GL account id", ErrInvalidTarget)
		}

		if t.BankAccountID != uuid.Nil || t.Party != (registry.PartyRef{}) {
			return fmt.Errorf("%w: more than one selector set", ErrInvalidTarget)
		}
	case TargetBank:
		if t.BankAccountID == uuid.Nil {
			return fmt.Errorf("%w: missing bank account id", ErrInvalidTarget)
		}

		if t.GLAccountID != uuid.Nil || t.Party != (registry.PartyRef{}) {
			return fmt.Errorf("%w: more than one selector set", ErrInvalidTarget)
		}
	case TargetParty:
		if !t.Party.Valid() {
			return fmt.Errorf("%w: party %s/%d", ErrInvalidTarget, t.Party.Type, t.Party.ClientID)
		}

		if t.GLAccountID != uuid.Nil || t.BankAccountID != uuid.Nil {
			return fmt.Errorf("%w: more than one selector set", ErrInvalidTarget)
		}
	default:
		return fmt.Errorf("%w: unknown target kind %q", ErrInvalidTarget, t.Kind)
	}

	return nil
}

// Entry is one atomic, balanced accounting transaction. Immutable once
// posted; corrections are new reversing entries.
type Entry struct {
	ID          uuid.UUID
	Description string
	CreatedAt   time.Time
	Lines       []*Line
}

// Line is one debit or credit component of an entry. Amount is in minor
// units and always positive; Side carries the sign. The rent agreement,
// property and unit tags are reporting context only and play no part in the
// balance invariant.
type Line struct {
	ID              uuid.UUID
	EntryID         uuid.UUID
	Side            Side
	Amount          int64
	Target          Target
	RentAgreementID *int64
	PropertyID      *int64
	UnitID          *int64
	Memo            string
	CreatedAt       time.Time
}
