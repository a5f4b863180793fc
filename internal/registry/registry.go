package registry

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a natural-key lookup matches no active row.
	ErrNotFound = errors.New("account not found")
	// ErrAmbiguous is returned when a lookup matches more than one active row
	// and the caller gave nothing to disambiguate with.
	ErrAmbiguous = errors.New("ambiguous account reference")
	// ErrInvalidKey is returned when a natural key or enum value is malformed.
	ErrInvalidKey = errors.New("invalid account key")
)

// AccountType classifies GL accounts in the chart of accounts.
type AccountType string

const (
	TypeAsset     AccountType = "asset"
	TypeLiability AccountType = "liability"
	TypeEquity    AccountType = "equity"
	TypeRevenue   AccountType = "revenue"
	TypeExpense   AccountType = "expense"
)

func (t AccountType) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return true
	}

	return false
}

// DebitNormal reports whether accounts of this type grow on the debit side.
func (t AccountType) DebitNormal() bool {
	return t == TypeAsset || t == TypeExpense
}

// GLAccount is one row of the formal chart of accounts.
type GLAccount struct {
	ID        uuid.UUID
	Code      string
	Name      string
	Type      AccountType
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// BankAccountType classifies company cash positions.
type BankAccountType string

const (
	BankChecking  BankAccountType = "checking"
	BankSavings   BankAccountType = "savings"
	BankPettyCash BankAccountType = "petty_cash"
)

func (t BankAccountType) Valid() bool {
	switch t {
	case BankChecking, BankSavings, BankPettyCash:
		return true
	}

	return false
}

// BankAccount is a real cash or bank position the company holds.
// Unique on (Name, Type).
type BankAccount struct {
	ID             uuid.UUID
	Name           string
	Type           BankAccountType
	OpeningBalance int64 // minor units
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// PartyType says which side of a rent agreement a subledger belongs to.
type PartyType string

const (
	PartyOwner  PartyType = "owner"
	PartyRenter PartyType = "renter"
)

func (t PartyType) Valid() bool {
	return t == PartyOwner || t == PartyRenter
}

// PartyRef identifies a party subledger. Parties have no row of their own;
// the pair points at an existing client and the subledger is the set of
// journal lines addressed to it.
type PartyRef struct {
	Type     PartyType
	ClientID int64
}

func (p PartyRef) Valid() bool {
	return p.Type.Valid() && p.ClientID > 0
}
