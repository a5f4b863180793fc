package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/registry"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report

// Accounts is the slice of the registry the reader needs: full rows, because
// balances depend on account type and opening balance. Satisfied by
// *registry.Service.
type Accounts interface {
	GetGLAccount(ctx context.Context, code string) (*registry.GLAccount, error)
	GetBankAccount(ctx context.Context, accountType registry.BankAccountType, name string) (*registry.BankAccount, error)
}

// Sums are raw per-side totals over a set of lines.
type Sums struct {
	Debits  int64
	Credits int64
}

type Repository interface {
	GLSums(ctx context.Context, glAccountID uuid.UUID, asOf *time.Time) (Sums, error)
	BankSums(ctx context.Context, bankAccountID uuid.UUID, asOf *time.Time) (Sums, error)
	// PartyOpenSums totals the unmatched remainder of the party's lines,
	// per side.
	PartyOpenSums(ctx context.Context, party registry.PartyRef) (Sums, error)
	TrialBalance(ctx context.Context, asOf *time.Time) ([]TrialRow, error)
}

// TrialRow is one GL account's raw totals in a trial balance.
type TrialRow struct {
	Code    string
	Name    string
	Type    registry.AccountType
	Debits  int64
	Credits int64
}

// Service derives balances straight from persisted lines on every call.
// Nothing is cached: a balance read after a post always sees the post.
type Service struct {
	accounts Accounts
	repo     Repository
}

func NewService(accounts Accounts, repo Repository) *Service {
	return &Service{accounts: accounts, repo: repo}
}

// GLBalance returns the economically meaningful balance of a GL account:
// asset and expense accounts read debit-normal, liability, equity and
// revenue read credit-normal.
func (s *Service) GLBalance(ctx context.Context, code string, asOf *time.Time) (int64, error) {
	acct, err := s.accounts.GetGLAccount(ctx, code)
	if err != nil {
		return 0, err
	}

	sums, err := s.repo.GLSums(ctx, acct.ID, asOf)
	if err != nil {
		return 0, err
	}

	raw := sums.Debits - sums.Credits
	if acct.Type.DebitNormal() {
		return raw, nil
	}

	return -raw, nil
}

// BankBalance returns opening balance plus debits minus credits. Bank
// accounts are cash positions, always debit-normal.
func (s *Service) BankBalance(ctx context.Context, accountType registry.BankAccountType, name string, asOf *time.Time) (int64, error) {
	acct, err := s.accounts.GetBankAccount(ctx, accountType, name)
	if err != nil {
		return 0, err
	}

	sums, err := s.repo.BankSums(ctx, acct.ID, asOf)
	if err != nil {
		return 0, err
	}

	return acct.OpeningBalance + sums.Debits - sums.Credits, nil
}

// PartyOpenBalance returns the party's outstanding position: the sum of
// unmatched line amounts, positive when the party owes the company. This is
// exactly the quantity a settlement pass drains toward zero.
func (s *Service) PartyOpenBalance(ctx context.Context, partyType registry.PartyType, clientID int64) (int64, error) {
	party := registry.PartyRef{Type: partyType, ClientID: clientID}
	if !party.Valid() {
		return 0, registry.ErrInvalidKey
	}

	sums, err := s.repo.PartyOpenSums(ctx, party)
	if err != nil {
		return 0, err
	}

	return sums.Debits - sums.Credits, nil
}

// TrialBalance returns raw per-account totals, the administrator's check
// that the books still cancel out overall.
func (s *Service) TrialBalance(ctx context.Context, asOf *time.Time) ([]TrialRow, error) {
	return s.repo.TrialBalance(ctx, asOf)
}
