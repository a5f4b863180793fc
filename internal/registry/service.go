package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=registry
type Repository interface {
	GetGLAccountByCode(ctx context.Context, code string) (*GLAccount, error)
	UpsertGLAccount(ctx context.Context, acct *GLAccount) error
	SetGLAccountActive(ctx context.Context, code string, active bool) error

	ListBankAccounts(ctx context.Context, accountType BankAccountType) ([]*BankAccount, error)
	UpsertBankAccount(ctx context.Context, acct *BankAccount) error

	ClientExists(ctx context.Context, clientID int64) (bool, error)
}

// Service resolves and maintains the three account kinds the ledger can
// address. The poster and matcher only ever see the opaque IDs it hands out,
// so the chart of accounts stays swappable.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ResolveGLAccount maps a chart code to its account ID.
// Inactive accounts resolve the same as missing ones.
func (s *Service) ResolveGLAccount(ctx context.Context, code string) (uuid.UUID, error) {
	acct, err := s.GetGLAccount(ctx, code)
	if err != nil {
		return uuid.Nil, err
	}

	return acct.ID, nil
}

// GetGLAccount returns the full active account row for a chart code.
func (s *Service) GetGLAccount(ctx context.Context, code string) (*GLAccount, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty GL code", ErrInvalidKey)
	}

	acct, err := s.repo.GetGLAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if !acct.IsActive {
		return nil, fmt.Errorf("%w: GL account %q is inactive", ErrNotFound, code)
	}

	return acct, nil
}

// ResolveBankAccount maps (type, optional name) to a bank account ID.
// With several active accounts of the same type, a name is required.
func (s *Service) ResolveBankAccount(ctx context.Context, accountType BankAccountType, name string) (uuid.UUID, error) {
	acct, err := s.GetBankAccount(ctx, accountType, name)
	if err != nil {
		return uuid.Nil, err
	}

	return acct.ID, nil
}

// GetBankAccount returns the full active bank account row for (type, optional name).
func (s *Service) GetBankAccount(ctx context.Context, accountType BankAccountType, name string) (*BankAccount, error) {
	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: bank account type %q", ErrInvalidKey, accountType)
	}

	accts, err := s.repo.ListBankAccounts(ctx, accountType)
	if err != nil {
		return nil, err
	}

	if name != "" {
		for _, a := range accts {
			if a.Name == name {
				return a, nil
			}
		}

		return nil, fmt.Errorf("%w: no active %s account named %q", ErrNotFound, accountType, name)
	}

	switch len(accts) {
	case 0:
		return nil, fmt.Errorf("%w: no active %s account", ErrNotFound, accountType)
	case 1:
		return accts[0], nil
	default:
		return nil, fmt.Errorf("%w: %d active %s accounts, name required", ErrAmbiguous, len(accts), accountType)
	}
}

// ResolveParty validates that the referenced client exists. It never creates
// anything; a party has no ledger presence until a line addresses it.
func (s *Service) ResolveParty(ctx context.Context, partyType PartyType, clientID int64) (PartyRef, error) {
	ref := PartyRef{Type: partyType, ClientID: clientID}
	if !ref.Valid() {
		return PartyRef{}, fmt.Errorf("%w: party %s/%d", ErrInvalidKey, partyType, clientID)
	}

	exists, err := s.repo.ClientExists(ctx, clientID)
	if err != nil {
		return PartyRef{}, err
	}

	if !exists {
		return PartyRef{}, fmt.Errorf("%w: client %d", ErrNotFound, clientID)
	}

	return ref, nil
}

// UpsertGLAccount creates or updates a chart account keyed by code.
// Setup-time operation, not part of the posting hot path.
func (s *Service) UpsertGLAccount(ctx context.Context, code, name string, accountType AccountType) (*GLAccount, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty GL code", ErrInvalidKey)
	}

	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: account type %q", ErrInvalidKey, accountType)
	}

	acct := &GLAccount{
		Code:     code,
		Name:     name,
		Type:     accountType,
		IsActive: true,
	}
	if err := s.repo.UpsertGLAccount(ctx, acct); err != nil {
		return nil, err
	}

	return acct, nil
}

// UpsertBankAccount creates or updates a bank account keyed by (name, type).
func (s *Service) UpsertBankAccount(ctx context.Context, name string, accountType BankAccountType, openingBalance int64) (*BankAccount, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty bank account name", ErrInvalidKey)
	}

	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: bank account type %q", ErrInvalidKey, accountType)
	}

	acct := &BankAccount{
		Name:           name,
		Type:           accountType,
		OpeningBalance: openingBalance,
		IsActive:       true,
	}
	if err := s.repo.UpsertBankAccount(ctx, acct); err != nil {
		return nil, err
	}

	return acct, nil
}

// DeactivateGLAccount soft-deactivates a chart account. Accounts referenced
// by journal lines are never deleted; this is the only retirement path.
func (s *Service) DeactivateGLAccount(ctx context.Context, code string) error {
	if code == "" {
		return fmt.Errorf("%w: empty GL code", ErrInvalidKey)
	}

	return s.repo.SetGLAccountActive(ctx, code, false)
}
