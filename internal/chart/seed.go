package chart

import (
	"context"
	"fmt"

	"github.com/casabooks/casabooks/internal/registry"
)

// Registry is the slice of the account registry seeding needs.
// Satisfied by *registry.Service.
type Registry interface {
	UpsertGLAccount(ctx context.Context, code, name string, accountType registry.AccountType) (*registry.GLAccount, error)
	UpsertBankAccount(ctx context.Context, name string, accountType registry.BankAccountType, openingBalance int64) (*registry.BankAccount, error)
}

// Seed upserts the parsed rows into the registry. Upserts are keyed by
// natural key, so running the same files twice is a no-op.
func Seed(ctx context.Context, reg Registry, glRows []GLRow, bankRows []BankRow) error {
	for _, row := range glRows {
		if _, err := reg.UpsertGLAccount(ctx, row.Code, row.Name, row.Type); err != nil {
			return fmt.Errorf("upserting GL account %q: %w", row.Code, err)
		}
	}

	for _, row := range bankRows {
		if _, err := reg.UpsertBankAccount(ctx, row.Name, row.Type, row.OpeningBalance); err != nil {
			return fmt.Errorf("upserting bank account %q: %w", row.Name, err)
		}
	}

	return nil
}
