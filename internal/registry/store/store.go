package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/casabooks/casabooks/internal/registry"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetGLAccountByCode(ctx context.Context, code string) (*registry.GLAccount, error) {
	query := `
		SELECT id, code, name, type, is_active, created_at, updated_at
		FROM gl_accounts
		WHERE code = $1
	`

	var acct registry.GLAccount

	var typeStr string

	err := s.db.QueryRowContext(ctx, query, code).Scan(
		&acct.ID, &acct.Code, &acct.Name, &typeStr, &acct.IsActive,
		&acct.CreatedAt, &acct.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: GL account %q", registry.ErrNotFound, code)
		}

		return nil, fmt.Errorf("getting GL account: %w", err)
	}

	acct.Type = registry.AccountType(typeStr)

	return &acct, nil
}

func (s *Store) UpsertGLAccount(ctx context.Context, acct *registry.GLAccount) error {
	query := `
		INSERT INTO gl_accounts (code, name, type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, type = EXCLUDED.type, is_active = EXCLUDED.is_active, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acct.Code,
		acct.Name,
		acct.Type,
		acct.IsActive,
	).Scan(&acct.ID, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting GL account: %w", err)
	}

	return nil
}

func (s *Store) SetGLAccountActive(ctx context.Context, code string, active bool) error {
	query := `
		UPDATE gl_accounts
		SET is_active = $1, updated_at = NOW()
		WHERE code = $2
	`

	res, err := s.db.ExecContext(ctx, query, active, code)
	if err != nil {
		return fmt.Errorf("updating GL account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating GL account: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w: GL account %q", registry.ErrNotFound, code)
	}

	return nil
}

func (s *Store) ListBankAccounts(ctx context.Context, accountType registry.BankAccountType) ([]*registry.BankAccount, error) {
	query := `
		SELECT id, name, type, opening_balance, is_active, created_at, updated_at
		FROM bank_accounts
		WHERE type = $1 AND is_active
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, accountType)
	if err != nil {
		return nil, fmt.Errorf("listing bank accounts: %w", err)
	}
	defer rows.Close()

	var accts []*registry.BankAccount

	for rows.Next() {
		var acct registry.BankAccount

		var typeStr string

		if err := rows.Scan(
			&acct.ID, &acct.Name, &typeStr, &acct.OpeningBalance, &acct.IsActive,
			&acct.CreatedAt, &acct.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning bank account: %w", err)
		}

		acct.Type = registry.BankAccountType(typeStr)
		accts = append(accts, &acct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank accounts: %w", err)
	}

	return accts, nil
}

func (s *Store) UpsertBankAccount(ctx context.Context, acct *registry.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (name, type, opening_balance, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (name, type) DO UPDATE
		SET opening_balance = EXCLUDED.opening_balance, is_active = EXCLUDED.is_active, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acct.Name,
		acct.Type,
		acct.OpeningBalance,
		acct.IsActive,
	).Scan(&acct.ID, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting bank account: %w", err)
	}

	return nil
}

func (s *Store) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, clientID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking client: %w", err)
	}

	return exists, nil
}
