package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/registry"
	"github.com/casabooks/casabooks/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// sideSums builds the per-side totals for lines matching the given
// WHERE tail. asOf bounds on entry creation time when present.
func (s *Store) sideSums(ctx context.Context, where string, asOf *time.Time, args ...any) (report.Sums, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN l.side = 'debit' THEN l.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN l.side = 'credit' THEN l.amount ELSE 0 END), 0)
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.id
		WHERE ` + where

	if asOf != nil {
		query += fmt.Sprintf(" AND e.created_at <= $%d", len(args)+1)
		args = append(args, *asOf)
	}

	var sums report.Sums
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&sums.Debits, &sums.Credits); err != nil {
		return report.Sums{}, fmt.Errorf("summing lines: %w", err)
	}

	return sums, nil
}

func (s *Store) GLSums(ctx context.Context, glAccountID uuid.UUID, asOf *time.Time) (report.Sums, error) {
	return s.sideSums(ctx, "l.gl_account_id = $1", asOf, glAccountID)
}

func (s *Store) BankSums(ctx context.Context, bankAccountID uuid.UUID, asOf *time.Time) (report.Sums, error) {
	return s.sideSums(ctx, "l.bank_account_id = $1", asOf, bankAccountID)
}

func (s *Store) PartyOpenSums(ctx context.Context, party registry.PartyRef) (report.Sums, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN l.side = 'debit' THEN l.amount - m.matched ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN l.side = 'credit' THEN l.amount - m.matched ELSE 0 END), 0)
		FROM journal_lines l
		CROSS JOIN LATERAL (
			SELECT COALESCE(SUM(s.amount), 0) AS matched
			FROM settlement_links s
			WHERE s.debit_line_id = l.id OR s.credit_line_id = l.id
		) m
		WHERE l.target_kind = 'party' AND l.party_type = $1 AND l.party_client_id = $2
	`

	var sums report.Sums
	if err := s.db.QueryRowContext(ctx, query, party.Type, party.ClientID).
		Scan(&sums.Debits, &sums.Credits); err != nil {
		return report.Sums{}, fmt.Errorf("summing open lines: %w", err)
	}

	return sums, nil
}

func (s *Store) TrialBalance(ctx context.Context, asOf *time.Time) ([]report.TrialRow, error) {
	query := `
		SELECT a.code, a.name, a.type,
			COALESCE(SUM(CASE WHEN l.side = 'debit' THEN l.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN l.side = 'credit' THEN l.amount ELSE 0 END), 0)
		FROM gl_accounts a
		LEFT JOIN journal_lines l ON l.gl_account_id = a.id
		LEFT JOIN journal_entries e ON l.entry_id = e.id
	`

	var args []any

	if asOf != nil {
		query += " WHERE e.created_at IS NULL OR e.created_at <= $1"

		args = append(args, *asOf)
	}

	query += " GROUP BY a.code, a.name, a.type ORDER BY a.code ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying trial balance: %w", err)
	}
	defer rows.Close()

	var result []report.TrialRow

	for rows.Next() {
		var row report.TrialRow

		var typeStr string

		if err := rows.Scan(&row.Code, &row.Name, &typeStr, &row.Debits, &row.Credits); err != nil {
			return nil, fmt.Errorf("scanning trial balance row: %w", err)
		}

		row.Type = registry.AccountType(typeStr)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trial balance rows: %w", err)
	}

	return result, nil
}
