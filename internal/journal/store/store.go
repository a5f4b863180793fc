package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/database"
	"github.com/casabooks/casabooks/internal/journal"
	"github.com/casabooks/casabooks/internal/registry"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectLineColumns = `
	l.id, l.entry_id, l.side, l.amount, l.target_kind,
	l.gl_account_id, l.bank_account_id, l.party_type, l.party_client_id,
	l.rent_agreement_id, l.property_id, l.unit_id, l.memo, l.created_at
`

// scanLine reads a journal line row. Expected column order matches
// selectLineColumns.
func scanLine(s scanner) (*journal.Line, error) {
	var line journal.Line

	var sideStr, kindStr string

	var glID, bankID *uuid.UUID

	var partyType sql.NullString

	var partyClientID sql.NullInt64

	var memo sql.NullString

	if err := s.Scan(
		&line.ID, &line.EntryID, &sideStr, &line.Amount, &kindStr,
		&glID, &bankID, &partyType, &partyClientID,
		&line.RentAgreementID, &line.PropertyID, &line.UnitID, &memo, &line.CreatedAt,
	); err != nil {
		return nil, err
	}

	line.Side = journal.Side(sideStr)
	line.Memo = memo.String

	line.Target = journal.Target{Kind: journal.TargetKind(kindStr)}

	switch line.Target.Kind {
	case journal.TargetGL:
		if glID != nil {
			line.Target.GLAccountID = *glID
		}
	case journal.TargetBank:
		if bankID != nil {
			line.Target.BankAccountID = *bankID
		}
	case journal.TargetParty:
		line.Target.Party = registry.PartyRef{
			Type:     registry.PartyType(partyType.String),
			ClientID: partyClientID.Int64,
		}
	}

	return &line, nil
}

// partyLockKeys returns one advisory lock key per distinct party the entry
// touches, sorted so concurrent posters acquire them in the same order.
func partyLockKeys(lines []*journal.Line) []int64 {
	seen := make(map[registry.PartyRef]struct{})

	var keys []int64

	for _, l := range lines {
		if l.Target.Kind != journal.TargetParty {
			continue
		}

		if _, ok := seen[l.Target.Party]; ok {
			continue
		}

		seen[l.Target.Party] = struct{}{}
		keys = append(keys, PartyLockKey(l.Target.Party))
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// PartyLockKey is the advisory lock key guarding one party subledger.
// The settlement store uses the same key so posting and matching against a
// party serialize with each other.
func PartyLockKey(party registry.PartyRef) int64 {
	return database.LockKey("party", string(party.Type), strconv.FormatInt(party.ClientID, 10))
}

func (s *Store) CreateEntry(ctx context.Context, entry *journal.Entry) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning entry tx: %w", err)
	}
	defer dbTx.Rollback()

	for _, key := range partyLockKeys(entry.Lines) {
		if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
			return fmt.Errorf("acquiring party lock: %w", err)
		}
	}

	entryQuery := `
		INSERT INTO journal_entries (description, created_at)
		VALUES ($1, NOW())
		RETURNING id, created_at
	`
	if err := dbTx.QueryRowContext(ctx, entryQuery, entry.Description).
		Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("creating journal entry: %w", err)
	}

	lineQuery := `
		INSERT INTO journal_lines (
			entry_id, side, amount, target_kind,
			gl_account_id, bank_account_id, party_type, party_client_id,
			rent_agreement_id, property_id, unit_id, memo, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, created_at
	`

	for _, line := range entry.Lines {
		line.EntryID = entry.ID

		var glID, bankID *uuid.UUID

		var partyType *string

		var partyClientID *int64

		switch line.Target.Kind {
		case journal.TargetGL:
			glID = &line.Target.GLAccountID
		case journal.TargetBank:
			bankID = &line.Target.BankAccountID
		case journal.TargetParty:
			pt := string(line.Target.Party.Type)
			partyType = &pt
			partyClientID = &line.Target.Party.ClientID
		}

		err := dbTx.QueryRowContext(ctx, lineQuery,
			line.EntryID,
			line.Side,
			line.Amount,
			line.Target.Kind,
			glID,
			bankID,
			partyType,
			partyClientID,
			line.RentAgreementID,
			line.PropertyID,
			line.UnitID,
			line.Memo,
		).Scan(&line.ID, &line.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating journal line: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing entry: %w", err)
	}

	return nil
}

func (s *Store) GetEntry(ctx context.Context, id uuid.UUID) (*journal.Entry, error) {
	entryQuery := `
		SELECT id, description, created_at
		FROM journal_entries
		WHERE id = $1
	`

	var entry journal.Entry

	err := s.db.QueryRowContext(ctx, entryQuery, id).
		Scan(&entry.ID, &entry.Description, &entry.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, journal.ErrNotFound
		}

		return nil, fmt.Errorf("getting journal entry: %w", err)
	}

	linesQuery := `SELECT ` + selectLineColumns + `
		FROM journal_lines l
		WHERE l.entry_id = $1
		ORDER BY l.id ASC`

	rows, err := s.db.QueryContext(ctx, linesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("listing entry lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning journal line: %w", err)
		}

		entry.Lines = append(entry.Lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry lines: %w", err)
	}

	return &entry, nil
}

func (s *Store) ListLines(ctx context.Context, filter journal.LineFilter) ([]*journal.Line, error) {
	query := `SELECT ` + selectLineColumns + `
		FROM journal_lines l
		WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Party != nil {
		query += fmt.Sprintf(" AND l.target_kind = 'party' AND l.party_type = $%d AND l.party_client_id = $%d", argIdx, argIdx+1)

		args = append(args, filter.Party.Type, filter.Party.ClientID)
		argIdx += 2
	}

	if filter.GLAccountID != nil {
		query += fmt.Sprintf(" AND l.gl_account_id = $%d", argIdx)

		args = append(args, *filter.GLAccountID)
		argIdx++
	}

	if filter.BankAccountID != nil {
		query += fmt.Sprintf(" AND l.bank_account_id = $%d", argIdx)

		args = append(args, *filter.BankAccountID)
		argIdx++
	}

	if filter.RentAgreementID != nil {
		query += fmt.Sprintf(" AND l.rent_agreement_id = $%d", argIdx)

		args = append(args, *filter.RentAgreementID)
		argIdx++
	}

	query += " ORDER BY l.created_at ASC, l.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing journal lines: %w", err)
	}
	defer rows.Close()

	var lines []*journal.Line

	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning journal line: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal lines: %w", err)
	}

	return lines, nil
}
