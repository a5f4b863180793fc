package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/journal"
	journalStore "github.com/casabooks/casabooks/internal/journal/store"
	"github.com/casabooks/casabooks/internal/registry"
	"github.com/casabooks/casabooks/internal/settlement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) LineParty(ctx context.Context, lineID uuid.UUID) (registry.PartyRef, error) {
	query := `
		SELECT target_kind, party_type, party_client_id
		FROM journal_lines
		WHERE id = $1
	`

	var kind string

	var partyType sql.NullString

	var partyClientID sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, lineID).Scan(&kind, &partyType, &partyClientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return registry.PartyRef{}, fmt.Errorf("%w: %s", settlement.ErrLineNotFound, lineID)
		}

		return registry.PartyRef{}, fmt.Errorf("resolving line party: %w", err)
	}

	if journal.TargetKind(kind) != journal.TargetParty {
		return registry.PartyRef{}, fmt.Errorf("%w: line %s is not a party line", settlement.ErrInvalidMatch, lineID)
	}

	return registry.PartyRef{
		Type:     registry.PartyType(partyType.String),
		ClientID: partyClientID.Int64,
	}, nil
}

type settleTx struct {
	tx    *sql.Tx
	party registry.PartyRef
}

// Begin opens a transaction and takes the same advisory lock the journal
// store takes when posting to this party, so matching and posting against
// one subledger are serialized.
func (s *Store) Begin(ctx context.Context, party registry.PartyRef) (settlement.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settle tx: %w", err)
	}

	key := journalStore.PartyLockKey(party)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring party lock: %w", err)
	}

	return &settleTx{tx: dbTx, party: party}, nil
}

func (t *settleTx) Commit() error   { return t.tx.Commit() }
func (t *settleTx) Rollback() error { return t.tx.Rollback() }

const openLineQuery = `
	SELECT l.id, l.side, l.amount,
		COALESCE((
			SELECT SUM(s.amount)
			FROM settlement_links s
			WHERE s.debit_line_id = l.id OR s.credit_line_id = l.id
		), 0) AS matched,
		l.created_at
	FROM journal_lines l
	WHERE l.target_kind = 'party' AND l.party_type = $1 AND l.party_client_id = $2
`

func (t *settleTx) queryOpenLines(ctx context.Context, query string, args ...any) ([]*settlement.OpenLine, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying open lines: %w", err)
	}
	defer rows.Close()

	var lines []*settlement.OpenLine

	for rows.Next() {
		var line settlement.OpenLine

		var sideStr string

		if err := rows.Scan(&line.ID, &sideStr, &line.Amount, &line.Matched, &line.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning open line: %w", err)
		}

		line.Side = journal.Side(sideStr)
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating open lines: %w", err)
	}

	return lines, nil
}

func (t *settleTx) OpenLines(ctx context.Context) ([]*settlement.OpenLine, error) {
	query := openLineQuery + ` ORDER BY l.created_at ASC, l.id ASC`

	return t.queryOpenLines(ctx, query, t.party.Type, t.party.ClientID)
}

func (t *settleTx) GetOpenLines(ctx context.Context, ids []uuid.UUID) ([]*settlement.OpenLine, error) {
	query := openLineQuery + ` AND l.id = ANY($3::uuid[]) ORDER BY l.created_at ASC, l.id ASC`

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	return t.queryOpenLines(ctx, query, t.party.Type, t.party.ClientID, idStrs)
}

func (t *settleTx) CreateLinks(ctx context.Context, links []*settlement.Link) error {
	query := `
		INSERT INTO settlement_links (debit_line_id, credit_line_id, amount, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	for _, link := range links {
		err := t.tx.QueryRowContext(ctx, query,
			link.DebitLineID,
			link.CreditLineID,
			link.Amount,
		).Scan(&link.ID, &link.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating settlement link: %w", err)
		}
	}

	return nil
}
