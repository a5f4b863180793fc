package settlement

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/casabooks/casabooks/internal/journal"
)

var (
	ErrLineNotFound = errors.New("journal line not found")
	// ErrInvalidMatch means the requested lines cannot be linked: wrong sides,
	// different parties, or a non-party line.
	ErrInvalidMatch = errors.New("lines cannot be matched")
	// ErrOverSettled means a proposed link would push the total matched
	// against a line past the line's own amount.
	ErrOverSettled = errors.New("match exceeds open amount")
)

// Link records that Amount of a debit line is satisfied by a credit line of
// the same party. Links only ever accumulate; line amounts are never touched,
// so the full audit history stays intact.
type Link struct {
	ID           uuid.UUID
	DebitLineID  uuid.UUID
	CreditLineID uuid.UUID
	Amount       int64
	CreatedAt    time.Time
}

// OpenLine is a party line together with how much of it prior links already
// consumed.
type OpenLine struct {
	ID        uuid.UUID
	Side      journal.Side
	Amount    int64
	Matched   int64
	CreatedAt time.Time
}

// Open returns the unmatched remainder still outstanding on the line.
func (l *OpenLine) Open() int64 {
	return l.Amount - l.Matched
}
