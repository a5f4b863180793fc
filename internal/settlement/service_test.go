package settlement_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casabooks/casabooks/internal/journal"
	"github.com/casabooks/casabooks/internal/registry"
	"github.com/casabooks/casabooks/internal/settlement"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func openLine(side journal.Side, amount, matched int64, age time.Duration) *settlement.OpenLine {
	return &settlement.OpenLine{
		ID:        uuid.New(),
		Side:      side,
		Amount:    amount,
		Matched:   matched,
		CreatedAt: baseTime.Add(age),
	}
}

func setupSettle(t *testing.T, lines []*settlement.OpenLine, wantLinks bool) (*settlement.Service, *settlement.MockTx) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := settlement.NewMockRepository(ctrl)
	tx := settlement.NewMockTx(ctrl)

	party := registry.PartyRef{Type: registry.PartyOwner, ClientID: 11}
	repo.EXPECT().Begin(gomock.Any(), party).Return(tx, nil)
	tx.EXPECT().OpenLines(gomock.Any()).Return(lines, nil)
	tx.EXPECT().Rollback().Return(nil)

	if wantLinks {
		tx.EXPECT().CreateLinks(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
	}

	return settlement.NewService(repo), tx
}

// Commission accrued as one debit, partially collected by a later credit:
// 200 of the 300 must match, 100 stays open on the debit.
func TestService_Settle_PartialCollection(t *testing.T) {
	debit := openLine(journal.SideDebit, 30000, 0, 0)
	credit := openLine(journal.SideCredit, 20000, 0, time.Hour)

	svc, _ := setupSettle(t, []*settlement.OpenLine{debit, credit}, true)

	links, err := svc.Settle(context.Background(), registry.PartyOwner, 11)
	require.NoError(t, err)
	require.Len(t, links, 1)

	assert.Equal(t, debit.ID, links[0].DebitLineID)
	assert.Equal(t, credit.ID, links[0].CreditLineID)
	assert.Equal(t, int64(20000), links[0].Amount)
	assert.Equal(t, int64(10000), debit.Open())
	assert.Equal(t, int64(0), credit.Open())
}

// One large credit drains several older debits oldest-first.
func TestService_Settle_FIFOAcrossDebits(t *testing.T) {
	d1 := openLine(journal.SideDebit, 10000, 0, 0)
	d2 := openLine(journal.SideDebit, 15000, 0, time.Hour)
	d3 := openLine(journal.SideDebit, 5000, 0, 2*time.Hour)
	credit := openLine(journal.SideCredit, 22000, 0, 3*time.Hour)

	svc, _ := setupSettle(t, []*settlement.OpenLine{d1, d2, d3, credit}, true)

	links, err := svc.Settle(context.Background(), registry.PartyOwner, 11)
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, d1.ID, links[0].DebitLineID)
	assert.Equal(t, int64(10000), links[0].Amount)
	assert.Equal(t, d2.ID, links[1].DebitLineID)
	assert.Equal(t, int64(12000), links[1].Amount)

	// Credit exhausted mid-way through d2; d3 untouched.
	assert.Equal(t, int64(3000), d2.Open())
	assert.Equal(t, int64(5000), d3.Open())
	assert.Equal(t, int64(0), credit.Open())

	// Conservation: nothing matched past its own amount.
	for _, l := range []*settlement.OpenLine{d1, d2, d3, credit} {
		assert.GreaterOrEqual(t, l.Open(), int64(0))
		assert.LessOrEqual(t, l.Matched, l.Amount)
	}
}

func TestService_Settle_OneSidedParty(t *testing.T) {
	debit := openLine(journal.SideDebit, 30000, 0, 0)

	svc, _ := setupSettle(t, []*settlement.OpenLine{debit}, false)

	links, err := svc.Settle(context.Background(), registry.PartyOwner, 11)
	require.NoError(t, err)
	assert.Empty(t, links)
	assert.Equal(t, int64(30000), debit.Open())
}

func TestService_Settle_SkipsFullyMatched(t *testing.T) {
	settled := openLine(journal.SideDebit, 10000, 10000, 0)
	open := openLine(journal.SideDebit, 8000, 0, time.Hour)
	credit := openLine(journal.SideCredit, 5000, 0, 2*time.Hour)

	svc, _ := setupSettle(t, []*settlement.OpenLine{settled, open, credit}, true)

	links, err := svc.Settle(context.Background(), registry.PartyOwner, 11)
	require.NoError(t, err)
	require.Len(t, links, 1)

	assert.Equal(t, open.ID, links[0].DebitLineID)
	assert.Equal(t, int64(5000), links[0].Amount)
	assert.Equal(t, int64(10000), settled.Matched)
}

// Two passes over the same state produce the same links. The matcher must be
// reproducible for audit.
func TestService_Settle_Deterministic(t *testing.T) {
	mkLines := func(ids []uuid.UUID) []*settlement.OpenLine {
		return []*settlement.OpenLine{
			{ID: ids[0], Side: journal.SideDebit, Amount: 30000, CreatedAt: baseTime},
			{ID: ids[1], Side: journal.SideDebit, Amount: 7000, CreatedAt: baseTime.Add(time.Hour)},
			{ID: ids[2], Side: journal.SideCredit, Amount: 20000, CreatedAt: baseTime.Add(2 * time.Hour)},
			{ID: ids[3], Side: journal.SideCredit, Amount: 9000, CreatedAt: baseTime.Add(3 * time.Hour)},
		}
	}

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	var results [2][]*settlement.Link

	for i := range results {
		svc, _ := setupSettle(t, mkLines(ids), true)

		links, err := svc.Settle(context.Background(), registry.PartyOwner, 11)
		require.NoError(t, err)

		results[i] = links
	}

	require.Equal(t, len(results[0]), len(results[1]))

	for i := range results[0] {
		assert.Equal(t, results[0][i].DebitLineID, results[1][i].DebitLineID)
		assert.Equal(t, results[0][i].CreditLineID, results[1][i].CreditLineID)
		assert.Equal(t, results[0][i].Amount, results[1][i].Amount)
	}
}

func TestService_Settle_InvalidParty(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := settlement.NewMockRepository(ctrl)
	svc := settlement.NewService(repo)

	_, err := svc.Settle(context.Background(), "vendor", 11)
	assert.ErrorIs(t, err, settlement.ErrInvalidMatch)
}

func TestService_SettleLines(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := settlement.NewMockRepository(ctrl)
	tx := settlement.NewMockTx(ctrl)
	svc := settlement.NewService(repo)

	party := registry.PartyRef{Type: registry.PartyRenter, ClientID: 22}

	credit := openLine(journal.SideCredit, 25000, 0, 2*time.Hour)
	d1 := openLine(journal.SideDebit, 10000, 0, 0)
	d2 := openLine(journal.SideDebit, 20000, 0, time.Hour)

	repo.EXPECT().LineParty(gomock.Any(), credit.ID).Return(party, nil)
	repo.EXPECT().Begin(gomock.Any(), party).Return(tx, nil)
	tx.EXPECT().
		GetOpenLines(gomock.Any(), []uuid.UUID{credit.ID, d1.ID, d2.ID}).
		Return([]*settlement.OpenLine{d1, d2, credit}, nil)
	tx.EXPECT().CreateLinks(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	links, err := svc.SettleLines(context.Background(), credit.ID, []uuid.UUID{d1.ID, d2.ID})
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, int64(10000), links[0].Amount)
	assert.Equal(t, int64(15000), links[1].Amount)
	assert.Equal(t, int64(0), credit.Open())
	assert.Equal(t, int64(5000), d2.Open())
}

func TestService_SettleLines_SideMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := settlement.NewMockRepository(ctrl)
	tx := settlement.NewMockTx(ctrl)
	svc := settlement.NewService(repo)

	party := registry.PartyRef{Type: registry.PartyRenter, ClientID: 22}

	// Caller passed a debit line where the credit line belongs.
	notACredit := openLine(journal.SideDebit, 25000, 0, 0)
	d1 := openLine(journal.SideDebit, 10000, 0, time.Hour)

	repo.EXPECT().LineParty(gomock.Any(), notACredit.ID).Return(party, nil)
	repo.EXPECT().Begin(gomock.Any(), party).Return(tx, nil)
	tx.EXPECT().
		GetOpenLines(gomock.Any(), gomock.Any()).
		Return([]*settlement.OpenLine{notACredit, d1}, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.SettleLines(context.Background(), notACredit.ID, []uuid.UUID{d1.ID})
	assert.ErrorIs(t, err, settlement.ErrInvalidMatch)
}

func TestService_SettleLines_MissingDebit(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := settlement.NewMockRepository(ctrl)
	tx := settlement.NewMockTx(ctrl)
	svc := settlement.NewService(repo)

	party := registry.PartyRef{Type: registry.PartyOwner, ClientID: 11}

	credit := openLine(journal.SideCredit, 25000, 0, 0)
	missing := uuid.New()

	repo.EXPECT().LineParty(gomock.Any(), credit.ID).Return(party, nil)
	repo.EXPECT().Begin(gomock.Any(), party).Return(tx, nil)
	// Store scopes the lookup to the party, so a foreign line never comes back.
	tx.EXPECT().
		GetOpenLines(gomock.Any(), gomock.Any()).
		Return([]*settlement.OpenLine{credit}, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.SettleLines(context.Background(), credit.ID, []uuid.UUID{missing})
	assert.ErrorIs(t, err, settlement.ErrLineNotFound)
}

func TestService_SettleLines_NoDebits(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := settlement.NewMockRepository(ctrl)
	svc := settlement.NewService(repo)

	_, err := svc.SettleLines(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, settlement.ErrInvalidMatch)
}
