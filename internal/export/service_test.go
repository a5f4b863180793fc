package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casabooks/casabooks/internal/export"
	"github.com/casabooks/casabooks/internal/journal"
	"github.com/casabooks/casabooks/internal/registry"
)

func TestService_WriteStatement(t *testing.T) {
	ctrl := gomock.NewController(t)

	lines := export.NewMockLines(ctrl)
	svc := export.NewService(lines)

	party := registry.PartyRef{Type: registry.PartyOwner, ClientID: 11}
	agreement := int64(7)

	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 10, 0, 0, 0, time.UTC)
	}

	lines.EXPECT().
		Lines(gomock.Any(), journal.LineFilter{Party: &party}).
		Return([]*journal.Line{
			{
				ID:              uuid.New(),
				Side:            journal.SideDebit,
				Amount:          30000,
				RentAgreementID: &agreement,
				Memo:            "Management commission Q1",
				CreatedAt:       day(1),
			},
			{
				ID:        uuid.New(),
				Side:      journal.SideCredit,
				Amount:    20000,
				CreatedAt: day(15),
			},
		}, nil)

	var buf bytes.Buffer

	err := svc.WriteStatement(context.Background(), &buf, registry.PartyOwner, 11)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"date", "line_id", "side", "amount", "running_balance", "rent_agreement_id", "memo"}, records[0])

	assert.Equal(t, "2024-03-01", records[1][0])
	assert.Equal(t, "debit", records[1][2])
	assert.Equal(t, "30000", records[1][3])
	assert.Equal(t, "30000", records[1][4])
	assert.Equal(t, "7", records[1][5])
	assert.Equal(t, "Management commission Q1", records[1][6])

	assert.Equal(t, "credit", records[2][2])
	assert.Equal(t, "10000", records[2][4])
	assert.Equal(t, "", records[2][5])
}

func TestService_WriteStatement_InvalidParty(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := export.NewService(export.NewMockLines(ctrl))

	var buf bytes.Buffer

	err := svc.WriteStatement(context.Background(), &buf, "vendor", 11)
	assert.ErrorIs(t, err, registry.ErrInvalidKey)
	assert.Zero(t, buf.Len())
}
