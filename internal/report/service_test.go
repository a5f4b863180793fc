package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casabooks/casabooks/internal/report"
	"github.com/casabooks/casabooks/internal/registry"
)

func setupReport(t *testing.T) (*report.Service, *report.MockAccounts, *report.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	accounts := report.NewMockAccounts(ctrl)
	repo := report.NewMockRepository(ctrl)

	return report.NewService(accounts, repo), accounts, repo
}

func TestService_GLBalance_SignConventions(t *testing.T) {
	tests := []struct {
		name  string
		typ   registry.AccountType
		sums  report.Sums
		want  int64
	}{
		{"AssetDebitNormal", registry.TypeAsset, report.Sums{Debits: 50000, Credits: 20000}, 30000},
		{"ExpenseDebitNormal", registry.TypeExpense, report.Sums{Debits: 12000, Credits: 0}, 12000},
		{"LiabilityCreditNormal", registry.TypeLiability, report.Sums{Debits: 0, Credits: 100000}, 100000},
		{"RevenueCreditNormal", registry.TypeRevenue, report.Sums{Debits: 5000, Credits: 35000}, 30000},
		{"EquityCreditNormal", registry.TypeEquity, report.Sums{Debits: 0, Credits: 80000}, 80000},
		{"CreditNormalOverdrawn", registry.TypeRevenue, report.Sums{Debits: 4000, Credits: 1000}, -3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accounts, repo := setupReport(t)

			acct := &registry.GLAccount{ID: uuid.New(), Code: "4000", Type: tt.typ}
			accounts.EXPECT().GetGLAccount(gomock.Any(), "4000").Return(acct, nil)
			repo.EXPECT().GLSums(gomock.Any(), acct.ID, gomock.Nil()).Return(tt.sums, nil)

			got, err := svc.GLBalance(context.Background(), "4000", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A deposit held then fully repaid must leave the liability account at zero.
func TestService_GLBalance_DepositRoundTrip(t *testing.T) {
	svc, accounts, repo := setupReport(t)

	acct := &registry.GLAccount{ID: uuid.New(), Code: "2100", Type: registry.TypeLiability}
	accounts.EXPECT().GetGLAccount(gomock.Any(), "2100").Return(acct, nil)
	repo.EXPECT().
		GLSums(gomock.Any(), acct.ID, gomock.Nil()).
		Return(report.Sums{Debits: 100000, Credits: 100000}, nil)

	got, err := svc.GLBalance(context.Background(), "2100", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestService_GLBalance_UnknownCode(t *testing.T) {
	svc, accounts, _ := setupReport(t)

	accounts.EXPECT().
		GetGLAccount(gomock.Any(), "9999").
		Return(nil, registry.ErrNotFound)

	_, err := svc.GLBalance(context.Background(), "9999", nil)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestService_BankBalance(t *testing.T) {
	svc, accounts, repo := setupReport(t)

	acct := &registry.BankAccount{
		ID:             uuid.New(),
		Name:           "Main Checking",
		Type:           registry.BankChecking,
		OpeningBalance: 250000,
	}
	accounts.EXPECT().
		GetBankAccount(gomock.Any(), registry.BankChecking, "Main Checking").
		Return(acct, nil)
	repo.EXPECT().
		BankSums(gomock.Any(), acct.ID, gomock.Nil()).
		Return(report.Sums{Debits: 100000, Credits: 40000}, nil)

	got, err := svc.BankBalance(context.Background(), registry.BankChecking, "Main Checking", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(310000), got)
}

func TestService_BankBalance_AsOf(t *testing.T) {
	svc, accounts, repo := setupReport(t)

	asOf := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	acct := &registry.BankAccount{ID: uuid.New(), Type: registry.BankSavings}
	accounts.EXPECT().
		GetBankAccount(gomock.Any(), registry.BankSavings, "").
		Return(acct, nil)
	repo.EXPECT().
		BankSums(gomock.Any(), acct.ID, &asOf).
		Return(report.Sums{}, nil)

	got, err := svc.BankBalance(context.Background(), registry.BankSavings, "", &asOf)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestService_PartyOpenBalance(t *testing.T) {
	svc, _, repo := setupReport(t)

	party := registry.PartyRef{Type: registry.PartyOwner, ClientID: 11}
	repo.EXPECT().
		PartyOpenSums(gomock.Any(), party).
		Return(report.Sums{Debits: 30000, Credits: 20000}, nil)

	got, err := svc.PartyOpenBalance(context.Background(), registry.PartyOwner, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got)
}

func TestService_PartyOpenBalance_InvalidParty(t *testing.T) {
	svc, _, _ := setupReport(t)

	_, err := svc.PartyOpenBalance(context.Background(), "vendor", 11)
	assert.ErrorIs(t, err, registry.ErrInvalidKey)
}

func TestService_TrialBalance(t *testing.T) {
	svc, _, repo := setupReport(t)

	rows := []report.TrialRow{
		{Code: "1000", Name: "Cash", Type: registry.TypeAsset, Debits: 100000, Credits: 40000},
		{Code: "4000", Name: "Commission revenue", Type: registry.TypeRevenue, Debits: 0, Credits: 60000},
	}
	repo.EXPECT().TrialBalance(gomock.Any(), gomock.Nil()).Return(rows, nil)

	got, err := svc.TrialBalance(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	var debits, credits int64
	for _, r := range got {
		debits += r.Debits
		credits += r.Credits
	}
	assert.Equal(t, debits, credits)
}
