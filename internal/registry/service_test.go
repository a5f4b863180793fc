package registry_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casabooks/casabooks/internal/registry"
)

func setupRegistry(t *testing.T) (*registry.Service, *registry.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := registry.NewMockRepository(ctrl)

	return registry.NewService(repo), repo
}

func TestService_ResolveGLAccount(t *testing.T) {
	svc, repo := setupRegistry(t)

	acct := &registry.GLAccount{
		ID:       uuid.New(),
		Code:     "4000",
		Name:     "Commission revenue",
		Type:     registry.TypeRevenue,
		IsActive: true,
	}
	repo.EXPECT().GetGLAccountByCode(gomock.Any(), "4000").Return(acct, nil)

	id, err := svc.ResolveGLAccount(context.Background(), "4000")
	require.NoError(t, err)
	assert.Equal(t, acct.ID, id)
}

// Deactivated accounts must stop resolving so no new lines can address them,
// while history keeps pointing at the row.
func TestService_ResolveGLAccount_Inactive(t *testing.T) {
	svc, repo := setupRegistry(t)

	acct := &registry.GLAccount{
		ID:       uuid.New(),
		Code:     "4000",
		Type:     registry.TypeRevenue,
		IsActive: false,
	}
	repo.EXPECT().GetGLAccountByCode(gomock.Any(), "4000").Return(acct, nil)

	_, err := svc.ResolveGLAccount(context.Background(), "4000")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestService_ResolveGLAccount_EmptyCode(t *testing.T) {
	svc, _ := setupRegistry(t)

	_, err := svc.ResolveGLAccount(context.Background(), "")
	assert.ErrorIs(t, err, registry.ErrInvalidKey)
}

func TestService_GetBankAccount(t *testing.T) {
	checking := func(name string) *registry.BankAccount {
		return &registry.BankAccount{
			ID:       uuid.New(),
			Name:     name,
			Type:     registry.BankChecking,
			IsActive: true,
		}
	}

	main := checking("Main")
	payroll := checking("Payroll")

	tests := []struct {
		name     string
		accounts []*registry.BankAccount
		lookup   string
		want     *registry.BankAccount
		wantErr  error
	}{
		{
			name:     "SingleNoName",
			accounts: []*registry.BankAccount{main},
			want:     main,
		},
		{
			name:     "MultipleNoName",
			accounts: []*registry.BankAccount{main, payroll},
			wantErr:  registry.ErrAmbiguous,
		},
		{
			name:     "MultipleByName",
			accounts: []*registry.BankAccount{main, payroll},
			lookup:   "Payroll",
			want:     payroll,
		},
		{
			name:     "NameNotFound",
			accounts: []*registry.BankAccount{main},
			lookup:   "Escrow",
			wantErr:  registry.ErrNotFound,
		},
		{
			name:    "NoneActive",
			wantErr: registry.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setupRegistry(t)

			repo.EXPECT().
				ListBankAccounts(gomock.Any(), registry.BankChecking).
				Return(tt.accounts, nil)

			got, err := svc.GetBankAccount(context.Background(), registry.BankChecking, tt.lookup)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_GetBankAccount_BadType(t *testing.T) {
	svc, _ := setupRegistry(t)

	_, err := svc.GetBankAccount(context.Background(), "brokerage", "")
	assert.ErrorIs(t, err, registry.ErrInvalidKey)
}

func TestService_ResolveParty(t *testing.T) {
	svc, repo := setupRegistry(t)

	repo.EXPECT().ClientExists(gomock.Any(), int64(11)).Return(true, nil)

	ref, err := svc.ResolveParty(context.Background(), registry.PartyOwner, 11)
	require.NoError(t, err)
	assert.Equal(t, registry.PartyRef{Type: registry.PartyOwner, ClientID: 11}, ref)
}

func TestService_ResolveParty_UnknownClient(t *testing.T) {
	svc, repo := setupRegistry(t)

	repo.EXPECT().ClientExists(gomock.Any(), int64(99)).Return(false, nil)

	_, err := svc.ResolveParty(context.Background(), registry.PartyRenter, 99)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestService_ResolveParty_BadType(t *testing.T) {
	svc, _ := setupRegistry(t)

	_, err := svc.ResolveParty(context.Background(), "vendor", 11)
	assert.ErrorIs(t, err, registry.ErrInvalidKey)
}

func TestService_UpsertGLAccount(t *testing.T) {
	svc, repo := setupRegistry(t)

	repo.EXPECT().
		UpsertGLAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acct *registry.GLAccount) error {
			acct.ID = uuid.New()
			return nil
		})

	acct, err := svc.UpsertGLAccount(context.Background(), "2100", "Tenant deposits held", registry.TypeLiability)
	require.NoError(t, err)
	assert.NotEmpty(t, acct.ID)
	assert.True(t, acct.IsActive)
}

func TestService_UpsertGLAccount_Invalid(t *testing.T) {
	svc, _ := setupRegistry(t)

	_, err := svc.UpsertGLAccount(context.Background(), "", "Cash", registry.TypeAsset)
	assert.ErrorIs(t, err, registry.ErrInvalidKey)

	_, err = svc.UpsertGLAccount(context.Background(), "1000", "Cash", "contra")
	assert.ErrorIs(t, err, registry.ErrInvalidKey)
}

func TestService_UpsertBankAccount_Invalid(t *testing.T) {
	svc, _ := setupRegistry(t)

	_, err := svc.UpsertBankAccount(context.Background(), "", registry.BankChecking, 0)
	assert.ErrorIs(t, err, registry.ErrInvalidKey)

	_, err = svc.UpsertBankAccount(context.Background(), "Main", "brokerage", 0)
	assert.ErrorIs(t, err, registry.ErrInvalidKey)
}

func TestService_DeactivateGLAccount(t *testing.T) {
	svc, repo := setupRegistry(t)

	repo.EXPECT().SetGLAccountActive(gomock.Any(), "4000", false).Return(nil)

	err := svc.DeactivateGLAccount(context.Background(), "4000")
	assert.NoError(t, err)
}
