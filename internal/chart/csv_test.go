package chart_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casabooks/casabooks/internal/chart"
	"github.com/casabooks/casabooks/internal/registry"
)

func TestReadGLAccounts(t *testing.T) {
	input := `code,name,type
1000,Cash,asset
2100,Tenant deposits held,liability
4000,Commission revenue,revenue
`

	rows, err := chart.ReadGLAccounts(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, chart.GLRow{Code: "1000", Name: "Cash", Type: registry.TypeAsset}, rows[0])
	assert.Equal(t, chart.GLRow{Code: "2100", Name: "Tenant deposits held", Type: registry.TypeLiability}, rows[1])
	assert.Equal(t, chart.GLRow{Code: "4000", Name: "Commission revenue", Type: registry.TypeRevenue}, rows[2])
}

func TestReadGLAccounts_BadType(t *testing.T) {
	input := `code,name,type
1000,Cash,asset
1100,Receivables,debtor
`

	_, err := chart.ReadGLAccounts(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "debtor")
}

func TestReadGLAccounts_EmptyCode(t *testing.T) {
	input := `code,name,type
,Cash,asset
`

	_, err := chart.ReadGLAccounts(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadGLAccounts_Empty(t *testing.T) {
	rows, err := chart.ReadGLAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadBankAccounts(t *testing.T) {
	input := `name,type,opening_balance
Main Checking,checking,250000
Office Cash,petty_cash,-1500
`

	rows, err := chart.ReadBankAccounts(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, chart.BankRow{Name: "Main Checking", Type: registry.BankChecking, OpeningBalance: 250000}, rows[0])
	assert.Equal(t, chart.BankRow{Name: "Office Cash", Type: registry.BankPettyCash, OpeningBalance: -1500}, rows[1])
}

func TestReadBankAccounts_BadBalance(t *testing.T) {
	input := `name,type,opening_balance
Main Checking,checking,2500.00
`

	_, err := chart.ReadBankAccounts(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "opening_balance")
}

func TestReadBankAccounts_BadType(t *testing.T) {
	input := `name,type,opening_balance
Main,brokerage,0
`

	_, err := chart.ReadBankAccounts(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brokerage")
}

// Legacy exports come in Windows-1252; accented names must survive the trip.
func TestReadGLAccounts_Windows1252(t *testing.T) {
	input := []byte("code,name,type\n5100,Geb\xfchren,expense\n")

	rows, err := chart.ReadGLAccounts(strings.NewReader(string(input)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gebühren", rows[0].Name)
}
