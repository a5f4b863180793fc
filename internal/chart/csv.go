package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/casabooks/casabooks/internal/encoding"
	"github.com/casabooks/casabooks/internal/registry"
)

// GLRow is one chart-of-accounts CSV row: code,name,type.
type GLRow struct {
	Code string
	Name string
	Type registry.AccountType
}

// BankRow is one bank-accounts CSV row: name,type,opening_balance (minor units).
type BankRow struct {
	Name           string
	Type           registry.BankAccountType
	OpeningBalance int64
}

func readRecords(r io.Reader, fields int) ([][]string, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}

	cr := csv.NewReader(utf8r)
	cr.FieldsPerRecord = fields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip the header row.
	return records[1:], nil
}

// ReadGLAccounts parses a chart-of-accounts CSV exported from the legacy
// spreadsheet. Header: code,name,type.
func ReadGLAccounts(r io.Reader) ([]GLRow, error) {
	records, err := readRecords(r, 3)
	if err != nil {
		return nil, err
	}

	var rows []GLRow

	for i, rec := range records {
		row := GLRow{
			Code: rec[0],
			Name: rec[1],
			Type: registry.AccountType(rec[2]),
		}

		if row.Code == "" {
			return nil, fmt.Errorf("row %d: empty code", i+2)
		}

		if !row.Type.Valid() {
			return nil, fmt.Errorf("row %d: invalid account type %q", i+2, rec[2])
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// ReadBankAccounts parses a bank-accounts CSV.
// Header: name,type,opening_balance. Opening balance is in minor units.
func ReadBankAccounts(r io.Reader) ([]BankRow, error) {
	records, err := readRecords(r, 3)
	if err != nil {
		return nil, err
	}

	var rows []BankRow

	for i, rec := range records {
		opening, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing opening_balance %q: %w", i+2, rec[2], err)
		}

		row := BankRow{
			Name:           rec[0],
			Type:           registry.BankAccountType(rec[1]),
			OpeningBalance: opening,
		}

		if row.Name == "" {
			return nil, fmt.Errorf("row %d: empty name", i+2)
		}

		if !row.Type.Valid() {
			return nil, fmt.Errorf("row %d: invalid bank account type %q", i+2, rec[1])
		}

		rows = append(rows, row)
	}

	return rows, nil
}
