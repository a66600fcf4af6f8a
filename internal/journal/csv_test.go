package journal

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRoundTrip(t *testing.T) {
	rows := []Row{
		{
			EntryID:         "FY2025-0001",
			Date:            date(2025, 1, 3),
			FinancialYear:   "FY2025",
			Description:     "Office rent, January",
			DebitAccountID:  5100,
			CreditAccountID: 1010,
			Amount:          dec("2000"),
		},
		{
			EntryID:         "FY2025-0002",
			Date:            date(2025, 1, 4),
			FinancialYear:   "FY2025",
			Description:     "Sold goods to \"Acme, Inc\"",
			DebitAccountID:  1200,
			CreditAccountID: 4010,
			Amount:          dec("1234.5"),
		},
	}

	var buf bytes.Buffer
	err := WriteRows(&buf, rows)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))

	got, err := ReadRows(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range rows {
		assert.Equal(t, rows[i].EntryID, got[i].EntryID)
		assert.True(t, rows[i].Date.Equal(got[i].Date))
		assert.Equal(t, rows[i].FinancialYear, got[i].FinancialYear)
		assert.Equal(t, rows[i].Description, got[i].Description)
		assert.Equal(t, rows[i].DebitAccountID, got[i].DebitAccountID)
		assert.Equal(t, rows[i].CreditAccountID, got[i].CreditAccountID)
		assert.True(t, rows[i].Amount.Equal(got[i].Amount))
	}
}

func TestMarshalRow_FixedAmount(t *testing.T) {
	rec := MarshalRow(Row{EntryID: "FY2025-0001", Date: date(2025, 2, 1), Amount: dec("7.5")})
	assert.Equal(t, "7.50", rec[colAmount])
	assert.Equal(t, "2025-02-01", rec[colDate])
}

func TestAppendRows_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	err := AppendRows(&buf, []Row{{EntryID: "FY2025-0003", Date: date(2025, 1, 1), Amount: dec("1")}})
	require.NoError(t, err)
	assert.False(t, strings.Contains(buf.String(), "entry_id"))
	assert.True(t, strings.HasPrefix(buf.String(), "FY2025-0003,"))
}

func TestUnmarshalRow_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
		want   string
	}{
		{"field count", []string{"a", "b"}, "expected 7 fields"},
		{"bad date", []string{"FY2025-0001", "01/02/2025", "FY2025", "x", "1", "2", "3"}, "parsing date"},
		{"bad debit", []string{"FY2025-0001", "2025-01-02", "FY2025", "x", "one", "2", "3"}, "parsing debit_account_id"},
		{"bad credit", []string{"FY2025-0001", "2025-01-02", "FY2025", "x", "1", "two", "3"}, "parsing credit_account_id"},
		{"bad amount", []string{"FY2025-0001", "2025-01-02", "FY2025", "x", "1", "2", "lots"}, "parsing amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalRow(tt.record)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadRows_Empty(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = ReadRows(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRows_File(t *testing.T) {
	path := t.TempDir() + "/FY2025.csv"
	content := Header + "\nFY2025-0001,2025-03-01,FY2025,Paid rent,5100,1010,2000.00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := ReadRows(f)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Paid rent", rows[0].Description)
	assert.Equal(t, "2000", rows[0].Amount.String())
}
