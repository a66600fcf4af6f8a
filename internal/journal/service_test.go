package journal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerview/internal/model"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	return NewService(dir, defaultAccounts, zerolog.Nop()), dir
}

func rentParams(day int, amount string) AddEntryParams {
	return AddEntryParams{
		Date:          date(2025, 1, day),
		FinancialYear: "FY2025",
		Draft:         draft("Paid rent", "Rent Expense", "Cash", amount),
	}
}

func TestAddEntry_NewYear(t *testing.T) {
	svc, dir := newTestService(t)

	entryID, err := svc.AddEntry(rentParams(15, "2000"))
	require.NoError(t, err)
	assert.Equal(t, "FY2025-0001", entryID)

	_, err = os.Stat(filepath.Join(dir, "journal", "FY2025.csv"))
	require.NoError(t, err)

	entries, err := svc.Entries("FY2025")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Rent Expense", entries[0].DebitAccount.Name)
	assert.Equal(t, model.CategoryExpense, entries[0].DebitAccount.Category)
	assert.Equal(t, "Cash", entries[0].CreditAccount.Name)
	assert.True(t, entries[0].Amount.Equal(dec("2000")))
	assert.Equal(t, "FY2025", entries[0].FinancialYear)
}

func TestAddEntry_ExistingYear(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddEntry(rentParams(10, "10.00"))
	require.NoError(t, err)

	entryID, err := svc.AddEntry(rentParams(20, "20.00"))
	require.NoError(t, err)
	assert.Equal(t, "FY2025-0002", entryID)

	rows, err := svc.ReadYear("FY2025")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestAddEntry_ValidatorRejects(t *testing.T) {
	svc, _ := newTestService(t)

	params := rentParams(15, "50.00")
	params.Draft.DebitAccount = "Unknown Debit"

	_, err := svc.AddEntry(params)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEntry))
	assert.Contains(t, err.Error(), MsgInvalidDebit)

	rows, err := svc.ReadYear("FY2025")
	require.NoError(t, err)
	assert.Empty(t, rows, "nothing written")
}

func TestAddEntry_InvariantRejects(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddEntry(rentParams(15, "10.555"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "invariant 6")
}

func TestAddEntry_RequiresYear(t *testing.T) {
	svc, _ := newTestService(t)

	params := rentParams(15, "10")
	params.FinancialYear = ""
	_, err := svc.AddEntry(params)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEntry))
}

func TestAddEntry_NotifiesSubscribers(t *testing.T) {
	svc, _ := newTestService(t)

	var changed []string
	svc.Subscribe(func(fy string) { changed = append(changed, fy) })

	_, err := svc.AddEntry(rentParams(1, "1"))
	require.NoError(t, err)

	params := rentParams(2, "0")
	_, err = svc.AddEntry(params)
	require.Error(t, err)

	assert.Equal(t, []string{"FY2025"}, changed, "only successful appends notify")
}

func TestAddEntry_Logs(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService(t.TempDir(), defaultAccounts, zerolog.New(&buf).Level(zerolog.DebugLevel))

	_, err := svc.AddEntry(rentParams(3, "12"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"entry_id":"FY2025-0001"`)
	assert.Contains(t, buf.String(), "journal entry appended")
}

func TestNextEntrySeq(t *testing.T) {
	svc, _ := newTestService(t)

	seq, err := svc.NextEntrySeq("FY2025")
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	_, err = svc.AddEntry(rentParams(1, "1.00"))
	require.NoError(t, err)

	seq, err = svc.NextEntrySeq("FY2025")
	require.NoError(t, err)
	assert.Equal(t, 2, seq)
}

func TestYearsAndAllEntries(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddEntry(rentParams(1, "1"))
	require.NoError(t, err)

	older := rentParams(1, "5")
	older.FinancialYear = "FY2024"
	older.Date = date(2024, 6, 1)
	_, err = svc.AddEntry(older)
	require.NoError(t, err)

	years, err := svc.Years()
	require.NoError(t, err)
	assert.Equal(t, []string{"FY2024", "FY2025"}, years)

	all, err := svc.Entries("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "FY2024-0001", all[0].ID)
}

func TestEntries_UnknownAccountInFile(t *testing.T) {
	svc, dir := newTestService(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "journal"), 0o755))
	content := Header + "\nFY2025-0001,2025-01-01,FY2025,Ghost,4242,1010,1.00\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "journal", "FY2025.csv"), []byte(content), 0o644))

	_, err := svc.Entries("FY2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown debit account 4242")
}

func TestReadYear_NonExistent(t *testing.T) {
	svc, _ := newTestService(t)

	rows, err := svc.ReadYear("FY2030")
	require.NoError(t, err)
	assert.Empty(t, rows)

	years, err := svc.Years()
	require.NoError(t, err)
	assert.Empty(t, years)
}
