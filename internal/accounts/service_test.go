package accounts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerview/internal/model"
)

func TestNewService(t *testing.T) {
	chart := DefaultChart(TemplateTrading)
	svc := NewService(chart)

	assert.Len(t, svc.All(), len(chart))
	assert.Len(t, svc.Names(), len(chart))
	assert.Equal(t, chart[0].Name, svc.Names()[0])
}

func TestGetExists(t *testing.T) {
	svc := NewService(DefaultChart(TemplateTrading))

	acct, ok := svc.Get(1010)
	assert.True(t, ok)
	assert.Equal(t, "Cash", acct.Name)

	_, ok = svc.Get(9999)
	assert.False(t, ok)

	assert.True(t, svc.Exists(1010))
	assert.False(t, svc.Exists(9999))
}

func TestByName(t *testing.T) {
	svc := NewService(DefaultChart(TemplateTrading))

	acct, err := svc.ByName("  rent expense ")
	require.NoError(t, err)
	assert.Equal(t, 5100, acct.ID)

	_, err = svc.ByName("Petty Cash")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAccount))
	assert.Contains(t, err.Error(), "Petty Cash")
}

func TestByCategory(t *testing.T) {
	svc := NewService(DefaultChart(TemplateTrading))

	liabilities := svc.ByCategory(model.CategoryLiability)
	assert.Len(t, liabilities, 2, "expected Accounts Payable + Bank Loan")
	for _, a := range liabilities {
		assert.Equal(t, model.CategoryLiability, a.Category)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening chart of accounts")
}

func TestSaveRoundTrip(t *testing.T) {
	chart := DefaultChart(TemplateServices)
	svc := NewService(chart)

	dir := t.TempDir()
	err := svc.Save(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)

	svc2, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, svc2.All(), len(chart))

	for _, orig := range chart {
		got, ok := svc2.Get(orig.ID)
		require.True(t, ok, "account %d should exist", orig.ID)
		assert.Equal(t, orig.Name, got.Name)
		assert.Equal(t, orig.Category, got.Category)
		assert.Equal(t, orig.SubCategory, got.SubCategory)
	}
}
