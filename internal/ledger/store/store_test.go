package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasmart/contasmart/internal/ledger"
	"github.com/contasmart/contasmart/internal/ledger/store"
)

func TestLoad_MissingFileReturnsFreshLedger(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "ledger.json"))

	l, err := s.Load()
	require.NoError(t, err)

	assert.Empty(t, l.Entries())
	assert.Nil(t, l.Entity())

	b, err := l.BalanceOf("cash")
	require.NoError(t, err)
	assert.True(t, b.IsZero())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ledger.json")
	s := store.New(path)

	l := ledger.New()
	l.SetEntity("ContaSmart LTDA", "12.345.678/0001-90", "2024")

	date := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	_, err := l.Post(date, "capital", "cash", "share_capital", decimal.NewFromInt(900))
	require.NoError(t, err)
	_, err = l.Post(date, "sale", "banks", "sales", decimal.RequireFromString("150.75"))
	require.NoError(t, err)

	require.NoError(t, s.Save(l))

	restored, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, l.Entries(), restored.Entries())
	assert.Equal(t, l.Entity(), restored.Entity())

	b, err := restored.BalanceOf("banks")
	require.NoError(t, err)
	assert.True(t, b.Equal(decimal.RequireFromString("150.75")))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := store.New(filepath.Join(dir, "ledger.json"))

	require.NoError(t, s.Save(ledger.New()))
	require.NoError(t, s.Save(ledger.New()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ledger.json", entries[0].Name())
}

func TestLoad_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.New(path).Load()
	assert.Error(t, err)
}
