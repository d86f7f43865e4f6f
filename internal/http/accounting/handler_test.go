package accounting_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasmart/contasmart/internal/http/accounting"
	"github.com/contasmart/contasmart/internal/ledger"
)

type storeStub struct {
	saves int
}

func (s *storeStub) Save(*ledger.Ledger) error {
	s.saves++
	return nil
}

func TestPostEntry_DefaultsToDateOnly(t *testing.T) {
	store := &storeStub{}
	h := accounting.NewHandler(ledger.New(), store)

	r := chi.NewRouter()
	r.Route("/ledger", h.Routes)

	body := `{"description":"venda à vista","debit":"cash","credit":"sales","amount":150}`

	req := httptest.NewRequest(http.MethodPost, "/ledger/entries", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, store.saves)

	entries := h.Entries()
	require.Len(t, entries, 1)

	// The defaulted date carries no time of day, so exporting and
	// re-importing the entry keeps the same instant.
	got := entries[0].Date
	assert.Zero(t, got.Hour())
	assert.Zero(t, got.Minute())
	assert.Zero(t, got.Second())
	assert.Zero(t, got.Nanosecond())
}

func TestPostEntry_ExplicitDate(t *testing.T) {
	h := accounting.NewHandler(ledger.New(), &storeStub{})

	r := chi.NewRouter()
	r.Route("/ledger", h.Routes)

	body := `{"date":"2024-03-15","description":"aluguel","debit":"rent","credit":"cash","amount":2500}`

	req := httptest.NewRequest(http.MethodPost, "/ledger/entries", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	entries := h.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-03-15", entries[0].Date.Format("2006-01-02"))
}
