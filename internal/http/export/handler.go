package export

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/contasmart/contasmart/internal/export"
	"github.com/contasmart/contasmart/internal/http/api"
	"github.com/contasmart/contasmart/internal/ledger"
	"github.com/contasmart/contasmart/internal/statement"
)

// EntrySource hands out the ledger entries to serialize. The accounting
// handler implements it with its own locking.
type EntrySource interface {
	Entries() []ledger.Entry
}

type Handler struct {
	entries EntrySource
}

func NewHandler(entries EntrySource) *Handler {
	return &Handler{entries: entries}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions.csv", h.transactions)
	r.Post("/statement.csv", h.statement)
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"", time.Now().Format("20060102")))

	if err := export.WriteTransactions(w, h.entries.Entries()); err != nil {
		api.Err(w, err)
	}
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	var in statement.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := statement.Compute(in)
	if err != nil {
		api.Err(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"dre_%s.csv\"", time.Now().Format("20060102")))

	if err := export.WriteStatementLines(w, result.Lines); err != nil {
		api.Err(w, err)
	}
}
