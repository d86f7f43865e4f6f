package accounting

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/http/api"
	"github.com/contasmart/contasmart/internal/ledger"
	"github.com/contasmart/contasmart/internal/report"
	"github.com/contasmart/contasmart/internal/statement"
)

// Handler owns the ledger instance and serializes access to it. The ledger
// itself is not safe for concurrent use.
type Handler struct {
	mu    sync.Mutex
	book  *ledger.Ledger
	store Store
}

// Store persists the ledger between requests.
type Store interface {
	Save(l *ledger.Ledger) error
}

func NewHandler(book *ledger.Ledger, store Store) *Handler {
	return &Handler{book: book, store: store}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/entries", h.postEntry)
	r.Get("/entries", h.listEntries)
	r.Get("/accounts", h.listAccounts)
	r.Put("/entity", h.setEntity)
	r.Get("/balance-sheet", h.balanceSheet)
	r.Post("/statements/income", h.incomeStatement)
	r.Post("/balance-sheet/summary", h.balanceSummary)
}

// Entries returns a copy of the posting history for other handlers, such as
// the CSV export.
func (h *Handler) Entries() []ledger.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.book.Entries()
}

type entryResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       string          `json:"debit"`
	Credit      string          `json:"credit"`
	Amount      decimal.Decimal `json:"amount"`
}

func toEntryResponse(e ledger.Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		Date:        e.Date.Format(time.DateOnly),
		Description: e.Description,
		Debit:       e.Debit,
		Credit:      e.Credit,
		Amount:      e.Amount,
	}
}

type postEntryRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       string          `json:"debit"`
	Credit      string          `json:"credit"`
	Amount      decimal.Decimal `json:"amount"`
}

func (h *Handler) postEntry(w http.ResponseWriter, r *http.Request) {
	var req postEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Entry dates are date-only; a defaulted date must survive the CSV
	// export round trip unchanged.
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		date = parsed
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entry, err := h.book.Post(date, req.Description, req.Debit, req.Credit, req.Amount)
	if err != nil {
		api.Err(w, err)
		return
	}

	if err := h.store.Save(h.book); err != nil {
		api.Err(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toEntryResponse(entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	entries := h.book.Entries()
	h.mu.Unlock()

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type accountResponse struct {
	Name     string          `json:"name"`
	Category ledger.Category `json:"category"`
	Group    ledger.Group    `json:"group,omitempty"`
	Kind     ledger.Kind     `json:"kind"`
	Balance  decimal.Decimal `json:"balance"`
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	accounts := h.book.Accounts()
	h.mu.Unlock()

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = accountResponse{
			Name:     a.Name,
			Category: a.Category,
			Group:    a.Group,
			Kind:     a.Kind,
			Balance:  a.Balance,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type entityRequest struct {
	Name   string `json:"name"`
	TaxID  string `json:"tax_id"`
	Period string `json:"period"`
}

func (h *Handler) setEntity(w http.ResponseWriter, r *http.Request) {
	var req entityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.book.SetEntity(req.Name, req.TaxID, req.Period)

	if err := h.store.Save(h.book); err != nil {
		api.Err(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) balanceSheet(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	sheet, err := report.FromLedger(h.book)
	h.mu.Unlock()

	if err != nil {
		api.Err(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(sheet); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) incomeStatement(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) balanceSummary(w http.ResponseWriter, r *http.Request) {
	var in report.SummaryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary := report.Summarize(in)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
