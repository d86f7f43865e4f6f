// Package export renders ledger entries and statement tables as CSV, and
// imports previously-exported transaction files back into entry form.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/encoding"
	"github.com/contasmart/contasmart/internal/ledger"
	"github.com/contasmart/contasmart/internal/statement"
)

const dateFormat = "2006-01-02"

var transactionHeader = []string{"id", "date", "description", "debit_account", "credit_account", "amount"}

// WriteTransactions writes ledger entries as CSV, one row per posting,
// oldest first, with a header row.
func WriteTransactions(w io.Writer, entries []ledger.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(transactionHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(dateFormat),
			e.Description,
			e.Debit,
			e.Credit,
			e.Amount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing entry %d: %w", e.ID, err)
		}
	}

	return cw.Error()
}

// ReadTransactions parses a transactions CSV produced by WriteTransactions,
// normalizing the input to UTF-8 first. The returned entries keep the
// exported order and ids.
func ReadTransactions(r io.Reader) ([]ledger.Entry, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	cr := csv.NewReader(utf8r)
	cr.FieldsPerRecord = len(transactionHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []ledger.Entry

	for i, rec := range records[1:] {
		entry, err := parseEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func parseEntry(rec []string) (ledger.Entry, error) {
	id, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("parsing id %q: %w", rec[0], err)
	}

	date, err := time.Parse(dateFormat, rec[1])
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("parsing date %q: %w", rec[1], err)
	}

	amount, err := decimal.NewFromString(rec[5])
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("parsing amount %q: %w", rec[5], err)
	}

	return ledger.Entry{
		ID:          id,
		Date:        date,
		Description: rec[2],
		Debit:       rec[3],
		Credit:      rec[4],
		Amount:      amount,
	}, nil
}

// WriteStatementLines writes a statement's line-item table as CSV with
// columns description, value, percent-of-revenue.
func WriteStatementLines(w io.Writer, lines []statement.Line) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"description", "value", "percent_of_revenue"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range lines {
		row := []string{
			line.Description,
			line.Value.StringFixed(2),
			line.PercentOfRevenue.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	return cw.Error()
}
