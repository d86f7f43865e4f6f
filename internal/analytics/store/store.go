package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/analytics"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) MonthlyTotals(ctx context.Context, userID int64, since time.Time) ([]analytics.MonthTotal, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM') AS month,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)::text AS income,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)::text AS expense
		FROM transactions
		WHERE user_id = $1 AND date >= $2
		GROUP BY 1
		ORDER BY 1 ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("querying monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []analytics.MonthTotal

	for rows.Next() {
		var t analytics.MonthTotal

		var income, expense string

		if err := rows.Scan(&t.Month, &income, &expense); err != nil {
			return nil, fmt.Errorf("scanning monthly total: %w", err)
		}

		if t.Income, err = decimal.NewFromString(income); err != nil {
			return nil, fmt.Errorf("parsing income %q: %w", income, err)
		}

		if t.Expense, err = decimal.NewFromString(expense); err != nil {
			return nil, fmt.Errorf("parsing expense %q: %w", expense, err)
		}

		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly totals: %w", err)
	}

	return totals, nil
}

func (s *Store) CategoryTotals(ctx context.Context, userID int64, from, to time.Time) ([]analytics.CategoryTotal, error) {
	query := `
		SELECT c.id, c.name, c.color, COALESCE(SUM(t.amount), 0)::text AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND t.type = 'expense' AND t.date >= $2 AND t.date < $3
		GROUP BY c.id, c.name, c.color
		ORDER BY SUM(t.amount) DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying category totals: %w", err)
	}
	defer rows.Close()

	var totals []analytics.CategoryTotal

	for rows.Next() {
		var t analytics.CategoryTotal

		var total string

		if err := rows.Scan(&t.CategoryID, &t.Name, &t.Color, &total); err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}

		if t.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("parsing total %q: %w", total, err)
		}

		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category totals: %w", err)
	}

	return totals, nil
}

func (s *Store) Totals(ctx context.Context, userID int64) (analytics.Totals, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)::text,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)::text
		FROM transactions
		WHERE user_id = $1
	`

	return s.scanTotals(s.db.QueryRowContext(ctx, query, userID))
}

func (s *Store) TotalsBetween(ctx context.Context, userID int64, from, to time.Time) (analytics.Totals, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)::text,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)::text
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date < $3
	`

	return s.scanTotals(s.db.QueryRowContext(ctx, query, userID, from, to))
}

func (s *Store) scanTotals(row *sql.Row) (analytics.Totals, error) {
	var income, expense string

	if err := row.Scan(&income, &expense); err != nil {
		return analytics.Totals{}, fmt.Errorf("scanning totals: %w", err)
	}

	var t analytics.Totals

	var err error
	if t.Income, err = decimal.NewFromString(income); err != nil {
		return analytics.Totals{}, fmt.Errorf("parsing income %q: %w", income, err)
	}

	if t.Expense, err = decimal.NewFromString(expense); err != nil {
		return analytics.Totals{}, fmt.Errorf("parsing expense %q: %w", expense, err)
	}

	return t, nil
}
