package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/goal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectGoalColumns = `
	id, user_id, title, description, target_amount::text, current_amount::text, deadline, priority, completed, created_at
`

func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	var target, current string

	if err := s.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &target, &current,
		&g.Deadline, &g.Priority, &g.Completed, &g.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if g.TargetAmount, err = decimal.NewFromString(target); err != nil {
		return nil, fmt.Errorf("parsing target amount %q: %w", target, err)
	}

	if g.CurrentAmount, err = decimal.NewFromString(current); err != nil {
		return nil, fmt.Errorf("parsing current amount %q: %w", current, err)
	}

	return &g, nil
}

func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (user_id, title, description, target_amount, current_amount, deadline, priority, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.UserID, g.Title, g.Description,
		g.TargetAmount.String(), g.CurrentAmount.String(),
		g.Deadline, string(g.Priority), g.Completed,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, userID, id int64) (*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	return g, nil
}

func (s *Store) ListGoals(ctx context.Context, userID int64) ([]*goal.Goal, error) {
	// Open goals first, urgent ones on top.
	query := `SELECT ` + selectGoalColumns + `
		FROM goals
		WHERE user_id = $1
		ORDER BY completed ASC,
			CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END,
			created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal rows: %w", err)
	}

	return goals, nil
}

func (s *Store) UpdateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		UPDATE goals
		SET title = $1, description = $2, target_amount = $3, current_amount = $4, deadline = $5, priority = $6, completed = $7
		WHERE id = $8 AND user_id = $9
	`

	res, err := s.db.ExecContext(ctx, query,
		g.Title, g.Description,
		g.TargetAmount.String(), g.CurrentAmount.String(),
		g.Deadline, string(g.Priority), g.Completed, g.ID, g.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return goal.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return goal.ErrNotFound
	}

	return nil
}
