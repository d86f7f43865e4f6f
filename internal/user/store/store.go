package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/contasmart/contasmart/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const uniqueViolation = "23505"

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (username, email, password, full_name, avatar, theme, currency, language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Username, u.Email, u.PasswordHash, u.FullName, u.Avatar, u.Theme, u.Currency, u.Language,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrDuplicate
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

const selectUserColumns = `
	id, username, email, password, full_name, avatar, theme, currency, language, created_at
`

func scanUser(row *sql.Row) (*user.User, error) {
	var u user.User

	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName,
		&u.Avatar, &u.Theme, &u.Currency, &u.Language, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`

	return scanUser(s.db.QueryRowContext(ctx, query, id))
}

func (s *Store) GetUserByLogin(ctx context.Context, usernameOrEmail string) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE username = $1 OR email = $1`

	return scanUser(s.db.QueryRowContext(ctx, query, usernameOrEmail))
}

func (s *Store) UpdateProfile(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET full_name = $1, theme = $2, currency = $3, language = $4
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query, u.FullName, u.Theme, u.Currency, u.Language, u.ID)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}

	return nil
}
