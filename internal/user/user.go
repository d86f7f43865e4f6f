package user

import "time"

// User is an account holder. PasswordHash never leaves the service layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Avatar       string
	Theme        string
	Currency     string
	Language     string
	CreatedAt    time.Time
}
