package domain

import (
	"errors"
	"time"
)

// User represents an acting user. Identity is consumed, not owned, by the
// ledger core: the engine only ever sees a user ID that has already been
// authenticated.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
