package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	WalletMoney  Money
	Address      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSetNonDefaultAddress reports whether the user replaced the sentinel address.
func (u User) HasSetNonDefaultAddress(defaults Defaults) bool {
	return u.Address != defaults.Address
}

// NormalizeEmail makes emails case-insensitive keys.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
