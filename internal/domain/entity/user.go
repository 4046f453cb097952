// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
type User struct {
	ID           uuid.UUID // Assigned at creation, never reused.
	Name         string    // Display name, never empty.
	Email        string    // Always stored in normalized form, see NormalizeEmail.
	PasswordHash string    // Self-describing password hash, never the plaintext.
	WalletMoney  float64   // Wallet balance, never negative.
	Address      string    // Delivery address.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail returns the canonical form used for storage, lookups and the
// uniqueness constraint.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
