// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
// Implementations must not hold locks while hashing.
type PasswordHasher interface {
	// Hash generates a salted, self-describing hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify compares a plaintext password with a hash.
	// A mismatch is (false, nil); an error means the stored hash is malformed.
	Verify(password, hash string) (bool, error)
}
