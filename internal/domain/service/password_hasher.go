// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash turns a plaintext password into an opaque hashed value.
	// Failures are reported as *errors.HashingError from the domain errors package.
	Hash(password string) (string, error)
}
