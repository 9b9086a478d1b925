// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Account is a persisted account as returned by the account repository.
// Password always holds the hashed value, never the plaintext.
type Account struct {
	ID       string // Assigned by the repository.
	Name     string // The account holder's display name.
	Email    string // The contact email used as the login identifier.
	Password string // Opaque hash produced by a PasswordHasher.
}

// HashedAccount is the record handed to the repository when an account is created.
// It mirrors the creation request with the plaintext password replaced by its hash.
type HashedAccount struct {
	Name     string
	Email    string
	Password string
}
