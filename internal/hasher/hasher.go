// Package hasher hashes and verifies the passwords of registered hosts.
package hasher

import "errors"

//go:generate mockgen -destination=../mocks/mock_hasher.go -package=mocks . Hasher

// Hasher turns cleartext passwords into self-describing hash strings.
type Hasher interface {
	// Hash hashes a password with a fresh salt and the current parameters.
	Hash(password string) (string, error)

	// Verify checks a password against a hash produced by Hash,
	// possibly with older parameters. A mismatch is (false, nil).
	Verify(hash, password string) (bool, error)

	// NeedsRehash tells whether the hash was produced with parameters
	// different from the current ones.
	NeedsRehash(hash string) bool
}

// ErrInvalidHash means a stored hash string could not be parsed.
var ErrInvalidHash = errors.New("invalid password hash")
