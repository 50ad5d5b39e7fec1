package ports

// PasswordHasher hashes and verifies password credentials. The hash is the
// only form in which a password is ever stored or compared.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	// Returns a non-nil error on mismatch.
	Compare(hash, password string) error
}
