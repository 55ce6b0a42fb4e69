package ports

// PasswordHasher is the one-way credential hashing primitive. Implementations
// must salt and never log or return the plaintext.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
