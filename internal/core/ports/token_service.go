package ports

// TokenClaims is the identity carried by a verified bearer token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// TokenService issues and verifies signed, time-bound identity tokens.
// Verification is pure: it checks signature and expiry only and never
// consults the store, so a token stays valid for its full lifetime even if
// the account changes underneath it.
type TokenService interface {
	// Issue signs a token carrying the given identity. The token lifetime is
	// fixed by the implementation.
	Issue(userID, email, role string) (string, error)
	// Verify parses and validates a token. Any signature, structure, or
	// expiry failure is reported as domain.ErrInvalidToken.
	Verify(token string) (*TokenClaims, error)
}
