package ports

import "github.com/99minutos/auth-service/internal/core/domain"

// PasswordHasher derives and checks salted one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs a claim set into an expiring bearer token.
type TokenIssuer interface {
	Issue(claims domain.Claims) (string, error)
}

// TokenVerifier recovers the claim set from a bearer token. Any failure
// (bad signature, malformed input, expiry) is reported as domain.ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
