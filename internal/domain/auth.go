package domain

import "errors"

var (
	ErrNoAuthContext = errors.New("request is not authenticated")
	ErrRoleForbidden = errors.New("role not allowed")
)

// TokenClaims is the decoded payload of a verified bearer token.
type TokenClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

type TokenService interface {
	Issue(claims TokenClaims) (string, error)
	Verify(token string) (*TokenClaims, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// Authorize is the single authorization policy: the caller must be
// authenticated and hold the required role.
func Authorize(auth *TokenClaims, required Role) error {
	if auth == nil {
		return ErrNoAuthContext
	}
	if auth.Role != required {
		return ErrRoleForbidden
	}
	return nil
}
