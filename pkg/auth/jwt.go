package auth

import (
	"errors"
	"fmt"
	"time"

	"recruitment-api/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the wire format of access tokens.
type Claims struct {
	AccountID string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 access tokens with a shared secret.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *JWTService) Issue(c domain.TokenClaims) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AccountID: c.ID,
		Email:     c.Email,
		Role:      string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*domain.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.AccountID == "" {
		return nil, errors.New("token has no id claim")
	}

	// Unknown role strings are dropped rather than trusted.
	role, _ := domain.ParseRole(claims.Role)

	return &domain.TokenClaims{
		ID:    claims.AccountID,
		Email: claims.Email,
		Role:  role,
	}, nil
}
