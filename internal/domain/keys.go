package domain

import "context"

type CtxKey string

const (
	KeyAuth      CtxKey = "Auth"
	KeyRequestID CtxKey = "RequestID"
)

// WithAuth returns a copy of ctx carrying the verified token claims of the caller.
func WithAuth(ctx context.Context, claims *TokenClaims) context.Context {
	return context.WithValue(ctx, KeyAuth, claims)
}

// AuthFromContext returns the claims stored by WithAuth.
func AuthFromContext(ctx context.Context) (*TokenClaims, bool) {
	claims, ok := ctx.Value(KeyAuth).(*TokenClaims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
