package middleware

import (
	"errors"
	"net/http"
	"strings"

	"recruitment-api/internal/delivery/http/response"
	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"
	"recruitment-api/pkg/audit"

	"github.com/gin-gonic/gin"
)

const (
	msgNoToken      = "Access denied. No token provided"
	msgInvalidToken = "Invalid token"
	msgUnauthorized = "Unauthorized"
)

// AuthMiddleware verifies the bearer token and stores its claims on both the
// gin context and the request context.
func AuthMiddleware(tokens domain.TokenService, auditLogger *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, msgNoToken)
			return
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			response.Abort(c, http.StatusUnauthorized, msgNoToken)
			return
		}
		if !strings.EqualFold(scheme, "Bearer") {
			auditLogger.TokenRejected(c.Request.Context(), "wrong_scheme")
			response.Abort(c, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			auditLogger.TokenRejected(c.Request.Context(), err.Error())
			response.Abort(c, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		c.Set(string(domain.KeyAuth), claims)
		c.Request = c.Request.WithContext(domain.WithAuth(c.Request.Context(), claims))

		c.Next()
	}
}

// RequireRole lets the request through only when domain.Authorize accepts the caller.
// It must run after AuthMiddleware.
func RequireRole(role domain.Role, auditLogger *audit.Logger) gin.HandlerFunc {
	forbidden := apperror.Forbidden("Access forbidden: " + roleAudience(role))
	unauthorized := apperror.Unauthorized(msgUnauthorized)

	return func(c *gin.Context) {
		claims, _ := AuthFromContext(c)

		err := domain.Authorize(claims, role)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, domain.ErrNoAuthContext):
			response.AbortWithError(c, unauthorized)
		default:
			auditLogger.AccessForbidden(c.Request.Context(), claims.ID, role.String())
			response.AbortWithError(c, forbidden)
		}
	}
}

// AuthFromContext returns the claims stored by AuthMiddleware.
func AuthFromContext(c *gin.Context) (*domain.TokenClaims, bool) {
	value, ok := c.Get(string(domain.KeyAuth))
	if !ok {
		return nil, false
	}
	claims, ok := value.(*domain.TokenClaims)
	return claims, ok && claims != nil
}

func roleAudience(role domain.Role) string {
	switch role {
	case domain.RoleRecruiter:
		return "Recruiters only"
	case domain.RoleCandidate:
		return "Candidates only"
	}
	return role.String() + " only"
}
