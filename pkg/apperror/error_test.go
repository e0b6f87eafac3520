package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"recruitment-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *apperror.AppError
		code int
		kind apperror.Kind
	}{
		{"bad request", apperror.BadRequest("Fill in all fields"), http.StatusBadRequest, apperror.KindValidation},
		{"unauthorized", apperror.Unauthorized("Invalid token"), http.StatusUnauthorized, apperror.KindUnauthenticated},
		{"forbidden", apperror.Forbidden("nope"), http.StatusForbidden, apperror.KindForbidden},
		{"conflict", apperror.Conflict("Email already taken"), http.StatusBadRequest, apperror.KindConflict},
		{"not found", apperror.NotFound("Candidate not found"), http.StatusNotFound, apperror.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.err.Message, tt.err.Error())
		})
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := apperror.Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, apperror.InternalMessage, err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", apperror.Conflict("User already taken"))

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(wrapped))
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(errors.New("boom")))
}
