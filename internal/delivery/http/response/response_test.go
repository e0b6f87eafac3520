package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"recruitment-api/internal/delivery/http/response"
	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, response.Response, bool) {
	t.Helper()

	reached := false
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		c.Set(string(domain.KeyRequestID), "req-1")
		c.Next()
	}, handler, func(c *gin.Context) {
		reached = true
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body, reached
}

func TestAbortWithError(t *testing.T) {
	t.Run("Should render the status and message of a client error", func(t *testing.T) {
		w, body, reached := serve(t, func(c *gin.Context) {
			response.AbortWithError(c, apperror.Forbidden("Access forbidden: Recruiters only"))
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, body.Success)
		assert.Equal(t, "Access forbidden: Recruiters only", body.Message)
		assert.Equal(t, "req-1", body.RequestID)
		assert.False(t, reached)
	})

	t.Run("Should hide the cause of an internal error", func(t *testing.T) {
		w, body, _ := serve(t, func(c *gin.Context) {
			response.AbortWithError(c, apperror.Internal(errors.New("pq: connection refused")))
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, apperror.InternalMessage, body.Message)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestSuccess(t *testing.T) {
	w, body, reached := serve(t, func(c *gin.Context) {
		response.Success(c, http.StatusCreated, "Created", gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "req-1", body.RequestID)
	assert.True(t, reached)
}
