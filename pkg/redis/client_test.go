package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("Should require URL", func(t *testing.T) {
		_, err := Options(Config{})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("Should default port and read password from URL", func(t *testing.T) {
		opts, err := Options(Config{URL: "redis://:pw@cache.internal"})
		require.NoError(t, err)
		assert.Equal(t, "cache.internal:6379", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Nil(t, opts.TLSConfig)
	})

	t.Run("Should enable TLS for rediss and prefer explicit password", func(t *testing.T) {
		opts, err := Options(Config{URL: "rediss://:pw@cache.internal:6380", Password: "explicit"})
		require.NoError(t, err)
		assert.Equal(t, "cache.internal:6380", opts.Addr)
		assert.Equal(t, "explicit", opts.Password)
		assert.NotNil(t, opts.TLSConfig)
	})

	t.Run("Should reject other schemes", func(t *testing.T) {
		_, err := Options(Config{URL: "http://cache.internal"})
		assert.Error(t, err)
	})
}
