package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, StoreMongo, cfg.Store)
	assert.Equal(t, int64(120), cfg.RateLimit)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.RedisAddr)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE", "memory")
	t.Setenv("REQUEST_TIMEOUT", "750ms")
	t.Setenv("RATE_LIMIT_PER_MIN", "10")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, int64(10), cfg.RateLimit)
}

func TestParseRejects(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Parse()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})
	t.Run("unknown store", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORE", "postgres")
		_, err := Parse()
		assert.ErrorContains(t, err, "STORE")
	})
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("REQUEST_TIMEOUT", "soon")
		_, err := Parse()
		assert.Error(t, err)
	})
}
