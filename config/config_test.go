package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASS", "pass")
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")

	cfg := Load()
	require.Equal(t, "5000", cfg.Port)
	require.Contains(t, cfg.MongoURI, "mongodb+srv://user:pass@")
	require.Equal(t, 10*time.Hour, cfg.TokenTTL)
	require.Empty(t, cfg.AccessTokenSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "s3cret", cfg.AccessTokenSecret)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoadBadTTLFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "soon")

	cfg := Load()
	require.Equal(t, 10*time.Hour, cfg.TokenTTL)
}
