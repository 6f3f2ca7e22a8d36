package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("DATABASE_URL", "postgresql://localhost/samudra_test")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")
	t.Setenv("PUBLIC_BASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Equal(t, int64(10), cfg.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.True(t, cfg.IsTest())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_CustomRateLimit(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("DATABASE_URL", "postgresql://localhost/samudra_test")
	t.Setenv("RATE_LIMIT_MAX", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(3), cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoad_InvalidRateLimitFallsBack(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("DATABASE_URL", "postgresql://localhost/samudra_test")
	t.Setenv("RATE_LIMIT_MAX", "plenty")
	t.Setenv("RATE_LIMIT_WINDOW", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(10), cfg.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
}

func TestValidate_RejectsZeroRateLimit(t *testing.T) {
	cfg := &Config{
		DatabaseURL:  "postgresql://localhost/samudra_test",
		RateLimitMax: 0,
	}
	assert.Error(t, cfg.Validate())
}

func TestSetAndGetConfig(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	cfg := &Config{GoEnv: "test"}
	SetConfig(cfg)
	assert.Same(t, cfg, GetConfig())
}

func TestSetAndGetDB(t *testing.T) {
	original := GetDB()
	defer SetDB(original)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	SetDB(db)
	assert.Same(t, db, GetDB())
}
