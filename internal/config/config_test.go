package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViper(values map[string]interface{}) *viper.Viper {
	v := newViper()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := FromViper(testViper(map[string]interface{}{
		"JWT_SECRET": "s3cret",
		"DB_USER":    "videotube",
		"DB_NAME":    "videotube",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 72*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Contains(t, cfg.Database.DSN(), "dbname=videotube")
	assert.Contains(t, cfg.Database.DSN(), "port=5432")
}

func TestFromViperOverrides(t *testing.T) {
	cfg, err := FromViper(testViper(map[string]interface{}{
		"JWT_SECRET":   "s3cret",
		"JWT_TTL":      "15m",
		"DB_USER":      "u",
		"DB_NAME":      "n",
		"CORS_ORIGINS": "https://a.example, https://b.example,",
	}))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestFromViperMissingRequired(t *testing.T) {
	_, err := FromViper(testViper(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestFromViperRejectsNonPositiveTTL(t *testing.T) {
	_, err := FromViper(testViper(map[string]interface{}{
		"JWT_SECRET": "s",
		"JWT_TTL":    "0s",
		"DB_USER":    "u",
		"DB_NAME":    "n",
	}))
	assert.Error(t, err)
}
