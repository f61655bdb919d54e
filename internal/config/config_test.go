package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv задает обязательные параметры партнера
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MOMO_PARTNER_CODE", "MOMO")
	t.Setenv("MOMO_ACCESS_KEY", "F8BBA842ECF85")
	t.Setenv("MOMO_SECRET_KEY", "K951B6PE1waDMi640xX08PD3vg6EkVlz")
	t.Setenv("MOMO_REDIRECT_URL", "http://localhost:8080/api/payments/momo/return")
	t.Setenv("MOMO_IPN_URL", "http://localhost:8080/api/payments/momo/ipn")
}

func TestLoadFromArgs_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFromArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.RunAddress)
	assert.Empty(t, cfg.DatabaseURI)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.JWTTokenTTL)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, "captureWallet", cfg.MoMo.RequestType)
	assert.Equal(t, "vi", cfg.MoMo.Lang)
	assert.Equal(t, 30*time.Second, cfg.MoMo.Timeout)
	assert.Equal(t, 3, cfg.MoMo.QueryRetries)
	assert.Equal(t, int64(200), cfg.UnitPrice)
	assert.Equal(t, int64(1000), cfg.MinAmount)
	assert.Equal(t, int64(50000000), cfg.MaxAmount)
	assert.Equal(t, int64(1), cfg.OrderNodeID)
	assert.Equal(t, 2, cfg.Sweep.Workers)
	assert.Equal(t, 100, cfg.Sweep.QueueSize)
	assert.Equal(t, time.Minute, cfg.Sweep.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Sweep.QueryAfter)
	assert.Equal(t, 100, cfg.Sweep.BatchSize)
}

func TestLoadFromArgs_Flags(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFromArgs([]string{"-a", ":9090", "-d", "postgres://flag@localhost/db", "-m", "http://momo.local"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.RunAddress)
	assert.Equal(t, "postgres://flag@localhost/db", cfg.DatabaseURI)
	assert.Equal(t, "http://momo.local", cfg.MoMo.Endpoint)
}

func TestLoadFromArgs_EnvOverridesFlags(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RUN_ADDRESS", ":7070")
	t.Setenv("DATABASE_URI", "postgres://env@localhost/db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "my-secret")
	t.Setenv("UNIT_PRICE", "0")
	t.Setenv("SWEEP_WORKERS", "5")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("MOMO_TIMEOUT", "5s")

	cfg, err := LoadFromArgs([]string{"-a", ":9090", "-d", "postgres://flag@localhost/db"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.RunAddress)
	assert.Equal(t, "postgres://env@localhost/db", cfg.DatabaseURI)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "my-secret", cfg.JWTSecret)
	assert.Equal(t, int64(0), cfg.UnitPrice)
	assert.Equal(t, 5, cfg.Sweep.Workers)
	assert.Equal(t, 30*time.Second, cfg.Sweep.Interval)
	assert.Equal(t, 5*time.Second, cfg.MoMo.Timeout)
	assert.Equal(t, "MOMO", cfg.MoMo.PartnerCode)
}

func TestLoadFromArgs_Errors(t *testing.T) {
	t.Run("Missing partner credentials", func(t *testing.T) {
		t.Setenv("MOMO_PARTNER_CODE", "")
		t.Setenv("MOMO_SECRET_KEY", "")

		_, err := LoadFromArgs(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MOMO_PARTNER_CODE is required")
		assert.Contains(t, err.Error(), "MOMO_SECRET_KEY is required")
	})

	t.Run("Invalid amount range", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("MIN_AMOUNT", "5000")
		t.Setenv("MAX_AMOUNT", "1000")

		_, err := LoadFromArgs(nil)
		assert.Error(t, err)
	})

	t.Run("Malformed duration", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SWEEP_INTERVAL", "soon")

		_, err := LoadFromArgs(nil)
		assert.Error(t, err)
	})

	t.Run("Unknown flag", func(t *testing.T) {
		setRequiredEnv(t)

		_, err := LoadFromArgs([]string{"-x"})
		assert.Error(t, err)
	})
}
