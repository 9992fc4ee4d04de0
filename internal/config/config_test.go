package config_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/northborne-storefront/internal/config"
	"github.com/DanielPopoola/northborne-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, domain.EnvironmentSandbox, cfg.Primary.Env)
	assert.Equal(t, "4242", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Server.BaseURL)
	assert.Equal(t, 25*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "00012345678", cfg.CIMB.SettlementAccount)
	assert.Equal(t, 10*time.Second, cfg.CIMB.ConnTimeout)
	assert.Equal(t, 30*time.Second, cfg.Stripe.Timeout)
	assert.False(t, cfg.Stripe.Configured())
	assert.False(t, cfg.CIMB.Configured())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_PRIMARY__ENV", "production")
	t.Setenv("STOREFRONT_SERVER__PORT", "8080")
	t.Setenv("STOREFRONT_SERVER__BASE_URL", "https://shop.example.com")
	t.Setenv("STOREFRONT_SERVER__ALLOWED_ORIGINS", "https://shop.example.com,https://www.example.com")
	t.Setenv("STOREFRONT_STRIPE__SECRET_KEY", "sk_test_123")
	t.Setenv("STOREFRONT_CIMB__CLIENT_ID", "client")
	t.Setenv("STOREFRONT_CIMB__CLIENT_SECRET", "secret")
	t.Setenv("STOREFRONT_CIMB__CONN_TIMEOUT", "3s")
	t.Setenv("STOREFRONT_STRIPE__TIMEOUT", "7s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, domain.EnvironmentProduction, cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://shop.example.com", cfg.Server.BaseURL)
	assert.Equal(t, []string{"https://shop.example.com", "https://www.example.com"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Stripe.Configured())
	assert.False(t, cfg.Stripe.IsPlaceholder())
	assert.True(t, cfg.CIMB.Configured())
	assert.Equal(t, 3*time.Second, cfg.CIMB.ConnTimeout)
	assert.Equal(t, 7*time.Second, cfg.Stripe.Timeout)
}

func TestLoadConfig_FailsFast(t *testing.T) {
	t.Run("unknown environment", func(t *testing.T) {
		t.Setenv("STOREFRONT_PRIMARY__ENV", "staging")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("malformed base url", func(t *testing.T) {
		t.Setenv("STOREFRONT_SERVER__BASE_URL", "not a url")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("non numeric port", func(t *testing.T) {
		t.Setenv("STOREFRONT_SERVER__PORT", "http")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}

func TestCIMBConfig_Endpoint(t *testing.T) {
	cfg := config.CIMBConfig{}

	assert.Equal(t, "https://sandbox.apiconnect.cimb.com", cfg.Endpoint(domain.EnvironmentSandbox))
	assert.Equal(t, "https://api.apiconnect.cimb.com", cfg.Endpoint(domain.EnvironmentProduction))

	cfg.BaseURL = "http://127.0.0.1:9000/"
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Endpoint(domain.EnvironmentProduction))
}

func TestStripeConfig_IsPlaceholder(t *testing.T) {
	assert.True(t, config.StripeConfig{}.IsPlaceholder())
	assert.True(t, config.StripeConfig{SecretKey: config.StripePlaceholderKey}.IsPlaceholder())
	assert.False(t, config.StripeConfig{SecretKey: "sk_live_abc"}.IsPlaceholder())
}
