package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Redis:  RedisConfig{AsynqAddr: "localhost:6380", CacheAddr: "localhost:6381"},
		Worker: WorkerConfig{Concurrency: 1, MaxRetry: 3, TimeoutSec: 30, CheckIntervalSec: 5},
		Cache:  CacheConfig{IdempotencyTTLSec: 60},
		Orders: OrdersConfig{USDToTWDRate: 31, PriceCeiling: 2000},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := validConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("collects every problem", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Port = 0
		cfg.Redis.CacheAddr = ""
		cfg.Orders.USDToTWDRate = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
		assert.Contains(t, err.Error(), "redis.cache_addr")
		assert.Contains(t, err.Error(), "orders.usd_twd_rate")
	})

	t.Run("negative ceiling", func(t *testing.T) {
		cfg := validConfig()
		cfg.Orders.PriceCeiling = -1
		assert.ErrorContains(t, cfg.Validate(), "orders.price_ceiling")
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(31), cfg.Orders.USDToTWDRate)
	assert.Equal(t, int64(2000), cfg.Orders.PriceCeiling)
	assert.False(t, cfg.Orders.CollapsePriceErrors)
	assert.Equal(t, 86400, cfg.Cache.IdempotencyTTLSec)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ORDERSVC_SERVER_PORT", "9090")
	t.Setenv("ORDERSVC_ORDERS_USD_TWD_RATE", "32")
	t.Setenv("ORDERSVC_ORDERS_COLLAPSE_PRICE_ERRORS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(32), cfg.Orders.USDToTWDRate)
	assert.True(t, cfg.Orders.CollapsePriceErrors)
}
