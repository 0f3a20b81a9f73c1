package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contactos-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("BACKEND_BASE_URL", "http://backend.local/api")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "rest", cfg.Backend.Driver)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 2, cfg.Backend.RetryCount)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 300*time.Second, cfg.Cache.TTL)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("BACKEND_DRIVER", "MEMORY")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Backend.Driver)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 3, cfg.Cache.RedisDB)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_Errores(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "sin JWT_SECRET", env: map[string]string{"BACKEND_DRIVER": "memory"}},
		{name: "rest sin URL", env: map[string]string{"JWT_SECRET": "x"}},
		{name: "backend desconocido", env: map[string]string{"JWT_SECRET": "x", "BACKEND_DRIVER": "postgres"}},
		{name: "caché desconocida", env: map[string]string{"JWT_SECRET": "x", "BACKEND_DRIVER": "memory", "CACHE_DRIVER": "memcached"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
