package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Backend BackendConfig
	Cache   CacheConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig validación de los Bearer tokens emitidos por el servicio de identidad.
type JWTConfig struct {
	Secret string
	Issuer string
}

// BackendConfig origen de personas, contactos y categorías.
// Driver "rest" usa BaseURL; "memory" levanta un almacén local con categorías base.
type BackendConfig struct {
	Driver     string
	BaseURL    string
	Token      string
	Timeout    time.Duration
	RetryCount int
}

// CacheConfig caché de la tabla de categorías: "memory" (por proceso) o "redis" (compartida).
type CacheConfig struct {
	Driver        string
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, CACHE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "contactos-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "contactos-api"),
		},
		Backend: BackendConfig{
			Driver:     strings.ToLower(getString(v, "BACKEND_DRIVER", "rest")),
			BaseURL:    getString(v, "BACKEND_BASE_URL", ""),
			Token:      getString(v, "BACKEND_TOKEN", ""),
			Timeout:    time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
			RetryCount: getInt(v, "BACKEND_RETRY_COUNT", 2),
		},
		Cache: CacheConfig{
			Driver:        strings.ToLower(getString(v, "CACHE_DRIVER", "memory")),
			TTL:           time.Duration(getInt(v, "CACHE_TTL_SECONDS", 300)) * time.Second,
			RedisAddr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisPassword: getString(v, "REDIS_PASSWORD", ""),
			RedisDB:       getInt(v, "REDIS_DB", 0),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend.Driver {
	case "rest":
		if c.Backend.BaseURL == "" {
			return fmt.Errorf("config: BACKEND_BASE_URL es obligatorio con BACKEND_DRIVER=rest")
		}
	case "memory":
	default:
		return fmt.Errorf("config: BACKEND_DRIVER desconocido %q", c.Backend.Driver)
	}
	switch c.Cache.Driver {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("config: CACHE_DRIVER desconocido %q", c.Cache.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
