package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/contactos-api/internal/application/contacts"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
)

var _ contacts.CategoryCache = (*RedisCategoryCache)(nil)

const defaultCategoryKey = "contactos:categories:table"

// RedisConfig conexión a Redis para la caché compartida.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisCategoryCache tabla de categorías compartida entre réplicas.
// Invalidate borra la clave, de modo que todas las instancias recargan desde el backend.
type RedisCategoryCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisCategoryCache abre la conexión y verifica con PING.
func NewRedisCategoryCache(cfg RedisConfig, ttl time.Duration) (*RedisCategoryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return NewRedisCategoryCacheWithClient(client, "", ttl), nil
}

// NewRedisCategoryCacheWithClient usa un cliente existente (tests, cliente compartido).
func NewRedisCategoryCacheWithClient(client *redis.Client, key string, ttl time.Duration) *RedisCategoryCache {
	if key == "" {
		key = defaultCategoryKey
	}
	return &RedisCategoryCache{client: client, key: key, ttl: ttl}
}

type cachedCategory struct {
	ID          int64  `json:"id"`
	Domain      string `json:"domain"`
	Subtype     string `json:"subtype"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SystemOwned bool   `json:"system,omitempty"`
	Inactive    bool   `json:"inactive,omitempty"`
}

func (c *RedisCategoryCache) Load(ctx context.Context) ([]entity.Category, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer caché de categorías: %w", err)
	}
	var items []cachedCategory
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("decodificar caché de categorías: %w", err)
	}
	out := make([]entity.Category, 0, len(items))
	for _, it := range items {
		out = append(out, entity.Category{
			ID:          it.ID,
			Domain:      entity.Domain(it.Domain),
			Subtype:     it.Subtype,
			Name:        it.Name,
			Description: it.Description,
			SystemOwned: it.SystemOwned,
			Inactive:    it.Inactive,
		})
	}
	return out, true, nil
}

func (c *RedisCategoryCache) Store(ctx context.Context, categories []entity.Category) error {
	items := make([]cachedCategory, 0, len(categories))
	for _, cat := range categories {
		items = append(items, cachedCategory{
			ID:          cat.ID,
			Domain:      string(cat.Domain),
			Subtype:     cat.Subtype,
			Name:        cat.Name,
			Description: cat.Description,
			SystemOwned: cat.SystemOwned,
			Inactive:    cat.Inactive,
		})
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("codificar caché de categorías: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("escribir caché de categorías: %w", err)
	}
	return nil
}

func (c *RedisCategoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("invalidar caché de categorías: %w", err)
	}
	return nil
}

// Close cierra el cliente Redis.
func (c *RedisCategoryCache) Close() error { return c.client.Close() }
