package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/contactos-api/docs"
	"github.com/jhoicas/contactos-api/internal/application/contacts"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
	"github.com/jhoicas/contactos-api/internal/infrastructure/cache"
	"github.com/jhoicas/contactos-api/internal/infrastructure/memory"
	"github.com/jhoicas/contactos-api/internal/infrastructure/rest"
	httpRouter "github.com/jhoicas/contactos-api/internal/interfaces/http"
	"github.com/jhoicas/contactos-api/pkg/config"
	"github.com/jhoicas/contactos-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

type stores struct {
	persons    repository.PersonRepository
	assocs     repository.AssociationRepository
	categories repository.CategoryRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Backend.Driver).
		Str("cache", cfg.Cache.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := buildStores(ctx, cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar backend")
	}

	categoryCache, closeCache, err := buildCache(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar caché de categorías")
	}
	defer closeCache()

	resolver := contacts.NewCategoryResolver(st.categories, categoryCache, log.Component("categories"))
	directory := contacts.NewDirectoryAggregator(st.assocs, st.persons, resolver, log.Component("directory"))
	lifecycle := contacts.NewLifecycleManager(st.persons, st.assocs, resolver, log.Component("lifecycle"))
	categorySvc := contacts.NewCategoryService(st.categories, resolver, log.Component("category_admin"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Directory:  directory,
		Lifecycle:  lifecycle,
		Categories: categorySvc,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// buildStores elige el origen de datos: backend REST remoto o almacén en memoria (desarrollo).
func buildStores(ctx context.Context, cfg config.BackendConfig, log *logger.Logger) (stores, error) {
	if cfg.Driver == "memory" {
		mem := memory.NewStore()
		if err := mem.Seed(ctx, memory.DefaultCategories()); err != nil {
			return stores{}, err
		}
		log.Warn().Msg("BACKEND_DRIVER=memory: los datos se pierden al reiniciar")
		return stores{persons: mem.Persons(), assocs: mem.Associations(), categories: mem.Categories()}, nil
	}
	client := rest.NewClient(rest.Config{
		BaseURL:    cfg.BaseURL,
		Token:      cfg.Token,
		Timeout:    cfg.Timeout,
		RetryCount: cfg.RetryCount,
	}, log.Component("rest"))
	return stores{persons: client.Persons(), assocs: client.Associations(), categories: client.Categories()}, nil
}

// buildCache devuelve la caché de categorías y su función de cierre.
func buildCache(cfg config.CacheConfig) (contacts.CategoryCache, func(), error) {
	switch cfg.Driver {
	case "redis":
		rc, err := cache.NewRedisCategoryCache(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.TTL)
		if err != nil {
			return nil, nil, err
		}
		return rc, func() { _ = rc.Close() }, nil
	case "none":
		return nil, func() {}, nil
	}
	return cache.NewMemoryCategoryCache(cfg.TTL), func() {}, nil
}
