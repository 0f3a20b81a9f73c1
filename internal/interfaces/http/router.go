package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contactos-api/internal/application/contacts"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Directory  *contacts.DirectoryAggregator
	Lifecycle  *contacts.LifecycleManager
	Categories *contacts.CategoryService
	JWTSecret  string
	JWTIssuer  string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	admin := RequireRole(RoleAdmin)

	contactHandler := NewContactHandler(deps.Directory, deps.Lifecycle)

	// Directorio por entidad (cliente, sucursal, proveedor)
	entities := api.Group("/entities/:domain/:entity")
	entities.Get("/contacts", contactHandler.List)
	entities.Post("/contacts", contactHandler.Create)

	contactsGroup := api.Group("/contacts")
	contactsGroup.Get("/:id", contactHandler.GetByID)
	contactsGroup.Put("/:id", contactHandler.Update)
	contactsGroup.Delete("/:id", contactHandler.Delete)

	// Categorías (lectura para todos, mutación solo admin)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Categories)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", admin, categoryHandler.Create)
	categories.Put("/:id", admin, categoryHandler.Update)
	categories.Delete("/:id", admin, categoryHandler.Delete)

	// Personas
	persons := api.Group("/persons")
	personHandler := NewPersonHandler(deps.Directory, deps.Lifecycle)
	persons.Get("/:id/contacts", personHandler.Contacts)
	persons.Delete("/:id", admin, personHandler.Delete)
}
