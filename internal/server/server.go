package server

import (
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"gorm.io/gorm"

	"github.com/gazostheque/gazostheque/internal/config"
	"github.com/gazostheque/gazostheque/internal/handlers"
	"github.com/gazostheque/gazostheque/internal/middleware"
	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/internal/types"
)

// New assembles the Fiber application: global middleware, metrics,
// swagger and the full route table.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("gazostheque")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Handlers
	hooks := services.DefaultHookRunner(cfg.NotifyFailOpen)
	materialHandler := &handlers.MaterialHandler{DB: db, Hooks: hooks}
	statsHandler := &handlers.StatsHandler{DB: db}
	ownerHandler := &handlers.OwnerHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db, UploadDir: cfg.UploadDir}
	notificationHandler := &handlers.NotificationHandler{DB: db}
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}

	auth := middleware.RequireUser(db)

	// Health
	app.Get("/health", healthHandler.Health)

	// Materials
	app.Post("/materials/create/", auth, materialHandler.CreateMaterial)
	app.Get("/materials/", auth, materialHandler.ListMaterials)
	app.Get("/materials/latest/", auth, materialHandler.LatestMaterials)
	app.Get("/materials/count/", auth, statsHandler.TotalCount)
	app.Get("/materials/count-by-lab", auth, statsHandler.CountByLab)
	app.Get("/materials/bar-chart", auth, statsHandler.BarChart)
	app.Get("/materials/tags", auth, materialHandler.ListTags)
	app.Get("/materials/search-by-tags", auth, materialHandler.SearchByTags)
	app.Get("/materials/owner/:id/", auth, materialHandler.MaterialsByOwner)
	app.Get("/materials/:id/", auth, materialHandler.GetMaterial)
	app.Put("/materials/:id/", auth, materialHandler.UpdateMaterial)
	app.Delete("/materials/:id/", auth, materialHandler.DeleteMaterial)

	// Material lifecycle events
	app.Get("/material/:id/events/", materialHandler.MaterialEvents)
	app.Get("/material/:id/events/lite/", materialHandler.MaterialEventsLite)

	// Owners
	app.Get("/owners/", auth, ownerHandler.ListOwners)
	app.Post("/owners/", auth, ownerHandler.CreateOwner)
	app.Get("/owners/:id/", auth, ownerHandler.GetOwner)
	app.Put("/owners/:id/", auth, ownerHandler.UpdateOwner)
	app.Delete("/owners/:id/", auth, ownerHandler.DeleteOwner)
	app.Get("/active_owners/lite/", auth, ownerHandler.ActiveOwnersLite)

	// Users and session
	app.Get("/users/", auth, userHandler.ListUsers)
	app.Post("/users/", auth, userHandler.CreateUser)
	app.Get("/users/:id/", auth, userHandler.GetUser)
	app.Put("/users/:id/", auth, userHandler.UpdateUser)
	app.Post("/users/upload_pictures/:id/", auth, userHandler.UploadProfilePicture)
	app.Get("/session/", auth, userHandler.Session)

	// Notifications
	app.Get("/notifications/", auth, notificationHandler.ListNotifications)
	app.Post("/notifications/", auth, notificationHandler.CreateNotification)
	app.Get("/notifications/important/:id/", auth, notificationHandler.ImportantNotifications)
	app.Get("/notifications/:id/", auth, notificationHandler.NotificationsByUser)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	return app
}

// errorHandler converts errors escaping the handlers into the
// standard JSON envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	switch e := err.(type) {
	case *fiber.Error:
		code = e.Code
		message = e.Message
	case *types.CustomError:
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
