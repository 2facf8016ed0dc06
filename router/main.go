package router

import (
	"github.com/biosecret/go-tasks/handlers"
	"github.com/biosecret/go-tasks/metrics"
	"github.com/biosecret/go-tasks/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HandleHealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Get().Handler()))

	api := app.Group("/api")
	api.Post("/login", handlers.LoginHandler)

	tasks := api.Group("/tasks", middleware.MockAuth)
	tasks.Get("", handlers.HandleAllTasks)
	tasks.Post("", handlers.HandleCreateTask)
	tasks.Get("/:id", handlers.HandleGetOneTask)
	tasks.Put("/:id", handlers.HandleUpdateTask)
	tasks.Delete("/:id", handlers.HandleDeleteTask)
}
