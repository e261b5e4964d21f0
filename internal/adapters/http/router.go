// Package http содержит компоненты для HTTP сервера.
package http

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"notehub/internal/adapters/http/auth"
	"notehub/internal/adapters/http/middleware"
	"notehub/internal/adapters/http/notes"
	"notehub/internal/ports/api"
	svc "notehub/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// Пути совпадают с внешним контрактом сервиса: /register, /login, /notes.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	noteUseCase api.NoteUseCase,
	tokenService svc.TokenService,
	healthCheck func(context.Context) error,
) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Проверка живости процесса и хранилища.
	app.Get("/healthz", func(c fiber.Ctx) error {
		if err := healthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Публичные маршруты аутентификации.
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Маршруты заметок: аутентификация всегда предшествует проверке владения.
	notesRoutes := app.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
