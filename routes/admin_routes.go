package routes

import (
	"github.com/anjiri1684/exercise_platform/handlers"
	"github.com/anjiri1684/exercise_platform/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/users", handlers.ListUsers)
	admin.Get("/users/:userId", handlers.GetUser)
	admin.Patch("/users/:userId", handlers.UpdateUserFlags)
	admin.Delete("/users/:userId", handlers.DeleteUser)
	admin.Get("/certificates", handlers.ListCertificates)
}
