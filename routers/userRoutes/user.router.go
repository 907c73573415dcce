package userRoutes

import (
	controllers "github.com/aka-azad/skill-space-server/controllers/user"
	"github.com/aka-azad/skill-space-server/middleware"
	validators "github.com/aka-azad/skill-space-server/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up user listing and role management routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), validators.UserList(), controllers.GetUsers)
	userGroup.Get("/role/:email", middleware.JWTMiddleware, controllers.GetUserRole)
	userGroup.Patch("/:id/role", middleware.JWTMiddleware, middleware.RequireRole("admin"), validators.UpdateRole(), controllers.UpdateUserRole)
}
