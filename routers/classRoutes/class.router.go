package classRoutes

import (
	controllers "github.com/aka-azad/skill-space-server/controllers/class"
	"github.com/aka-azad/skill-space-server/middleware"
	validators "github.com/aka-azad/skill-space-server/validators/class"

	"github.com/gofiber/fiber/v2"
)

// SetupClassRoutes sets up class CRUD and catalog routes
func SetupClassRoutes(app *fiber.App) {
	classGroup := app.Group("/classes")

	// Catalog views (public)
	classGroup.Get("/available", controllers.GetAvailableClasses)
	classGroup.Get("/popular", controllers.GetPopularClasses)

	classGroup.Get("/teacher/:email", middleware.JWTMiddleware, controllers.GetTeacherClasses)

	classGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("teacher", "admin"), validators.CreateClass(), controllers.CreateClass)
	classGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), controllers.GetAllClasses)
	classGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("teacher", "admin"), validators.ClassID(), validators.UpdateClass(), controllers.UpdateClass)
	classGroup.Patch("/:id/status", middleware.JWTMiddleware, middleware.RequireRole("admin"), validators.ClassID(), validators.ClassStatus(), controllers.UpdateClassStatus)
	classGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("teacher", "admin"), validators.ClassID(), controllers.DeleteClass)

	// Single class detail keeps its historical singular path
	app.Get("/class/:id", validators.ClassID(), controllers.GetClassDetails)
}
