package teacherRoutes

import (
	controllers "github.com/aka-azad/skill-space-server/controllers/teacher"
	"github.com/aka-azad/skill-space-server/middleware"
	validators "github.com/aka-azad/skill-space-server/validators/teacher"

	"github.com/gofiber/fiber/v2"
)

// SetupTeacherRoutes sets up teacher application and review routes
func SetupTeacherRoutes(app *fiber.App) {
	teacherGroup := app.Group("/teachers")

	teacherGroup.Post("/", middleware.JWTMiddleware, validators.RequestTeacher(), controllers.RequestTeacher)
	teacherGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), controllers.GetTeacherRequests)
	teacherGroup.Patch("/:id/status", middleware.JWTMiddleware, middleware.RequireRole("admin"), validators.TeacherID(), validators.TeacherStatus(), controllers.UpdateTeacherStatus)
	teacherGroup.Put("/:id/profile", middleware.JWTMiddleware, middleware.RequireRole("admin"), validators.TeacherID(), validators.TeacherProfile(), controllers.SyncTeacherProfile)
}
