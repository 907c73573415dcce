package assignmentRoutes

import (
	controllers "github.com/aka-azad/skill-space-server/controllers/assignment"
	"github.com/aka-azad/skill-space-server/middleware"
	validators "github.com/aka-azad/skill-space-server/validators/assignment"

	"github.com/gofiber/fiber/v2"
)

// SetupAssignmentRoutes sets up assignment and submission routes
func SetupAssignmentRoutes(app *fiber.App) {
	assignmentGroup := app.Group("/assignments")

	assignmentGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("teacher", "admin"), validators.CreateAssignment(), controllers.CreateAssignment)
	assignmentGroup.Get("/class/:id", middleware.JWTMiddleware, validators.ClassIDParam(), controllers.GetClassAssignments)
	assignmentGroup.Post("/submit", middleware.JWTMiddleware, validators.SubmitAssignment(), controllers.SubmitAssignment)

	app.Get("/submissions/class/:id/count", middleware.JWTMiddleware, validators.ClassIDParam(), controllers.GetClassSubmissionCount)
}
