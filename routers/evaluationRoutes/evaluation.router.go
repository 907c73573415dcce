package evaluationRoutes

import (
	controllers "github.com/aka-azad/skill-space-server/controllers/evaluation"
	"github.com/aka-azad/skill-space-server/middleware"
	validators "github.com/aka-azad/skill-space-server/validators/evaluation"

	"github.com/gofiber/fiber/v2"
)

// SetupEvaluationRoutes sets up class feedback routes
func SetupEvaluationRoutes(app *fiber.App) {
	app.Post("/evaluations", middleware.JWTMiddleware, validators.CreateEvaluation(), controllers.CreateEvaluation)
	app.Get("/evaluations", controllers.GetEvaluations)
}
