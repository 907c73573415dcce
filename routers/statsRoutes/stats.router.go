package statsRoutes

import (
	controllers "github.com/aka-azad/skill-space-server/controllers/stats"
	"github.com/aka-azad/skill-space-server/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupStatsRoutes sets up aggregate reporting routes
func SetupStatsRoutes(app *fiber.App) {
	app.Get("/stats", controllers.GetStats)
	app.Get("/revenue", middleware.JWTMiddleware, middleware.RequireRole("admin"), controllers.GetRevenue)
}
