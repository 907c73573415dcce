package authRoutes

import (
	controllers "github.com/aka-azad/skill-space-server/controllers/auth"
	validators "github.com/aka-azad/skill-space-server/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up token issuance and user registration routes
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", validators.TokenRequest(), controllers.CreateToken)
	app.Post("/users", validators.UpsertUser(), controllers.UpsertUser)
}
