package paymentRoutes

import (
	controllers "github.com/aka-azad/skill-space-server/controllers/payment"
	"github.com/aka-azad/skill-space-server/middleware"
	validators "github.com/aka-azad/skill-space-server/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the payment gateway routes
func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", middleware.JWTMiddleware, validators.PaymentIntent(), controllers.CreatePaymentIntent)
}
