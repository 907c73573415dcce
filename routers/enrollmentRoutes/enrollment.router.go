package enrollmentRoutes

import (
	controllers "github.com/aka-azad/skill-space-server/controllers/enrollment"
	"github.com/aka-azad/skill-space-server/middleware"
	validators "github.com/aka-azad/skill-space-server/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up the enrollment/payment flow routes
func SetupEnrollmentRoutes(app *fiber.App) {
	app.Post("/payments", middleware.JWTMiddleware, validators.EnrollPayment(), controllers.EnrollWithPayment)
	app.Get("/payments/:userEmail", middleware.JWTMiddleware, controllers.GetUserPayments)

	// The static /check route must register before the param route
	app.Get("/enrollments/check", validators.EnrollmentCheck(), controllers.CheckEnrollment)
	app.Get("/enrollments/:userEmail", middleware.JWTMiddleware, controllers.GetUserEnrollments)
}
