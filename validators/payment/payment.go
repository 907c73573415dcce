package paymentValidator

import (
	"github.com/aka-azad/skill-space-server/middleware"

	"github.com/gofiber/fiber/v2"
)

// PaymentIntent validates the payment intent body
func PaymentIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Price <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Price must be greater than 0!", nil)
		}

		c.Locals("validatedPaymentIntent", reqData)
		return c.Next()
	}
}
