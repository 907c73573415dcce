package paymentController

import (
	"math"

	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/utils"

	"github.com/gofiber/fiber/v2"
)

// CreatePaymentIntent asks the gateway for a PaymentIntent the client can
// confirm. Price arrives in major units and goes out in minor units.
func CreatePaymentIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPaymentIntent").(*struct {
		Price float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	amount := int64(math.Round(reqData.Price * 100))

	clientSecret, err := utils.CreatePaymentIntent(amount, "usd")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created!", fiber.Map{
		"clientSecret": clientSecret,
	})
}
