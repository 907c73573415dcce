package enrollmentValidator

import (
	"strings"

	"github.com/aka-azad/skill-space-server/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollPayment validates the payment+enrollment body
func EnrollPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID       uint    `json:"classId"`
			UserEmail     string  `json:"userEmail"`
			Amount        float64 `json:"amount"`
			TransactionID string  `json:"transactionId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClassID == 0 {
			errors["classId"] = "Class ID is required!"
		}
		reqData.UserEmail = strings.TrimSpace(reqData.UserEmail)
		if reqData.UserEmail == "" {
			errors["userEmail"] = "User email is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if strings.TrimSpace(reqData.TransactionID) == "" {
			errors["transactionId"] = "Transaction ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

// EnrollmentCheck validates the classId/userEmail query pair
func EnrollmentCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID   uint   `json:"classId"`
			UserEmail string `json:"userEmail"`
		})

		classID := c.QueryInt("classId", 0)
		reqData.UserEmail = strings.TrimSpace(c.Query("userEmail"))

		errors := make(map[string]string)

		if classID <= 0 {
			errors["classId"] = "Class ID is required!"
		} else {
			reqData.ClassID = uint(classID)
		}
		if reqData.UserEmail == "" {
			errors["userEmail"] = "User email is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentCheck", reqData)
		return c.Next()
	}
}
