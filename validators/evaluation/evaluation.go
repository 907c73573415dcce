package evaluationValidator

import (
	"github.com/aka-azad/skill-space-server/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateEvaluation validates a class feedback body
func CreateEvaluation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID     uint   `json:"classId"`
			Description string `json:"description"`
			Rating      int    `json:"rating"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClassID == 0 {
			errors["classId"] = "Class ID is required!"
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEvaluation", reqData)
		return c.Next()
	}
}
