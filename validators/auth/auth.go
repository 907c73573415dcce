package authValidator

import (
	"strings"

	"github.com/aka-azad/skill-space-server/middleware"

	"github.com/gofiber/fiber/v2"
)

// TokenRequest validates token issuance. A missing email is a hard 400,
// matching the client contract.
func TokenRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
		}

		c.Locals("validatedToken", reqData)
		return c.Next()
	}
}

// UpsertUser validates the sign-in upsert payload
func UpsertUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
			Name  string `json:"name"`
			Photo string `json:"photo"`
			Phone string `json:"phone"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Email is not valid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}
