package userValidator

import (
	"strconv"
	"strings"

	"github.com/aka-azad/skill-space-server/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserList validates search and pagination query parameters
func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Query string `json:"query"`
			Page  int    `json:"page"`
			Limit int    `json:"limit"`
		})

		reqData.Query = strings.TrimSpace(c.Query("query"))
		reqData.Page = c.QueryInt("page", 1)
		reqData.Limit = c.QueryInt("limit", 10)

		errors := make(map[string]string)

		if reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}

// UpdateRole validates the user id param and the new role
func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("id"))
		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		reqData := new(struct {
			Role string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Role {
		case "student", "teacher", "admin":
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Role must be student, teacher or admin!", nil)
		}

		c.Locals("userID", userID)
		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}
