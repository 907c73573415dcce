package teacherValidator

import (
	"strconv"
	"strings"

	"github.com/aka-azad/skill-space-server/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RequestTeacher validates a teacher application body
func RequestTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name       string `json:"name" validate:"required"`
			Photo      string `json:"photo"`
			Experience string `json:"experience" validate:"required"`
			Title      string `json:"title" validate:"required"`
			Category   string `json:"category" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = fieldErr.Field() + " is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTeacherRequest", reqData)
		return c.Next()
	}
}

// TeacherID validates the teacher request id path parameter
func TeacherID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		teacherIDStr := strings.TrimSpace(c.Params("id"))
		if teacherIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Teacher ID is required!", nil)
		}

		teacherID, err := strconv.Atoi(teacherIDStr)
		if err != nil || teacherID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Teacher ID!", nil)
		}

		c.Locals("teacherID", teacherID)
		return c.Next()
	}
}

// TeacherStatus validates a status mutation body
func TeacherStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Status {
		case "pending", "accepted", "rejected":
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be pending, accepted or rejected!", nil)
		}

		c.Locals("validatedTeacherStatus", reqData)
		return c.Next()
	}
}

// TeacherProfile validates a profile sync body
func TeacherProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  string `json:"name"`
			Photo string `json:"photo"`
			Phone string `json:"phone"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTeacherProfile", reqData)
		return c.Next()
	}
}
