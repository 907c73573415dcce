package assignmentValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/aka-azad/skill-space-server/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateAssignment validates a new assignment body
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID     uint      `json:"classId"`
			Title       string    `json:"title"`
			Description string    `json:"description"`
			Deadline    time.Time `json:"deadline"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClassID == 0 {
			errors["classId"] = "Class ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Deadline.IsZero() {
			errors["deadline"] = "Deadline is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// SubmitAssignment validates a submission body
func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AssignmentID   uint   `json:"assignmentId"`
			ClassID        uint   `json:"classId"`
			UserEmail      string `json:"userEmail"`
			SubmissionLink string `json:"submissionLink"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AssignmentID == 0 {
			errors["assignmentId"] = "Assignment ID is required!"
		}
		if reqData.ClassID == 0 {
			errors["classId"] = "Class ID is required!"
		}
		reqData.UserEmail = strings.TrimSpace(reqData.UserEmail)
		if reqData.UserEmail == "" {
			errors["userEmail"] = "User email is required!"
		}
		if strings.TrimSpace(reqData.SubmissionLink) == "" {
			errors["submissionLink"] = "Submission link is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// ClassIDParam validates the class id path parameter
func ClassIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classIDStr := strings.TrimSpace(c.Params("id"))
		if classIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Class ID is required!", nil)
		}

		classID, err := strconv.Atoi(classIDStr)
		if err != nil || classID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}

		c.Locals("classID", classID)
		return c.Next()
	}
}
