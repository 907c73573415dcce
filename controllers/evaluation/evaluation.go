package evaluationController

import (
	"time"

	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"

	"github.com/gofiber/fiber/v2"
)

// CreateEvaluation stores student feedback for a class. Students may
// evaluate as often as they like; nothing deduplicates here.
func CreateEvaluation(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEvaluation").(*struct {
		ClassID     uint   `json:"classId"`
		Description string `json:"description"`
		Rating      int    `json:"rating"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ? AND is_deleted = false", reqData.ClassID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	evaluation := models.Evaluation{
		ClassID:     reqData.ClassID,
		UserEmail:   email,
		UserName:    user.Name,
		UserPhoto:   user.Photo,
		ClassTitle:  class.Title,
		Description: reqData.Description,
		Rating:      reqData.Rating,
		RatedAt:     time.Now(),
	}

	if err := db.Create(&evaluation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit evaluation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluation submitted successfully!", evaluation)
}

// GetEvaluations feeds the public testimonial carousel, newest first
func GetEvaluations(c *fiber.Ctx) error {
	var evaluations []models.Evaluation
	if err := database.Database.Db.
		Order("rated_at desc").
		Find(&evaluations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch evaluations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluations fetched!", evaluations)
}
