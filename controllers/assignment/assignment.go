package assignmentController

import (
	"errors"
	"time"

	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateAssignment attaches an assignment to one of the teacher's classes
func CreateAssignment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignment").(*struct {
		ClassID     uint      `json:"classId"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Deadline    time.Time `json:"deadline"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ? AND is_deleted = false", reqData.ClassID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	assignment := models.Assignment{
		ClassID:     reqData.ClassID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Deadline:    reqData.Deadline,
	}

	if err := db.Create(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment created successfully!", assignment)
}

// GetClassAssignments lists assignments for a class
func GetClassAssignments(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	var assignments []models.Assignment
	if err := database.Database.Db.
		Where("class_id = ? AND is_deleted = false", classID).
		Order("created_at desc").
		Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

// SubmitAssignment writes the submission and bumps the assignment's
// counter in one transaction. Same duplicate discipline as enrollment:
// the unique index on (assignment_id, user_email) settles races.
func SubmitAssignment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubmission").(*struct {
		AssignmentID   uint   `json:"assignmentId"`
		ClassID        uint   `json:"classId"`
		UserEmail      string `json:"userEmail"`
		SubmissionLink string `json:"submissionLink"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var assignment models.Assignment
	if err := db.Where("id = ? AND is_deleted = false", reqData.AssignmentID).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	var existing models.Submission
	if err := db.Where("assignment_id = ? AND user_email = ?", reqData.AssignmentID, reqData.UserEmail).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already submitted!", nil)
	}

	submission := models.Submission{
		AssignmentID:   reqData.AssignmentID,
		UserEmail:      reqData.UserEmail,
		ClassID:        reqData.ClassID,
		SubmissionLink: reqData.SubmissionLink,
		SubmittedAt:    time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		return tx.Model(&models.Assignment{}).
			Where("id = ?", reqData.AssignmentID).
			Update("submission_count", gorm.Expr("submission_count + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already submitted!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment submitted successfully!", fiber.Map{
		"submissionId": submission.ID,
	})
}

// GetClassSubmissionCount sums submissions across a class's assignments
func GetClassSubmissionCount(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	var count int64
	if err := database.Database.Db.Model(&models.Submission{}).
		Where("class_id = ?", classID).
		Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission count fetched!", fiber.Map{
		"totalSubmissions": count,
	})
}
