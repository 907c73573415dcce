package teacherController

import (
	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequestTeacher files a pending application to teach on the platform
func RequestTeacher(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTeacherRequest").(*struct {
		Name       string `json:"name" validate:"required"`
		Photo      string `json:"photo"`
		Experience string `json:"experience" validate:"required"`
		Title      string `json:"title" validate:"required"`
		Category   string `json:"category" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// A pending or accepted application blocks a new one
	var existing models.TeacherRequest
	if err := db.Where("email = ? AND status IN ? AND is_deleted = false", email, []string{"pending", "accepted"}).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A teacher request already exists for this account!", nil)
	}

	request := models.TeacherRequest{
		Name:       reqData.Name,
		Email:      email,
		Photo:      reqData.Photo,
		Experience: reqData.Experience,
		Title:      reqData.Title,
		Category:   reqData.Category,
		Status:     "pending",
	}

	if err := db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit teacher request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher request submitted!", request)
}

// GetTeacherRequests lists applications for the admin review queue
func GetTeacherRequests(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.TeacherRequest{}).Where("is_deleted = false")

	var total int64
	db.Count(&total)

	var requests []models.TeacherRequest
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch teacher requests!", nil)
	}

	response := map[string]interface{}{
		"teachers": requests,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher requests fetched successfully!", response)
}

// UpdateTeacherStatus accepts or rejects an application. Acceptance also
// flips the matching user's role to teacher, inside the same transaction
// so the two records cannot diverge.
func UpdateTeacherStatus(c *fiber.Ctx) error {
	requestID := c.Locals("teacherID").(int)

	reqData, ok := c.Locals("validatedTeacherStatus").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var request models.TeacherRequest
	if err := db.Where("id = ? AND is_deleted = false", requestID).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher request not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&request).Update("status", reqData.Status).Error; err != nil {
			return err
		}
		if reqData.Status == "accepted" {
			if err := tx.Model(&models.User{}).
				Where("email = ? AND is_deleted = false", request.Email).
				Update("role", "teacher").Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update teacher status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher status updated!", fiber.Map{
		"teacherId": request.ID,
		"status":    reqData.Status,
	})
}

// SyncTeacherProfile applies profile edits to the teacher request and
// pushes the same fields onto the user record matching its email. The
// two writes share one transaction so the denormalized copy stays
// consistent with its source.
func SyncTeacherProfile(c *fiber.Ctx) error {
	requestID := c.Locals("teacherID").(int)

	reqData, ok := c.Locals("validatedTeacherProfile").(*struct {
		Name  string `json:"name"`
		Photo string `json:"photo"`
		Phone string `json:"phone"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var request models.TeacherRequest
	if err := db.Where("id = ? AND is_deleted = false", requestID).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher request not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&request).Updates(map[string]interface{}{
			"name":  reqData.Name,
			"photo": reqData.Photo,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("email = ? AND is_deleted = false", request.Email).
			Updates(map[string]interface{}{
				"name":  reqData.Name,
				"photo": reqData.Photo,
				"phone": reqData.Phone,
			}).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sync teacher profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher profile synced!", fiber.Map{
		"teacherId": request.ID,
		"email":     request.Email,
	})
}
