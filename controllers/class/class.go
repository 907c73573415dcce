package classController

import (
	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"

	"github.com/gofiber/fiber/v2"
)

// CreateClass creates a class for the signed-in teacher, pending approval
func CreateClass(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedClass").(*struct {
		Title       string  `json:"title" validate:"required"`
		Name        string  `json:"name" validate:"required"`
		Image       string  `json:"image"`
		Price       float64 `json:"price" validate:"gte=0"`
		Description string  `json:"description" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	class := models.Class{
		Title:       reqData.Title,
		Name:        reqData.Name,
		Email:       email,
		Image:       reqData.Image,
		Price:       reqData.Price,
		Description: reqData.Description,
		Status:      "pending",
	}

	if err := database.Database.Db.Create(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class created successfully!", class)
}

// GetAllClasses lists every class regardless of status (admin view)
func GetAllClasses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Class{}).Where("is_deleted = false")

	var total int64
	db.Count(&total)

	var classes []models.Class
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	response := map[string]interface{}{
		"classes": classes,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", response)
}

// GetAvailableClasses lists approved classes for the public catalog
func GetAvailableClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = false", "approved").
		Order("created_at desc").
		Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// GetPopularClasses returns the six most-enrolled approved classes.
// Ties land in whatever order the database gives back.
func GetPopularClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = false", "approved").
		Order("total_enrolment desc").
		Limit(6).
		Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch popular classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular classes fetched!", classes)
}

// GetTeacherClasses lists a teacher's own classes by email
func GetTeacherClasses(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	var classes []models.Class
	if err := database.Database.Db.
		Where("email = ? AND is_deleted = false", email).
		Order("created_at desc").
		Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// GetClassDetails returns a single class by id
func GetClassDetails(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	var class models.Class
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class fetched successfully!", class)
}

// UpdateClass lets the owning teacher edit listing fields
func UpdateClass(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	reqData, ok := c.Locals("validatedClassUpdate").(*struct {
		Title       string  `json:"title"`
		Image       string  `json:"image"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var class models.Class
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	if err := database.Database.Db.Model(&class).Updates(map[string]interface{}{
		"title":       reqData.Title,
		"image":       reqData.Image,
		"price":       reqData.Price,
		"description": reqData.Description,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully!", class)
}

// UpdateClassStatus approves or rejects a pending class (admin only)
func UpdateClassStatus(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	reqData, ok := c.Locals("validatedClassStatus").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var class models.Class
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	if err := database.Database.Db.Model(&class).Update("status", reqData.Status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class status updated!", fiber.Map{
		"classId": class.ID,
		"status":  reqData.Status,
	})
}

// DeleteClass soft-deletes a class listing
func DeleteClass(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	var class models.Class
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", classID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	if err := database.Database.Db.Model(&class).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class deleted successfully!", fiber.Map{
		"classId": class.ID,
	})
}
