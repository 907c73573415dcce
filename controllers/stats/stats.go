package statsController

import (
	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetStats returns the landing-page aggregate counts. An empty classes
// table yields zeros rather than an error.
func GetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	if err := db.Model(&models.User{}).Where("is_deleted = false").Count(&totalUsers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute stats!", nil)
	}

	var totalClasses int64
	if err := db.Model(&models.Class{}).Where("is_deleted = false").Count(&totalClasses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute stats!", nil)
	}

	var totalEnrollments int64
	if err := db.Model(&models.Class{}).
		Where("is_deleted = false").
		Select("COALESCE(SUM(total_enrolment), 0)").
		Scan(&totalEnrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched!", fiber.Map{
		"totalUsers":       totalUsers,
		"totalClasses":     totalClasses,
		"totalEnrollments": totalEnrollments,
	})
}

// GetRevenue sums all payments, with a current-month figure alongside
func GetRevenue(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalRevenue float64
	if err := db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute revenue!", nil)
	}

	monthStart := now.BeginningOfMonth()
	var monthRevenue float64
	if err := db.Model(&models.Payment{}).
		Where("payment_date >= ?", monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&monthRevenue).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute revenue!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Revenue fetched!", fiber.Map{
		"totalRevenue": totalRevenue,
		"monthRevenue": monthRevenue,
	})
}
