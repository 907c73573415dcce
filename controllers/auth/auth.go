package authController

import (
	"time"

	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateToken issues a short-lived bearer token for the given email
func CreateToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedToken").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued!", fiber.Map{
		"token": token,
	})
}

// UpsertUser registers a user on first sign-in and stamps lastSignIn on
// every subsequent one. New users always start as students.
func UpsertUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Photo string `json:"photo"`
		Phone string `json:"phone"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	now := time.Now()

	var existing models.User
	err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&existing).Error
	if err == nil {
		// Returning user: only the sign-in timestamp moves
		if err := db.Model(&existing).Update("last_sign_in", now).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sign-in time!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Sign-in recorded!", fiber.Map{
			"userId":   existing.ID,
			"inserted": false,
		})
	}
	if err != gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up user!", nil)
	}

	user := models.User{
		Name:       reqData.Name,
		Email:      reqData.Email,
		Photo:      reqData.Photo,
		Phone:      reqData.Phone,
		Role:       "student",
		LastSignIn: &now,
	}

	if err := db.Create(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User registered!", fiber.Map{
		"userId":   user.ID,
		"inserted": true,
	})
}
