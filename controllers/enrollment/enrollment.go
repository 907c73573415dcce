package enrollmentController

import (
	"errors"
	"time"

	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"
	"github.com/aka-azad/skill-space-server/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollWithPayment records a payment, the matching enrollment and the
// class counter bump as one transaction. The composite unique index on
// (class_id, user_email) is the authority on duplicates: the pre-check
// only exists to answer the common case without burning a transaction.
func EnrollWithPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPayment").(*struct {
		ClassID       uint    `json:"classId"`
		UserEmail     string  `json:"userEmail"`
		Amount        float64 `json:"amount"`
		TransactionID string  `json:"transactionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ? AND is_deleted = false", reqData.ClassID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	// Fast path for the common duplicate case
	var existing models.Enrollment
	if err := db.Where("class_id = ? AND user_email = ?", reqData.ClassID, reqData.UserEmail).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already enrolled in this class", nil)
	}

	// A replayed gateway transaction must not buy a second enrollment
	var existingPayment models.Payment
	if err := db.Where("transaction_id = ?", reqData.TransactionID).First(&existingPayment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction already processed!", nil)
	}

	now := time.Now()
	payment := models.Payment{
		ClassID:       reqData.ClassID,
		UserEmail:     reqData.UserEmail,
		Amount:        reqData.Amount,
		TransactionID: reqData.TransactionID,
		PaymentDate:   now,
	}
	enrollment := models.Enrollment{
		ClassID:    reqData.ClassID,
		UserEmail:  reqData.UserEmail,
		EnrolledAt: now,
	}

	var modified int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Class{}).
			Where("id = ?", reqData.ClassID).
			Update("total_enrolment", gorm.Expr("total_enrolment + 1"))
		if res.Error != nil {
			return res.Error
		}
		modified = res.RowsAffected
		return nil
	})
	if err != nil {
		// A losing racer hits the unique index instead of the pre-check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already enrolled in this class", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process enrollment!", nil)
	}

	// Confirmation mail is best-effort, never part of the transaction
	go utils.SendEnrollmentEmail(reqData.UserEmail, class.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in class successfully!", fiber.Map{
		"paymentId":     payment.ID,
		"enrollmentId":  enrollment.ID,
		"modifiedCount": modified,
	})
}

// CheckEnrollment answers whether a (class, user) pair is already enrolled
func CheckEnrollment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollmentCheck").(*struct {
		ClassID   uint   `json:"classId"`
		UserEmail string `json:"userEmail"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	var count int64
	if err := database.Database.Db.Model(&models.Enrollment{}).
		Where("class_id = ? AND user_email = ?", reqData.ClassID, reqData.UserEmail).
		Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment checked!", fiber.Map{
		"exists": count > 0,
	})
}

// GetUserEnrollments returns the class records a user is enrolled in.
// Two queries: the enrollment rows, then the classes they point at.
func GetUserEnrollments(c *fiber.Ctx) error {
	email := c.Params("userEmail")
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_email = ?", email).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	classIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		classIDs = append(classIDs, e.ClassID)
	}

	classes := []models.Class{}
	if len(classIDs) > 0 {
		if err := db.Where("id IN ? AND is_deleted = false", classIDs).Find(&classes).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled classes!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled classes fetched!", classes)
}

// GetUserPayments returns a user's payment history, newest first
func GetUserPayments(c *fiber.Ctx) error {
	email := c.Params("userEmail")
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.
		Where("user_email = ?", email).
		Order("payment_date desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched!", payments)
}
