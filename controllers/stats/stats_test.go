package statsController_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aka-azad/skill-space-server/config"
	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"
	statsRoutes "github.com/aka-azad/skill-space-server/routers/statsRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{
		Port:             "5000",
		JWTKey:           "test-secret",
		TokenExpiryHours: 3,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Class{}, &models.Payment{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	statsRoutes.SetupStatsRoutes(app)
	return app
}

type statsBody struct {
	Data struct {
		TotalUsers       int64 `json:"totalUsers"`
		TotalClasses     int64 `json:"totalClasses"`
		TotalEnrollments int64 `json:"totalEnrollments"`
	} `json:"data"`
}

func TestStatsWithNoClassesReturnsZeros(t *testing.T) {
	app := setupTest(t)

	req := httptest.NewRequest("GET", "/stats", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body statsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(0), body.Data.TotalUsers)
	assert.Equal(t, int64(0), body.Data.TotalClasses)
	assert.Equal(t, int64(0), body.Data.TotalEnrollments)
}

func TestStatsSumsEnrolments(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.User{Email: "a@x.com", Role: "student"}).Error)
	require.NoError(t, db.Create(&models.User{Email: "b@x.com", Role: "student"}).Error)
	require.NoError(t, db.Create(&models.Class{Title: "A", Email: "t@x.com", TotalEnrolment: 3}).Error)
	require.NoError(t, db.Create(&models.Class{Title: "B", Email: "t@x.com", TotalEnrolment: 4}).Error)

	req := httptest.NewRequest("GET", "/stats", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body statsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.Data.TotalUsers)
	assert.Equal(t, int64(2), body.Data.TotalClasses)
	assert.Equal(t, int64(7), body.Data.TotalEnrollments)
}

func TestRevenueDefaultsToZeroAndRequiresAdmin(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.User{Email: "admin@x.com", Role: "admin"}).Error)
	require.NoError(t, db.Create(&models.User{Email: "student@x.com", Role: "student"}).Error)

	adminToken, err := middleware.GenerateJWT("admin@x.com")
	require.NoError(t, err)
	studentToken, err := middleware.GenerateJWT("student@x.com")
	require.NoError(t, err)

	// Students are locked out
	req := httptest.NewRequest("GET", "/revenue", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// No payments yet: zero, not an error
	req = httptest.NewRequest("GET", "/revenue", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			TotalRevenue float64 `json:"totalRevenue"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(0), body.Data.TotalRevenue)

	// With payments the sum shows up
	require.NoError(t, db.Create(&models.Payment{ClassID: 1, UserEmail: "student@x.com", Amount: 10, TransactionID: "tx1", PaymentDate: time.Now()}).Error)
	require.NoError(t, db.Create(&models.Payment{ClassID: 2, UserEmail: "student@x.com", Amount: 15.5, TransactionID: "tx2", PaymentDate: time.Now()}).Error)

	req = httptest.NewRequest("GET", "/revenue", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 25.5, body.Data.TotalRevenue)
}
