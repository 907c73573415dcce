package evaluationController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aka-azad/skill-space-server/config"
	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"
	evaluationRoutes "github.com/aka-azad/skill-space-server/routers/evaluationRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) (*fiber.App, string, models.Class) {
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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Class{}, &models.Evaluation{}))
	database.Database = database.DbInstance{Db: db}

	user := models.User{Email: "student@x.com", Name: "Student", Role: "student"}
	require.NoError(t, db.Create(&user).Error)
	class := models.Class{Title: "Go Basics", Email: "teacher@x.com", Status: "approved"}
	require.NoError(t, db.Create(&class).Error)

	token, err := middleware.GenerateJWT("student@x.com")
	require.NoError(t, err)

	app := fiber.New()
	evaluationRoutes.SetupEvaluationRoutes(app)
	return app, token, class
}

func postEvaluation(t *testing.T, app *fiber.App, token string, body interface{}) *http.Response {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/evaluations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateEvaluationSnapshotsUserAndClass(t *testing.T) {
	app, token, class := setupTest(t)

	resp := postEvaluation(t, app, token, fiber.Map{
		"classId":     class.ID,
		"description": "Great class",
		"rating":      5,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var evaluation models.Evaluation
	require.NoError(t, database.Database.Db.First(&evaluation).Error)
	assert.Equal(t, "student@x.com", evaluation.UserEmail)
	assert.Equal(t, "Student", evaluation.UserName)
	assert.Equal(t, "Go Basics", evaluation.ClassTitle)
	assert.Equal(t, 5, evaluation.Rating)
}

func TestCreateEvaluationAllowsRepeats(t *testing.T) {
	app, token, class := setupTest(t)

	for i := 0; i < 2; i++ {
		resp := postEvaluation(t, app, token, fiber.Map{
			"classId":     class.ID,
			"description": "Still great",
			"rating":      4,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var count int64
	database.Database.Db.Model(&models.Evaluation{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCreateEvaluationRejectsOutOfRangeRating(t *testing.T) {
	app, token, class := setupTest(t)

	resp := postEvaluation(t, app, token, fiber.Map{
		"classId":     class.ID,
		"description": "Bad rating",
		"rating":      6,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetEvaluationsIsPublic(t *testing.T) {
	app, token, class := setupTest(t)

	resp := postEvaluation(t, app, token, fiber.Map{
		"classId":     class.ID,
		"description": "Great class",
		"rating":      5,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest("GET", "/evaluations", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Evaluation `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 1)
}
