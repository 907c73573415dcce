package assignmentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aka-azad/skill-space-server/config"
	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/middleware"
	"github.com/aka-azad/skill-space-server/models"
	assignmentRoutes "github.com/aka-azad/skill-space-server/routers/assignmentRoutes"

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
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Assignment{},
		&models.Submission{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	assignmentRoutes.SetupAssignmentRoutes(app)
	return app
}

func tokenFor(t *testing.T, email, role string) string {
	user := models.User{Email: email, Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(email)
	require.NoError(t, err)
	return token
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) *http.Response {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateAssignmentRequiresTeacherRole(t *testing.T) {
	app := setupTest(t)
	studentToken := tokenFor(t, "student@x.com", "student")

	class := models.Class{Title: "Go Basics", Email: "teacher@x.com", Status: "approved"}
	require.NoError(t, database.Database.Db.Create(&class).Error)

	resp := postJSON(t, app, "/assignments", studentToken, fiber.Map{
		"classId":  class.ID,
		"title":    "Homework 1",
		"deadline": time.Now().Add(72 * time.Hour),
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateAndListAssignments(t *testing.T) {
	app := setupTest(t)
	teacherToken := tokenFor(t, "teacher@x.com", "teacher")

	class := models.Class{Title: "Go Basics", Email: "teacher@x.com", Status: "approved"}
	require.NoError(t, database.Database.Db.Create(&class).Error)

	resp := postJSON(t, app, "/assignments", teacherToken, fiber.Map{
		"classId":     class.ID,
		"title":       "Homework 1",
		"description": "Write a CLI tool",
		"deadline":    time.Now().Add(72 * time.Hour),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest("GET", fmt.Sprintf("/assignments/class/%d", class.ID), nil)
	req.Header.Set("Authorization", "Bearer "+teacherToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Assignment `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Homework 1", body.Data[0].Title)
	assert.Equal(t, uint(0), body.Data[0].SubmissionCount)
}

func TestSubmitAssignmentOnceAndConflictOnSecond(t *testing.T) {
	app := setupTest(t)
	studentToken := tokenFor(t, "student@x.com", "student")
	db := database.Database.Db

	class := models.Class{Title: "Go Basics", Email: "teacher@x.com", Status: "approved"}
	require.NoError(t, db.Create(&class).Error)
	assignment := models.Assignment{ClassID: class.ID, Title: "Homework 1", Deadline: time.Now().Add(72 * time.Hour)}
	require.NoError(t, db.Create(&assignment).Error)

	submit := fiber.Map{
		"assignmentId":   assignment.ID,
		"classId":        class.ID,
		"userEmail":      "student@x.com",
		"submissionLink": "https://example.com/repo",
	}

	resp := postJSON(t, app, "/assignments/submit", studentToken, submit)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Assignment
	require.NoError(t, db.First(&updated, assignment.ID).Error)
	assert.Equal(t, uint(1), updated.SubmissionCount)

	// Second submission conflicts and leaves the counter alone
	resp = postJSON(t, app, "/assignments/submit", studentToken, submit)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	require.NoError(t, db.First(&updated, assignment.ID).Error)
	assert.Equal(t, uint(1), updated.SubmissionCount)

	var count int64
	db.Model(&models.Submission{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestClassSubmissionCount(t *testing.T) {
	app := setupTest(t)
	studentToken := tokenFor(t, "student@x.com", "student")
	db := database.Database.Db

	class := models.Class{Title: "Go Basics", Email: "teacher@x.com", Status: "approved"}
	require.NoError(t, db.Create(&class).Error)
	first := models.Assignment{ClassID: class.ID, Title: "HW 1", Deadline: time.Now().Add(72 * time.Hour)}
	second := models.Assignment{ClassID: class.ID, Title: "HW 2", Deadline: time.Now().Add(96 * time.Hour)}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	for _, sub := range []fiber.Map{
		{"assignmentId": first.ID, "classId": class.ID, "userEmail": "student@x.com", "submissionLink": "https://example.com/1"},
		{"assignmentId": second.ID, "classId": class.ID, "userEmail": "student@x.com", "submissionLink": "https://example.com/2"},
		{"assignmentId": first.ID, "classId": class.ID, "userEmail": "other@x.com", "submissionLink": "https://example.com/3"},
	} {
		resp := postJSON(t, app, "/assignments/submit", studentToken, sub)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/submissions/class/%d/count", class.ID), nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			TotalSubmissions int64 `json:"totalSubmissions"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(3), body.Data.TotalSubmissions)
}
