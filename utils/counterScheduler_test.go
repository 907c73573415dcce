package utils

import (
	"testing"
	"time"

	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDb(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Class{},
		&models.Enrollment{},
		&models.Assignment{},
		&models.Submission{},
	))
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestReconcileEnrollmentCountersFixesDrift(t *testing.T) {
	db := setupDb(t)

	// Stored counter says 5, source rows say 2
	class := models.Class{Title: "Drifted", Email: "t@x.com", TotalEnrolment: 5}
	require.NoError(t, db.Create(&class).Error)
	require.NoError(t, db.Create(&models.Enrollment{ClassID: class.ID, UserEmail: "a@x.com", EnrolledAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.Enrollment{ClassID: class.ID, UserEmail: "b@x.com", EnrolledAt: time.Now()}).Error)

	// Consistent class stays untouched
	ok := models.Class{Title: "Consistent", Email: "t@x.com", TotalEnrolment: 1}
	require.NoError(t, db.Create(&ok).Error)
	require.NoError(t, db.Create(&models.Enrollment{ClassID: ok.ID, UserEmail: "c@x.com", EnrolledAt: time.Now()}).Error)

	ReconcileEnrollmentCounters()

	var drifted, untouched models.Class
	require.NoError(t, db.First(&drifted, class.ID).Error)
	require.NoError(t, db.First(&untouched, ok.ID).Error)
	assert.Equal(t, uint(2), drifted.TotalEnrolment)
	assert.Equal(t, uint(1), untouched.TotalEnrolment)
}

func TestReconcileSubmissionCountersFixesDrift(t *testing.T) {
	db := setupDb(t)

	assignment := models.Assignment{ClassID: 1, Title: "HW", Deadline: time.Now(), SubmissionCount: 9}
	require.NoError(t, db.Create(&assignment).Error)
	require.NoError(t, db.Create(&models.Submission{AssignmentID: assignment.ID, ClassID: 1, UserEmail: "a@x.com", SubmittedAt: time.Now()}).Error)

	ReconcileSubmissionCounters()

	var fixed models.Assignment
	require.NoError(t, db.First(&fixed, assignment.ID).Error)
	assert.Equal(t, uint(1), fixed.SubmissionCount)
}
