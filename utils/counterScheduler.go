package utils

import (
	"log"

	"github.com/aka-azad/skill-space-server/database"
	"github.com/aka-azad/skill-space-server/models"

	"github.com/robfig/cron/v3"
)

// InitializeCounterScheduler sets up the nightly counter reconciliation
func InitializeCounterScheduler() {
	log.Println("[COUNTER-SCHEDULER] Initializing counter scheduler...")

	c := cron.New()

	// Run daily at 3 AM, recounting the denormalized counters from their
	// source rows so drift never survives more than a day
	c.AddFunc("0 3 * * *", func() {
		log.Println("[COUNTER-SCHEDULER] Running nightly counter reconciliation...")
		ReconcileEnrollmentCounters()
		ReconcileSubmissionCounters()
	})

	c.Start()
	log.Println("[COUNTER-SCHEDULER] Counter scheduler started - runs daily at 3 AM")
}

// ReconcileEnrollmentCounters recomputes every class's totalEnrolment
// from the enrollments table
func ReconcileEnrollmentCounters() {
	db := database.Database.Db

	var classes []models.Class
	if err := db.Where("is_deleted = false").Find(&classes).Error; err != nil {
		log.Printf("[COUNTER-SCHEDULER] Error fetching classes: %v", err)
		return
	}

	fixed := 0
	for _, class := range classes {
		var count int64
		if err := db.Model(&models.Enrollment{}).Where("class_id = ?", class.ID).Count(&count).Error; err != nil {
			log.Printf("[COUNTER-SCHEDULER] Error counting enrollments for class %d: %v", class.ID, err)
			continue
		}

		if uint(count) == class.TotalEnrolment {
			continue
		}

		log.Printf("[COUNTER-SCHEDULER] Class %d counter drift: stored %d, actual %d", class.ID, class.TotalEnrolment, count)
		if err := db.Model(&models.Class{}).Where("id = ?", class.ID).
			Update("total_enrolment", count).Error; err != nil {
			log.Printf("[COUNTER-SCHEDULER] Error fixing counter for class %d: %v", class.ID, err)
			continue
		}
		fixed++
	}

	log.Printf("[COUNTER-SCHEDULER] Enrollment reconciliation done, %d counters corrected", fixed)
}

// ReconcileSubmissionCounters recomputes every assignment's
// submissionCount from the submissions table
func ReconcileSubmissionCounters() {
	db := database.Database.Db

	var assignments []models.Assignment
	if err := db.Where("is_deleted = false").Find(&assignments).Error; err != nil {
		log.Printf("[COUNTER-SCHEDULER] Error fetching assignments: %v", err)
		return
	}

	fixed := 0
	for _, assignment := range assignments {
		var count int64
		if err := db.Model(&models.Submission{}).Where("assignment_id = ?", assignment.ID).Count(&count).Error; err != nil {
			log.Printf("[COUNTER-SCHEDULER] Error counting submissions for assignment %d: %v", assignment.ID, err)
			continue
		}

		if uint(count) == assignment.SubmissionCount {
			continue
		}

		log.Printf("[COUNTER-SCHEDULER] Assignment %d counter drift: stored %d, actual %d", assignment.ID, assignment.SubmissionCount, count)
		if err := db.Model(&models.Assignment{}).Where("id = ?", assignment.ID).
			Update("submission_count", count).Error; err != nil {
			log.Printf("[COUNTER-SCHEDULER] Error fixing counter for assignment %d: %v", assignment.ID, err)
			continue
		}
		fixed++
	}

	log.Printf("[COUNTER-SCHEDULER] Submission reconciliation done, %d counters corrected", fixed)
}
