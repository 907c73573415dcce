package models

import (
	"time"

	"gorm.io/gorm"
)

// Submission is one student's answer to an assignment, at most one per
// (assignment, student) pair.
type Submission struct {
	gorm.Model
	AssignmentID   uint      `json:"assignmentId" gorm:"uniqueIndex:idx_assignment_user;not null"`
	UserEmail      string    `json:"userEmail" gorm:"uniqueIndex:idx_assignment_user;not null"`
	ClassID        uint      `json:"classId" gorm:"index;not null"`
	SubmissionLink string    `json:"submissionLink"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
