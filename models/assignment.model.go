package models

import (
	"time"

	"gorm.io/gorm"
)

// Assignment is homework attached to a class
type Assignment struct {
	gorm.Model
	ClassID         uint      `json:"classId" gorm:"index;not null"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Deadline        time.Time `json:"deadline"`
	SubmissionCount uint      `json:"submissionCount" gorm:"default:0"`
	IsDeleted       bool      `gorm:"default:false"`
}
