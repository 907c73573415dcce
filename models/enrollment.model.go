package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment asserts a user has paid for and joined a class. The composite
// unique index is what makes concurrent double-enrolls impossible: the
// second insert fails with gorm.ErrDuplicatedKey.
type Enrollment struct {
	gorm.Model
	ClassID    uint      `json:"classId" gorm:"uniqueIndex:idx_class_user;not null"`
	UserEmail  string    `json:"userEmail" gorm:"uniqueIndex:idx_class_user;not null"`
	EnrolledAt time.Time `json:"enrolledAt"`
}
