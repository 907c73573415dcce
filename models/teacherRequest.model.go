package models

import "gorm.io/gorm"

// TeacherRequest is a user's application to teach on the platform.
// Profile fields are copied onto the matching User when the request
// is accepted, keyed by email.
type TeacherRequest struct {
	gorm.Model
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"index;not null"`
	Photo      string `json:"photo" gorm:"default:''"`
	Experience string `json:"experience"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Status     string `json:"status" gorm:"default:'pending'"` // pending, accepted, rejected
	IsDeleted  bool   `gorm:"default:false"`
}
