package models

import "gorm.io/gorm"

// Class represents a published course offering
type Class struct {
	gorm.Model
	Title          string  `json:"title"`
	Name           string  `json:"name"`                            // teacher display name
	Email          string  `json:"email" gorm:"index;not null"`     // owning teacher
	Image          string  `json:"image" gorm:"default:''"`
	Price          float64 `json:"price" gorm:"default:0"`
	Description    string  `json:"description"`
	Status         string  `json:"status" gorm:"default:'pending'"` // pending, approved, rejected
	TotalEnrolment uint    `json:"totalEnrolment" gorm:"default:0"`
	IsDeleted      bool    `gorm:"default:false"`
}
