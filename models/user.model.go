package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name       string     `json:"name" gorm:"default:''"`
	Email      string     `json:"email" gorm:"unique;not null"`
	Photo      string     `json:"photo" gorm:"default:''"`
	Phone      string     `json:"phone" gorm:"default:''"`
	Role       string     `json:"role" gorm:"default:'student'"` // student, teacher, admin
	LastSignIn *time.Time `json:"lastSignIn"`
	IsDeleted  bool       `gorm:"default:false"`
}
