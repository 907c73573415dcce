package models

import (
	"time"

	"gorm.io/gorm"
)

// Evaluation is student feedback on a class; no uniqueness enforced
type Evaluation struct {
	gorm.Model
	ClassID     uint      `json:"classId" gorm:"index;not null"`
	UserEmail   string    `json:"userEmail" gorm:"index;not null"`
	UserName    string    `json:"userName" gorm:"default:''"`
	UserPhoto   string    `json:"userPhoto" gorm:"default:''"`
	ClassTitle  string    `json:"classTitle" gorm:"default:''"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
	RatedAt     time.Time `json:"ratedAt"`
}
