package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is immutable once written; it is only ever created inside
// the enrollment transaction.
type Payment struct {
	gorm.Model
	ClassID       uint      `json:"classId" gorm:"index;not null"`
	UserEmail     string    `json:"userEmail" gorm:"index;not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	TransactionID string    `json:"transactionId" gorm:"uniqueIndex;not null"`
	PaymentDate   time.Time `json:"paymentDate"`
}
