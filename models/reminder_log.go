package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReminderLog records one outstanding-balance SMS sent to a customer.
type ReminderLog struct {
	gorm.Model
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	CustomerID uint            `gorm:"index;not null"`
	Balance    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null"` // "sent" or "failed"
}
