package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Name       string `gorm:"not null" json:"name"`
	Phone      string `gorm:"index" json:"phone"` // optional, 10 digits when present
	IsArchived bool   `gorm:"default:false" json:"isArchived"`

	Transactions []Transaction `gorm:"foreignKey:CustomerID" json:"-"`
}
