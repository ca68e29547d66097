package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is one ledger entry against a customer. Amount is always
// positive; Type carries the direction ("credit" = udhar diya,
// "debit" = paisa mila).
type Transaction struct {
	gorm.Model
	CustomerID uint      `gorm:"index;not null" json:"customerId"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(10);not null" json:"type"`
	Description string          `json:"description"`
}
