package models

import (
	"time"

	"gorm.io/gorm"
)

// OTPCode is a pending login code for a phone number. Only the bcrypt hash
// of the code is stored.
type OTPCode struct {
	gorm.Model
	Phone     string    `gorm:"index;not null"`
	CodeHash  string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Consumed  bool      `gorm:"default:false"`
}

// Usable reports whether the code can still be redeemed.
func (o *OTPCode) Usable(now time.Time) bool {
	return !o.Consumed && now.Before(o.ExpiresAt)
}
