package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a shopkeeper identified by phone number. There are no passwords;
// identity comes from the OTP flow.
type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Phone string    `gorm:"uniqueIndex;not null" json:"phone"` // 10 digits, stored without +91
	Name  string    `json:"name"`                              // shop/display name, optional

	LastLogin *time.Time `json:"lastLogin"`

	Customers    []Customer    `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`

	gorm.Model `json:"-"`
}

// Initialize UUID before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
