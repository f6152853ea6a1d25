package models

import (
	"time"
)

// Tipos de cuenta. Los guests consultan, los owners publican,
// los admins moderan.
const (
	UserTypeGuest = "guest"
	UserTypeOwner = "owner"
	UserTypeAdmin = "admin"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Email          string    `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Phone          string    `gorm:"size:20" json:"phone"`
	WhatsappNumber string    `gorm:"size:20" json:"whatsapp_number"`
	UserType       string    `gorm:"size:20;default:guest" json:"user_type"`
	Verified       bool      `gorm:"default:false" json:"verified"`
	Avatar         string    `json:"avatar"`
}

// ValidUserType indica si el tipo de cuenta es registrable.
// admin se crea solo por seed, nunca vía registro.
func ValidUserType(t string) bool {
	return t == UserTypeGuest || t == UserTypeOwner
}

// ContactNumber devuelve el número preferido para WhatsApp.
func (u *User) ContactNumber() string {
	if u.WhatsappNumber != "" {
		return u.WhatsappNumber
	}
	return u.Phone
}
