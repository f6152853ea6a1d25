package models

import (
	"time"
)

// Estados de una consulta. Solo un admin los avanza; el huésped
// nunca modifica la consulta después de crearla.
const (
	InquiryStatusPending   = "pending"
	InquiryStatusContacted = "contacted"
	InquiryStatusCompleted = "completed"
)

// Inquiry registra un intento de contacto o pedido de reserva sobre
// una propiedad. Es la tabla detrás de /api/whatsapp/send y de la
// superficie legacy /api/reservations.
type Inquiry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PropertyID uint      `json:"property_id" gorm:"index"`
	Property   Property  `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	GuestName  string    `json:"guest_name" gorm:"size:100"`
	GuestPhone string    `json:"guest_phone" gorm:"size:20"`
	GuestEmail string    `json:"guest_email" gorm:"size:255"`
	CheckIn    time.Time `json:"check_in" gorm:"type:date"`
	CheckOut   time.Time `json:"check_out" gorm:"type:date"`
	Guests     int       `json:"guests" gorm:"default:1"`
	Message    string    `json:"message" gorm:"type:text"`
	Status     string    `json:"status" gorm:"size:20;default:pending"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
