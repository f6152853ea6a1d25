package builders

import (
	"time"

	"desdeaca/models"
)

// InquiryBuilder arma una consulta paso a paso. Las dos superficies de
// contacto (whatsapp/send y reservations) la construyen con campos
// distintos, el builder unifica los defaults.
type InquiryBuilder struct {
	inquiry *models.Inquiry
}

func NewInquiryBuilder() *InquiryBuilder {
	return &InquiryBuilder{
		inquiry: &models.Inquiry{Status: models.InquiryStatusPending},
	}
}

// ForProperty fija la propiedad consultada.
func (b *InquiryBuilder) ForProperty(propertyID uint) *InquiryBuilder {
	b.inquiry.PropertyID = propertyID
	return b
}

// WithGuest carga los datos de contacto del interesado.
func (b *InquiryBuilder) WithGuest(name, phone, email string) *InquiryBuilder {
	b.inquiry.GuestName = name
	b.inquiry.GuestPhone = phone
	b.inquiry.GuestEmail = email
	return b
}

// WithStay fija fechas y cantidad de huéspedes.
func (b *InquiryBuilder) WithStay(checkIn, checkOut time.Time, guests int) *InquiryBuilder {
	b.inquiry.CheckIn = checkIn
	b.inquiry.CheckOut = checkOut
	b.inquiry.Guests = guests
	return b
}

// WithMessage agrega el mensaje libre del interesado.
func (b *InquiryBuilder) WithMessage(message string) *InquiryBuilder {
	b.inquiry.Message = message
	return b
}

// Build devuelve la consulta armada.
func (b *InquiryBuilder) Build() *models.Inquiry {
	return b.inquiry
}
