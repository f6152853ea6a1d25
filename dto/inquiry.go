package dto

// Tipos de contacto por WhatsApp.
const (
	ContactTypeQuick    = "quick"
	ContactTypeDetailed = "detailed"
)

// WhatsAppSendRequest es el cuerpo de POST /api/whatsapp/send.
// Las fechas llegan como "2006-01-02".
type WhatsAppSendRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`
	GuestEmail string `json:"guest_email"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
	Message    string `json:"message"`
	Type       string `json:"type"`
}

// WhatsAppSendResponse devuelve el link generado y el rastro de la
// consulta si se pudo persistir.
type WhatsAppSendResponse struct {
	WhatsappURL string               `json:"whatsapp_url"`
	InquiryID   *uint                `json:"inquiry_id"`
	Property    WhatsAppPropertyInfo `json:"property"`
	ContactType string               `json:"contact_type"`
}

type WhatsAppPropertyInfo struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	OwnerName string `json:"owner_name"`
}

// ReservationRequest es la superficie legacy de reservas.
type ReservationRequest struct {
	PropertyID uint   `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Guests     int    `json:"guests"`
	Message    string `json:"message"`
}

// ReservationResponse lista una reserva junto con título y zona de la
// propiedad.
type ReservationResponse struct {
	ID            uint   `json:"id"`
	PropertyID    uint   `json:"propertyId"`
	PropertyTitle string `json:"propertyTitle"`
	PropertyArea  string `json:"propertyArea"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Guests        int    `json:"guests"`
	Status        string `json:"status"`
}
