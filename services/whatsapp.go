package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"desdeaca/errors"
)

// Largo en dígitos de un número argentino normalizado
// (54 + 9 + característica + abonado).
const (
	MinWhatsappDigits = 12
	MaxWhatsappDigits = 13
)

var nonDigits = regexp.MustCompile(`\D`)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// NormalizePhone normaliza un teléfono al formato de WhatsApp para
// Argentina (549 + característica + abonado). Es idempotente:
// normalizar un número ya normalizado no lo cambia.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	switch {
	case strings.HasPrefix(digits, "549"):
		return digits
	case strings.HasPrefix(digits, "54"):
		return "549" + digits[2:]
	case strings.HasPrefix(digits, "9"):
		return "54" + digits
	default:
		return "549" + digits
	}
}

// IsValidWhatsappNumber indica si un número normalizado sirve para
// mensajería: 12 o 13 dígitos.
func IsValidWhatsappNumber(phone string) bool {
	digits := nonDigits.ReplaceAllString(phone, "")
	return len(digits) >= MinWhatsappDigits && len(digits) <= MaxWhatsappDigits
}

// FormatDateES formatea una fecha en castellano: "2 de enero de 2026".
func FormatDateES(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// ContactParams son los datos de una consulta detallada.
type ContactParams struct {
	OwnerPhone    string
	PropertyTitle string
	CheckIn       time.Time
	CheckOut      time.Time
	GuestName     string
	Guests        int
}

// QuickContactMessage arma el mensaje de consulta rápida.
func QuickContactMessage(propertyTitle string) string {
	return fmt.Sprintf("¡Hola! Vi tu propiedad \"%s\" en DesdeAca.com y me gustaría obtener más información. ¿Podrías ayudarme?", propertyTitle)
}

// DetailedContactMessage arma el mensaje con fechas, cantidad de
// huéspedes y saludo personalizado si hay nombre.
func DetailedContactMessage(p ContactParams) string {
	guests := p.Guests
	if guests < 1 {
		guests = 1
	}

	noun := "personas"
	if guests == 1 {
		noun = "persona"
	}

	opening := fmt.Sprintf("¡Hola! Vi tu propiedad \"%s\" en DesdeAca.com y me interesa hacer una reserva.", p.PropertyTitle)
	if p.GuestName != "" {
		opening = fmt.Sprintf("¡Hola! Soy %s y vi tu propiedad \"%s\" en DesdeAca.com y me interesa hacer una reserva.", p.GuestName, p.PropertyTitle)
	}

	return fmt.Sprintf(`%s

📅 Fechas: %s al %s
👥 Huéspedes: %d %s

¿Está disponible para esas fechas? ¿Podrías confirmarme el precio total?

¡Gracias!`, opening, FormatDateES(p.CheckIn), FormatDateES(p.CheckOut), guests, noun)
}

// BuildWhatsappLink arma el deep link wa.me con el mensaje codificado.
// El teléfono debe estar ya normalizado y validado.
func BuildWhatsappLink(normalizedPhone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", normalizedPhone, encoded)
}

// QuickContactLink genera el link de consulta rápida para un teléfono
// crudo del dueño. Rechaza números que no pasan la validación de
// largo, antes de generar nada.
func QuickContactLink(ownerPhone, propertyTitle string) (string, error) {
	phone := NormalizePhone(ownerPhone)
	if !IsValidWhatsappNumber(phone) {
		return "", errors.NewAppError(errors.ErrCodeInvalidWhatsapp,
			"El propietario no tiene un número de WhatsApp válido configurado", nil)
	}
	return BuildWhatsappLink(phone, QuickContactMessage(propertyTitle)), nil
}

// DetailedContactLink genera el link de consulta detallada.
func DetailedContactLink(p ContactParams) (string, error) {
	phone := NormalizePhone(p.OwnerPhone)
	if !IsValidWhatsappNumber(phone) {
		return "", errors.NewAppError(errors.ErrCodeInvalidWhatsapp,
			"El propietario no tiene un número de WhatsApp válido configurado", nil)
	}
	return BuildWhatsappLink(phone, DetailedContactMessage(p)), nil
}
