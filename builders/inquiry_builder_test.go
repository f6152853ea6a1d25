package builders

import (
	"testing"
	"time"

	"desdeaca/models"
)

func TestInquiryBuilder(t *testing.T) {
	in := time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)

	inq := NewInquiryBuilder().
		ForProperty(7).
		WithGuest("Ana", "2644123456", "ana@example.com").
		WithStay(in, out, 3).
		WithMessage("¿Está disponible?").
		Build()

	if inq.PropertyID != 7 || inq.GuestName != "Ana" || inq.Guests != 3 {
		t.Errorf("consulta mal armada: %+v", inq)
	}
	if !inq.CheckIn.Equal(in) || !inq.CheckOut.Equal(out) {
		t.Error("fechas perdidas en el builder")
	}
	if inq.Status != models.InquiryStatusPending {
		t.Errorf("el estado inicial debe ser pendiente, got %q", inq.Status)
	}
}
