package services

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"numero local de San Juan", "2644123456", "5492644123456"},
		{"ya normalizado", "5492644123456", "5492644123456"},
		{"con codigo de pais sin 9", "542644123456", "5492644123456"},
		{"con 9 sin codigo de pais", "92644123456", "5492644123456"},
		{"con espacios y guiones", "54 264 412-3456", "5492644123456"},
		{"con prefijo internacional", "+54 9 264 412 3456", "5492644123456"},
		{"con parentesis", "(264) 412-3456", "5492644123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePhoneIdempotente(t *testing.T) {
	inputs := []string{"2644123456", "542644123456", "92644123456", "5492644123456"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		twice := NormalizePhone(once)
		if once != twice {
			t.Errorf("NormalizePhone no es idempotente para %q: %q != %q", in, once, twice)
		}
	}
}

func TestIsValidWhatsappNumber(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"5492644123456", true},
		{"549264412345", true},
		{"54912345", false},
		{"", false},
		{"54926441234567", false},
	}

	for _, tt := range tests {
		if got := IsValidWhatsappNumber(tt.phone); got != tt.want {
			t.Errorf("IsValidWhatsappNumber(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestFormatDateES(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), "2 de enero de 2026"},
		{time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), "15 de septiembre de 2026"},
		{time.Date(2027, time.December, 31, 0, 0, 0, 0, time.UTC), "31 de diciembre de 2027"},
	}

	for _, tt := range tests {
		if got := FormatDateES(tt.date); got != tt.want {
			t.Errorf("FormatDateES(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestBuildWhatsappLink(t *testing.T) {
	link := BuildWhatsappLink("5492644123456", "Hola, me interesa la propiedad")

	if !strings.HasPrefix(link, "https://wa.me/5492644123456?text=") {
		t.Fatalf("link con prefijo inesperado: %q", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("el link no debe contener espacios sin codificar: %q", link)
	}
	if strings.Contains(link, "+") {
		t.Errorf("los espacios deben codificarse como %%20, no como +: %q", link)
	}
	if !strings.Contains(link, "%20") {
		t.Errorf("se esperaban espacios codificados como %%20: %q", link)
	}
}

func TestQuickContactLink(t *testing.T) {
	link, err := QuickContactLink("264 412 3456", "Casa en Pocito")
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/5492644123456?text=") {
		t.Errorf("link inesperado: %q", link)
	}
}

func TestQuickContactLinkTelefonoInvalido(t *testing.T) {
	if _, err := QuickContactLink("12345", "Casa en Pocito"); err == nil {
		t.Error("se esperaba error para un teléfono demasiado corto")
	}
}

func TestDetailedContactMessage(t *testing.T) {
	msg := DetailedContactMessage(ContactParams{
		PropertyTitle: "Cabaña en Zonda",
		CheckIn:       time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC),
		GuestName:     "Ana",
		Guests:        3,
	})

	for _, want := range []string{
		"Soy Ana",
		"Cabaña en Zonda",
		"10 de octubre de 2026",
		"15 de octubre de 2026",
		"3 personas",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("el mensaje debería contener %q:\n%s", want, msg)
		}
	}
}

func TestDetailedContactMessageSinNombre(t *testing.T) {
	msg := DetailedContactMessage(ContactParams{
		PropertyTitle: "Depto céntrico",
		CheckIn:       time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, time.October, 11, 0, 0, 0, 0, time.UTC),
		Guests:        1,
	})

	if strings.Contains(msg, "Soy ") {
		t.Errorf("sin nombre no debería haber saludo personalizado:\n%s", msg)
	}
	if !strings.Contains(msg, "1 persona") || strings.Contains(msg, "1 personas") {
		t.Errorf("un huésped va en singular:\n%s", msg)
	}
}

func TestDetailedContactMessageHuespedesMinimoUno(t *testing.T) {
	msg := DetailedContactMessage(ContactParams{
		PropertyTitle: "Casa quinta",
		CheckIn:       time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC),
		Guests:        0,
	})

	if !strings.Contains(msg, "1 persona") {
		t.Errorf("con 0 huéspedes el mensaje debe decir 1 persona:\n%s", msg)
	}
}
