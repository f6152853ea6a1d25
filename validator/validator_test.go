package validator

import (
	"strings"
	"testing"
	"time"

	"desdeaca/dto"
)

func validPropertyRequest() *dto.PropertyRequest {
	return &dto.PropertyRequest{
		OwnerID:      1,
		Title:        "Casa en Pocito con pileta",
		Description:  "Casa amplia con pileta y parrilla, ideal para familias",
		PropertyType: "house",
		Area:         "pocito",
		PriceDaily:   2500,
		Capacity:     6,
	}
}

func TestValidatePropertyCompleta(t *testing.T) {
	if errs := ValidateProperty(validPropertyRequest()); len(errs) != 0 {
		t.Errorf("una propiedad válida no debe devolver errores: %v", errs)
	}
}

func TestValidatePropertyJuntaTodosLosErrores(t *testing.T) {
	req := &dto.PropertyRequest{
		Title:        "Casa",
		Description:  "Muy linda",
		PropertyType: "castillo",
		Area:         "springfield",
		PriceDaily:   0,
		Capacity:     0,
	}

	errs := ValidateProperty(req)
	if len(errs) != 7 {
		t.Fatalf("se esperaban los 7 problemas juntos, got %d: %v", len(errs), errs)
	}
}

func TestValidatePropertyDescripcionCorta(t *testing.T) {
	req := validPropertyRequest()
	req.Description = "Muy linda"

	errs := ValidateProperty(req)
	if len(errs) != 1 {
		t.Fatalf("se esperaba un solo error, got %v", errs)
	}
	if !strings.Contains(errs[0], "descripción") {
		t.Errorf("el error debe nombrar la descripción: %q", errs[0])
	}
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name    string
		input   dto.RegisterInput
		wantErr bool
	}{
		{
			"registro válido",
			dto.RegisterInput{Email: "ana@example.com", Password: "secreto1", Name: "Ana"},
			false,
		},
		{
			"owner válido con whatsapp",
			dto.RegisterInput{Email: "juan@example.com", Password: "secreto1", Name: "Juan", UserType: "owner", WhatsappNumber: "+54 9 264 412-3456"},
			false,
		},
		{
			"email malformado",
			dto.RegisterInput{Email: "no-es-email", Password: "secreto1", Name: "Ana"},
			true,
		},
		{
			"contraseña corta",
			dto.RegisterInput{Email: "ana@example.com", Password: "123", Name: "Ana"},
			true,
		},
		{
			"sin nombre",
			dto.RegisterInput{Email: "ana@example.com", Password: "secreto1"},
			true,
		},
		{
			"admin no registrable",
			dto.RegisterInput{Email: "ana@example.com", Password: "secreto1", Name: "Ana", UserType: "admin"},
			true,
		},
		{
			"teléfono con letras",
			dto.RegisterInput{Email: "ana@example.com", Password: "secreto1", Name: "Ana", Phone: "26ab4123"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(&tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegister() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateStayDates(t *testing.T) {
	now := time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC)
	day := func(d int) time.Time {
		return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  bool
	}{
		{"estadía futura", day(31), time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC), false},
		{"entrada hoy mismo", day(30), day(31), false},
		{"entrada en el pasado", day(29), day(31), true},
		{"salida igual a la entrada", day(31), day(31), true},
		{"salida antes de la entrada", time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC), day(31), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStayDates(tt.checkIn, tt.checkOut, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStayDates() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("huesped@gmail.com"); err != nil {
		t.Errorf("email válido rechazado: %v", err)
	}
	for _, bad := range []string{"", "sin-arroba", "a@b", "a@b."} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("email inválido aceptado: %q", bad)
		}
	}
}
