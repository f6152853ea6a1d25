package models

import "testing"

func TestMapLegacyStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"pendiente", StatusPendingApproval, false},
		{"aprobado", StatusActive, false},
		{"rechazado", StatusInactive, false},
		{"active", StatusActive, false},
		{"pending_approval", StatusPendingApproval, false},
		{"inactive", StatusInactive, false},
		{"publicado", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := MapLegacyStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("MapLegacyStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("MapLegacyStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidArea(t *testing.T) {
	for _, area := range SanJuanAreas {
		if !ValidArea(area) {
			t.Errorf("zona de la enumeración rechazada: %q", area)
		}
	}
	for _, bad := range []string{"", "mendoza", "Centro", "villa krause"} {
		if ValidArea(bad) {
			t.Errorf("zona inválida aceptada: %q", bad)
		}
	}
}

func TestValidUserType(t *testing.T) {
	if !ValidUserType(UserTypeGuest) || !ValidUserType(UserTypeOwner) {
		t.Error("guest y owner deben ser registrables")
	}
	if ValidUserType(UserTypeAdmin) {
		t.Error("admin no se registra por la API")
	}
}

func TestContactNumber(t *testing.T) {
	u := User{Phone: "2644111111", WhatsappNumber: "2644222222"}
	if got := u.ContactNumber(); got != "2644222222" {
		t.Errorf("debe preferir el número de WhatsApp, got %q", got)
	}

	u.WhatsappNumber = ""
	if got := u.ContactNumber(); got != "2644111111" {
		t.Errorf("sin WhatsApp cae al teléfono, got %q", got)
	}
}
