package services

import (
	"net/url"
	"testing"

	"desdeaca/models"
)

func TestDerivePrices(t *testing.T) {
	tests := []struct {
		name        string
		daily       float64
		weekly      float64
		monthly     float64
		wantWeekly  float64
		wantMonthly float64
	}{
		{"ambos derivados", 1000, 0, 0, 6300, 24000},
		{"ambos cargados", 1000, 5000, 20000, 5000, 20000},
		{"solo semanal cargado", 1000, 6000, 0, 6000, 24000},
		{"negativo se deriva", 1000, -1, -1, 6300, 24000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weekly, monthly := DerivePrices(tt.daily, tt.weekly, tt.monthly)
			if weekly != tt.wantWeekly {
				t.Errorf("weekly = %v, want %v", weekly, tt.wantWeekly)
			}
			if monthly != tt.wantMonthly {
				t.Errorf("monthly = %v, want %v", monthly, tt.wantMonthly)
			}
		})
	}
}

func TestParseSearchFiltersDefaults(t *testing.T) {
	f, err := ParseSearchFilters(url.Values{})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if f.Status != models.StatusActive {
		t.Errorf("Status = %q, want %q", f.Status, models.StatusActive)
	}
	if f.Page != 1 {
		t.Errorf("Page = %d, want 1", f.Page)
	}
	if f.Limit != DefaultPageLimit {
		t.Errorf("Limit = %d, want %d", f.Limit, DefaultPageLimit)
	}
	if f.MinPrice != nil || f.MaxPrice != nil || f.Capacity != nil {
		t.Error("los filtros numéricos ausentes deben quedar en nil")
	}
}

func TestParseSearchFiltersCompletos(t *testing.T) {
	q := url.Values{}
	q.Set("area", "pocito")
	q.Set("property_type", "cabin")
	q.Set("min_price", "1500.50")
	q.Set("max_price", "9000")
	q.Set("capacity", "4")
	q.Set("search", "  pileta ")
	q.Set("page", "2")
	q.Set("limit", "10")

	f, err := ParseSearchFilters(q)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if f.Area != "pocito" || f.PropertyType != "cabin" {
		t.Errorf("area/tipo = %q/%q", f.Area, f.PropertyType)
	}
	if f.MinPrice == nil || *f.MinPrice != 1500.50 {
		t.Errorf("MinPrice = %v", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 9000 {
		t.Errorf("MaxPrice = %v", f.MaxPrice)
	}
	if f.Capacity == nil || *f.Capacity != 4 {
		t.Errorf("Capacity = %v", f.Capacity)
	}
	if f.Search != "pileta" {
		t.Errorf("Search = %q, el término debe venir sin espacios", f.Search)
	}
	if f.Page != 2 || f.Limit != 10 {
		t.Errorf("page/limit = %d/%d", f.Page, f.Limit)
	}
}

func TestParseSearchFiltersMalformados(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"min_price no numérico", "min_price", "abc"},
		{"max_price no numérico", "max_price", "mil"},
		{"capacity no numérico", "capacity", "cuatro"},
		{"page cero", "page", "0"},
		{"page no numérico", "page", "x"},
		{"limit cero", "limit", "0"},
		{"zona desconocida", "area", "springfield"},
		{"tipo desconocido", "property_type", "castillo"},
		{"estado desconocido", "status", "publicado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			q.Set(tt.key, tt.value)
			if _, err := ParseSearchFilters(q); err == nil {
				t.Errorf("se esperaba error para %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestParseSearchFiltersEstadoLegacy(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aprobado", models.StatusActive},
		{"pendiente", models.StatusPendingApproval},
		{"rechazado", models.StatusInactive},
		{"active", models.StatusActive},
	}

	for _, tt := range tests {
		q := url.Values{}
		q.Set("status", tt.in)
		f, err := ParseSearchFilters(q)
		if err != nil {
			t.Errorf("status=%q rechazado: %v", tt.in, err)
			continue
		}
		if f.Status != tt.want {
			t.Errorf("status=%q → %q, want %q", tt.in, f.Status, tt.want)
		}
	}
}

func TestParseSearchFiltersLimiteMaximo(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "500")
	f, err := ParseSearchFilters(q)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if f.Limit != MaxPageLimit {
		t.Errorf("Limit = %d, debe recortarse a %d", f.Limit, MaxPageLimit)
	}
}

func TestToPropertyResponse(t *testing.T) {
	prop := &models.Property{
		ID:           7,
		Title:        "Casa en Rivadavia",
		PropertyType: models.TypeHouse,
		Area:         "rivadavia",
		Capacity:     6,
		PriceDaily:   2000,
		PriceWeekly:  0,
		PriceMonthly: 40000,
		Status:       models.StatusActive,
		Owner: models.User{
			ID:             3,
			Name:           "Marta",
			Phone:          "2644111111",
			WhatsappNumber: "2644222222",
			Verified:       true,
		},
	}

	resp := ToPropertyResponse(prop)

	if resp.Price.Daily != 2000 {
		t.Errorf("Price.Daily = %v", resp.Price.Daily)
	}
	if resp.Price.Weekly != nil {
		t.Error("sin precio semanal cargado, Weekly debe ser nil")
	}
	if resp.Price.Monthly == nil || *resp.Price.Monthly != 40000 {
		t.Errorf("Price.Monthly = %v", resp.Price.Monthly)
	}
	if resp.Images == nil || resp.Amenities == nil || resp.Rules == nil {
		t.Error("las listas deben salir siempre como arrays, nunca null")
	}
	if resp.Owner.Phone != "2644222222" {
		t.Errorf("Owner.Phone = %q, debe preferir el número de WhatsApp", resp.Owner.Phone)
	}
	if !resp.Owner.Verified {
		t.Error("Owner.Verified perdido en la conversión")
	}
}
