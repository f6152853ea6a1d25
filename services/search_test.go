package services

import (
	"testing"

	"desdeaca/dto"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ullúm", "ullum"},
		{"  Cabaña en ZONDA  ", "cabana en zonda"},
		{"departamento céntrico", "departamento centrico"},
	}

	for _, tt := range tests {
		if got := normalizeQuery(tt.in); got != tt.want {
			t.Errorf("normalizeQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractGuests(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"casa para 4 personas", 4},
		{"depto para 1 persona", 1},
		{"cabana en zonda", -1},
		{"para  6  personas", 6},
	}

	for _, tt := range tests {
		if got := extractGuests(tt.query); got != tt.want {
			t.Errorf("extractGuests(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestParseArea(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"departamento en villa krause", "villa_krause"},
		{"casa en pocito para 4 personas", "pocito"},
		{"cabaña en Zonda", "zonda"},
		{"algo sin zona conocida", ""},
	}

	for _, tt := range tests {
		if got := parseArea(tt.query); got != tt.want {
			t.Errorf("parseArea(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestParsePropertyType(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"casa en pocito", "house"},
		{"casa quinta con pileta", "house"},
		{"departamento en el centro", "apartment"},
		{"depto para 2 personas", "apartment"},
		{"cabaña para el finde", "cabin"},
		{"monoambiente amoblado", "studio"},
		{"cassa en pocito", "house"},
		{"deparamento centrico", "apartment"},
		{"alquiler barato en rawson", ""},
	}

	for _, tt := range tests {
		if got := parsePropertyType(tt.query); got != tt.want {
			t.Errorf("parsePropertyType(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("pileta", "pileta"); got != 1.0 {
		t.Errorf("strings iguales deben dar 1.0, got %v", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("strings vacíos deben dar 1.0, got %v", got)
	}
	if got := calculateSimilarity("wifi", "xyzw"); got > 0.5 {
		t.Errorf("strings distintos deben dar similitud baja, got %v", got)
	}
}

func TestScoreAmenities(t *testing.T) {
	score := scoreAmenities("casa con wifi y cochera", []string{"wifi", "cochera", "jacuzzi"})
	if score != 8 {
		t.Errorf("dos amenities coincidentes deben sumar 8, got %d", score)
	}

	capped := scoreAmenities("wifi cochera pileta parrilla", []string{"wifi", "cochera", "pileta", "parrilla"})
	if capped != 12 {
		t.Errorf("el puntaje por amenities se recorta en 12, got %d", capped)
	}

	if got := scoreAmenities("cabana en zonda", nil); got != 0 {
		t.Errorf("sin amenities el puntaje es 0, got %d", got)
	}
}

func TestScorePropertyPrioridades(t *testing.T) {
	matching := dto.PropertyResponse{
		Title:        "Cabaña familiar",
		Description:  "Linda vista a la montaña",
		PropertyType: "cabin",
		Area:         "zonda",
		Capacity:     4,
	}
	other := dto.PropertyResponse{
		Title:        "Departamento amplio",
		Description:  "A una cuadra de la peatonal",
		PropertyType: "apartment",
		Area:         "centro",
		Capacity:     2,
	}

	query := "cabaña en zonda para 3 personas"
	scoreMatching := scoreProperty(query, &matching)
	scoreOther := scoreProperty(query, &other)

	if scoreMatching <= scoreOther {
		t.Errorf("la propiedad que coincide debe puntuar más: %d vs %d", scoreMatching, scoreOther)
	}
	// tipo 20 + zona 13 + capacidad 10
	if scoreMatching < 43 {
		t.Errorf("se esperaba al menos 43 puntos, got %d", scoreMatching)
	}
}
