package utils

import (
	"reflect"
	"testing"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"array JSON", `["wifi","parking"]`, []string{"wifi", "parking"}},
		{"lista por comas", "wifi, parking", []string{"wifi", "parking"}},
		{"string suelto", "wifi", []string{"wifi"}},
		{"vacío", "", []string{}},
		{"solo espacios", "   ", []string{}},
		{"JSON malformado", `["wifi",`, []string{}},
		{"objeto JSON", `{"wifi":true}`, []string{}},
		{"null JSON", "null", []string{}},
		{"comas con vacíos", "wifi,, parking, ", []string{"wifi", "parking"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStringList(tt.in)
			if got == nil {
				t.Fatal("nunca debe devolver nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseStringList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnsureStringList(t *testing.T) {
	if got := EnsureStringList(nil); got == nil || len(got) != 0 {
		t.Errorf("nil debe volverse lista vacía, got %v", got)
	}
	in := []string{"wifi"}
	if got := EnsureStringList(in); !reflect.DeepEqual(got, in) {
		t.Errorf("una lista existente se devuelve igual, got %v", got)
	}
}
