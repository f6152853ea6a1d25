package utils

import (
	"encoding/json"
	"strings"
)

// ParseStringList decodifica un campo de lista que puede venir en los
// formatos viejos: array JSON en texto, lista separada por comas, o un
// string suelto. Nunca falla: ante cualquier problema devuelve lista
// vacía. Un valor ya decodificado como array se devuelve tal cual.
func ParseStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}

	// Compatibilidad con filas viejas: "wifi, parking" o un string pelado
	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		// JSON malformado de verdad, no una lista por comas
		return []string{}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EnsureStringList garantiza que el valor sea siempre una lista,
// incluso para filas viejas guardadas como string suelto.
func EnsureStringList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
