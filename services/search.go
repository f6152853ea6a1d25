package services

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"desdeaca/dto"
	"desdeaca/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Palabras clave por tipo de propiedad, ya sin tildes.
var typeKeywords = map[string][]string{
	models.TypeHouse:     {"casa", "casa quinta", "chalet", "casa con pileta"},
	models.TypeApartment: {"departamento", "depto", "dpto", "apartamento"},
	models.TypeCabin:     {"cabana", "cabanas", "refugio"},
	models.TypeStudio:    {"monoambiente", "estudio", "studio"},
}

var guestsRegex = regexp.MustCompile(`(\d+)\s*personas?`)

// normalizeQuery baja a minúsculas y saca tildes, para que "Ullúm"
// y "ullum" busquen lo mismo.
func normalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func newMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity da la similitud [0,1] entre dos strings por
// distancia de Levenshtein.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// extractGuests saca "para 4 personas" de la consulta; -1 si no hay.
func extractGuests(query string) int {
	match := guestsRegex.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return n
}

var propertyTypeOrder = []string{models.TypeHouse, models.TypeApartment, models.TypeCabin, models.TypeStudio}

// parsePropertyType mapea la consulta libre a un tipo de propiedad.
// Primero busca las palabras clave directamente en la consulta; la
// coincidencia aproximada queda como respaldo para errores de tipeo.
func parsePropertyType(query string) string {
	normalized := normalizeQuery(query)

	for _, ptype := range propertyTypeOrder {
		for _, kw := range typeKeywords[ptype] {
			if strings.Contains(normalized, kw) {
				return ptype
			}
		}
	}

	words := strings.Fields(normalized)
	for _, ptype := range propertyTypeOrder {
		matcher := newMatcher(typeKeywords[ptype])
		for _, w := range words {
			if m := matcher.Closest(w); m != "" && calculateSimilarity(w, m) > 0.7 {
				return ptype
			}
		}
	}
	return ""
}

// parseArea busca una zona de San Juan dentro de la consulta.
func parseArea(query string) string {
	normalized := normalizeQuery(query)
	for _, area := range models.SanJuanAreas {
		spoken := strings.ReplaceAll(area, "_", " ")
		if strings.Contains(normalized, spoken) || strings.Contains(normalized, area) {
			return area
		}
	}
	cm := newMatcher(models.SanJuanAreas)
	if m := cm.Closest(normalized); m != "" && strings.Contains(normalized, m) {
		return m
	}
	return ""
}

// scoreProperty puntúa una propiedad contra la consulta: tipo pesa
// 20, zona 13, capacidad 10, texto 8 y amenities hasta 12.
func scoreProperty(query string, p *dto.PropertyResponse) int {
	normalized := normalizeQuery(query)
	score := 0

	if ptype := parsePropertyType(normalized); ptype != "" && ptype == p.PropertyType {
		score += 20
	}
	if area := parseArea(normalized); area != "" && area == p.Area {
		score += 13
	}
	if guests := extractGuests(normalized); guests > 0 && p.Capacity >= guests {
		score += 10
	}
	if strings.Contains(normalizeQuery(p.Title), normalized) || strings.Contains(normalizeQuery(p.Description), normalized) {
		score += 8
	}
	score += scoreAmenities(normalized, p.Amenities)

	return score
}

func scoreAmenities(query string, amenities []string) int {
	const maxAmenityScore = 12
	score := 0
	for _, amenity := range amenities {
		normalized := normalizeQuery(strings.ReplaceAll(amenity, "_", " "))
		if strings.Contains(query, normalized) || calculateSimilarity(query, normalized) > 0.7 {
			score += 4
			if score >= maxAmenityScore {
				break
			}
		}
	}
	return score
}

// SmartSearch puntúa en paralelo las propiedades activas contra una
// consulta libre y devuelve las que suman algo, ordenadas por puntaje.
func (s *PropertyService) SmartSearch(ctx context.Context, query string) ([]dto.ScoredProperty, error) {
	var props []models.Property
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("status = ?", models.StatusActive).
		Find(&props).Error
	if err != nil {
		return nil, err
	}

	scoreCh := make(chan dto.ScoredProperty, len(props))
	var wg sync.WaitGroup

	for i := range props {
		wg.Add(1)
		go func(p *models.Property) {
			defer wg.Done()
			resp := ToPropertyResponse(p)
			if score := scoreProperty(query, &resp); score > 0 {
				scoreCh <- dto.ScoredProperty{Property: resp, Score: score}
			}
		}(&props[i])
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	scored := make([]dto.ScoredProperty, 0)
	for sp := range scoreCh {
		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Property.ID > scored[j].Property.ID
	})
	return scored, nil
}
