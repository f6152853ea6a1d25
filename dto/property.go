package dto

import (
	"encoding/json"
	"time"
)

// PropertyRequest es el cuerpo de alta de una propiedad. El estado lo
// fija el servidor; lo que mande el cliente se ignora.
type PropertyRequest struct {
	OwnerID      uint            `json:"owner_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	PropertyType string          `json:"property_type"`
	Area         string          `json:"area"`
	Address      string          `json:"address"`
	Coordinates  json.RawMessage `json:"coordinates"`
	Images       []string        `json:"images"`
	Amenities    []string        `json:"amenities"`
	AmenitiesRaw string          `json:"amenities_raw"`
	Rules        []string        `json:"rules"`
	Capacity     int             `json:"capacity"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    int             `json:"bathrooms"`
	PriceDaily   float64         `json:"price_daily"`
	PriceWeekly  float64         `json:"price_weekly"`
	PriceMonthly float64         `json:"price_monthly"`
}

// PropertyUpdateRequest es el cuerpo de actualización parcial.
// Los punteros distinguen "no enviado" de valor cero.
type PropertyUpdateRequest struct {
	OwnerID      uint            `json:"owner_id"`
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	PropertyType *string         `json:"property_type"`
	Area         *string         `json:"area"`
	Address      *string         `json:"address"`
	Coordinates  json.RawMessage `json:"coordinates"`
	Images       []string        `json:"images"`
	Amenities    []string        `json:"amenities"`
	Rules        []string        `json:"rules"`
	Capacity     *int            `json:"capacity"`
	Bedrooms     *int            `json:"bedrooms"`
	Bathrooms    *int            `json:"bathrooms"`
	PriceDaily   *float64        `json:"price_daily"`
	PriceWeekly  *float64        `json:"price_weekly"`
	PriceMonthly *float64        `json:"price_monthly"`
}

// SearchFilters son los filtros del listado. Los ausentes no
// restringen nada; se combinan con AND.
type SearchFilters struct {
	Area         string
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
	Capacity     *int
	Search       string
	Status       string
	Page         int
	Limit        int
}

// PriceResponse agrupa los tres precios en la forma que espera el
// frontend.
type PriceResponse struct {
	Daily   float64  `json:"daily"`
	Weekly  *float64 `json:"weekly"`
	Monthly *float64 `json:"monthly"`
}

// OwnerResponse es el dueño aplanado dentro de una propiedad.
type OwnerResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}

// PropertyResponse es la forma normalizada de salida: precios
// agrupados, dueño aplanado y listas siempre presentes.
type PropertyResponse struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	PropertyType string          `json:"property_type"`
	Area         string          `json:"area"`
	Address      string          `json:"address"`
	Coordinates  json.RawMessage `json:"coordinates,omitempty"`
	Images       []string        `json:"images"`
	Amenities    []string        `json:"amenities"`
	Rules        []string        `json:"rules"`
	Capacity     int             `json:"capacity"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    int             `json:"bathrooms"`
	Price        PriceResponse   `json:"price"`
	Status       string          `json:"status"`
	Owner        OwnerResponse   `json:"owner"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ScoredProperty es una propiedad con su puntaje de relevancia en la
// búsqueda libre.
type ScoredProperty struct {
	Property PropertyResponse `json:"property"`
	Score    int              `json:"score"`
}
