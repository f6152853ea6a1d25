package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Estados canónicos de una propiedad. El esquema viejo usaba
// pendiente/aprobado/rechazado; ver MapLegacyStatus.
const (
	StatusPendingApproval = "pending_approval"
	StatusActive          = "active"
	StatusInactive        = "inactive"
)

// Tipos de propiedad publicables.
const (
	TypeHouse     = "house"
	TypeApartment = "apartment"
	TypeCabin     = "cabin"
	TypeStudio    = "studio"
)

// SanJuanAreas son las zonas fijas de San Juan admitidas en los filtros.
var SanJuanAreas = []string{
	"centro",
	"villa_krause",
	"chimbas",
	"rawson",
	"pocito",
	"santa_lucia",
	"ullum",
	"zonda",
	"caucete",
	"rivadavia",
}

type Property struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	OwnerID      uint            `json:"owner_id" gorm:"index"`
	Owner        User            `json:"owner" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Title        string          `json:"title" gorm:"size:200;not null"`
	Description  string          `json:"description" gorm:"type:text"`
	PropertyType string          `json:"property_type" gorm:"size:50;index;not null"`
	Area         string          `json:"area" gorm:"size:50;index;not null"`
	Address      string          `json:"address" gorm:"type:text"`
	Coordinates  json.RawMessage `json:"coordinates" gorm:"type:jsonb"`
	Images       pq.StringArray  `json:"images" gorm:"type:text[]"`
	Amenities    pq.StringArray  `json:"amenities" gorm:"type:text[]"`
	Rules        pq.StringArray  `json:"rules" gorm:"type:text[]"`
	Capacity     int             `json:"capacity" gorm:"not null;default:1"`
	Bedrooms     int             `json:"bedrooms" gorm:"default:0"`
	Bathrooms    int             `json:"bathrooms" gorm:"default:0"`
	PriceDaily   float64         `json:"price_daily" gorm:"type:decimal(10,2);index;not null"`
	PriceWeekly  float64         `json:"price_weekly" gorm:"type:decimal(10,2)"`
	PriceMonthly float64         `json:"price_monthly" gorm:"type:decimal(10,2)"`
	Status       string          `json:"status" gorm:"size:20;index;default:pending_approval"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// ValidStatus indica si el estado pertenece a la enumeración canónica.
func ValidStatus(status string) bool {
	switch status {
	case StatusPendingApproval, StatusActive, StatusInactive:
		return true
	}
	return false
}

// ValidPropertyType indica si el tipo es uno de los publicables.
func ValidPropertyType(t string) bool {
	switch t {
	case TypeHouse, TypeApartment, TypeCabin, TypeStudio:
		return true
	}
	return false
}

// ValidArea indica si la zona pertenece a la enumeración fija de San Juan.
func ValidArea(area string) bool {
	for _, a := range SanJuanAreas {
		if a == area {
			return true
		}
	}
	return false
}

// MapLegacyStatus traduce los estados del esquema viejo al canónico.
// Un estado ya canónico se devuelve sin cambios.
func MapLegacyStatus(status string) (string, error) {
	switch status {
	case "pendiente":
		return StatusPendingApproval, nil
	case "aprobado":
		return StatusActive, nil
	case "rechazado":
		return StatusInactive, nil
	}
	if ValidStatus(status) {
		return status, nil
	}
	return "", fmt.Errorf("estado desconocido: %q", status)
}
