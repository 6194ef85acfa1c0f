package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Trip struct {
	gorm.Model
	Title            string         `json:"title" gorm:"size:200;not null"`
	Location         string         `json:"location" gorm:"size:100"`
	Country          string         `json:"country" gorm:"size:100"`
	State            string         `json:"state" gorm:"size:100"`
	Price            float64        `json:"price" gorm:"not null"`
	DurationDays     int            `json:"duration_days"`
	Description      string         `json:"description" gorm:"type:text"`
	ShortDescription string         `json:"short_description" gorm:"size:300"`
	Itinerary        datatypes.JSON `json:"itinerary"`  // array of day descriptions
	Highlights       datatypes.JSON `json:"highlights"` // array of strings
	Inclusions       datatypes.JSON `json:"inclusions"` // array of strings
	Exclusions       datatypes.JSON `json:"exclusions"` // array of strings
	Image            string         `json:"image" gorm:"size:512"`
	IsActive         bool           `json:"is_active" gorm:"default:true;index"`

	// Showcase section flags and per-section ordering
	IsInternational            bool `json:"is_international" gorm:"default:false;index"`
	ShowInInternationalSection bool `json:"show_in_international_section" gorm:"default:false"`
	DisplayOrder               int  `json:"display_order" gorm:"default:0"`
	ShowInIndiaSection         bool `json:"show_in_india_section" gorm:"default:false"`
	IndiaDisplayOrder          int  `json:"india_display_order" gorm:"default:0"`
}

// Custom JSON marshaling so the JSON columns come out as string arrays
func (t *Trip) MarshalJSON() ([]byte, error) {
	type Alias Trip
	aux := &struct {
		Itinerary  []string `json:"itinerary"`
		Highlights []string `json:"highlights"`
		Inclusions []string `json:"inclusions"`
		Exclusions []string `json:"exclusions"`
		*Alias
	}{
		Itinerary:  []string{},
		Highlights: []string{},
		Inclusions: []string{},
		Exclusions: []string{},
		Alias:      (*Alias)(t),
	}

	if t.Itinerary != nil {
		var itinerary []string
		if err := json.Unmarshal(t.Itinerary, &itinerary); err == nil {
			aux.Itinerary = itinerary
		}
	}

	if t.Highlights != nil {
		var highlights []string
		if err := json.Unmarshal(t.Highlights, &highlights); err == nil {
			aux.Highlights = highlights
		}
	}

	if t.Inclusions != nil {
		var inclusions []string
		if err := json.Unmarshal(t.Inclusions, &inclusions); err == nil {
			aux.Inclusions = inclusions
		}
	}

	if t.Exclusions != nil {
		var exclusions []string
		if err := json.Unmarshal(t.Exclusions, &exclusions); err == nil {
			aux.Exclusions = exclusions
		}
	}

	return json.Marshal(aux)
}
