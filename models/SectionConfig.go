package models

import "time"

// Fixed primary keys for the two showcase sections. Pinning the ID keeps each
// config to a single row; the primary-key constraint resolves the
// concurrent get-or-create race (one insert wins, the loser re-reads).
const (
	InternationalSectionID uint = 1
	IndiaSectionID         uint = 2
)

type SectionConfig struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	IsEnabled   bool      `json:"is_enabled" gorm:"default:true"`
	Title       string    `json:"title" gorm:"size:200"`
	Subtitle    string    `json:"subtitle" gorm:"size:300"`
	ScrollSpeed int       `json:"scroll_speed" gorm:"default:40"`
	UpdatedAt   time.Time `json:"updated_at"`
}
