package models

import "gorm.io/gorm"

// SiteStat is a counter shown on the landing page ("120+ destinations" etc).
type SiteStat struct {
	gorm.Model
	Label        string `json:"label" gorm:"size:100;not null"`
	Value        int    `json:"value" gorm:"not null"`
	Suffix       string `json:"suffix" gorm:"size:10"`
	DisplayOrder int    `json:"display_order" gorm:"default:0;index"`
}
