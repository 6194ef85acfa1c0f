package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	Name       string `json:"name" gorm:"size:150"`
	Location   string `json:"location" gorm:"size:100"`
	Rating     int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Body       string `json:"body" gorm:"type:text"`
	IsApproved bool   `json:"is_approved" gorm:"default:false;index"`
}
