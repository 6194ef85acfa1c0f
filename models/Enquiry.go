package models

import "gorm.io/gorm"

type Enquiry struct {
	gorm.Model
	TripID  uint   `json:"trip_id" gorm:"index;not null"`
	Trip    Trip   `json:"trip" gorm:"foreignKey:TripID"`
	UserID  *uint  `json:"user_id" gorm:"index"` // nil for anonymous enquiries
	Name    string `json:"name" gorm:"size:150"`
	Email   string `json:"email" gorm:"size:254"`
	Phone   string `json:"phone" gorm:"size:20"`
	Message string `json:"message" gorm:"type:text;not null"`
}
