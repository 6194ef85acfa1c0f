package models

import "gorm.io/gorm"

const (
	BookingStatusPending  = "PENDING"
	BookingStatusApproved = "APPROVED"
	BookingStatusDeclined = "DECLINED"
)

type Booking struct {
	gorm.Model
	UserID      uint    `json:"user_id" gorm:"index;not null"`
	User        User    `json:"-" gorm:"foreignKey:UserID"`
	TripID      uint    `json:"trip_id" gorm:"index;not null"`
	Trip        Trip    `json:"trip" gorm:"foreignKey:TripID"`
	Name        string  `json:"name" gorm:"size:150"`
	Email       string  `json:"email" gorm:"size:254"`
	Phone       string  `json:"phone" gorm:"size:20"`
	Persons     int     `json:"persons" gorm:"not null"`
	TotalAmount float64 `json:"total_amount"` // trip price x persons, frozen at creation
	Status      string  `json:"status" gorm:"type:varchar(10);default:PENDING;index"`
	AdminNote   string  `json:"admin_note" gorm:"type:text"`
	TravelDate  string  `json:"travel_date" gorm:"size:20"`
}
