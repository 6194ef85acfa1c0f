package models

import "time"

// TripView records the last time a user opened a trip page. One row per
// (user, trip) pair; repeated views only bump the timestamp.
type TripView struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_trip_views_user_trip"`
	TripID   uint      `json:"trip_id" gorm:"not null;uniqueIndex:idx_trip_views_user_trip"`
	ViewedAt time.Time `json:"viewed_at"`
}
