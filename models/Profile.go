package models

import "gorm.io/gorm"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Profile carries everything about a user that is not a credential.
// Authorization reads the role from here, never from the token.
type Profile struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Role   string `json:"role" gorm:"type:varchar(10);default:USER;index"`
}
