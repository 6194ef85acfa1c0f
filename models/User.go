package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string   `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email    string   `json:"email" gorm:"size:254;index"`
	Password string   `json:"-"`
	Profile  *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

// AfterCreate guarantees every account gets exactly one profile row.
func (u *User) AfterCreate(tx *gorm.DB) error {
	profile := Profile{UserID: u.ID, Role: RoleUser}
	return tx.Where(Profile{UserID: u.ID}).FirstOrCreate(&profile).Error
}
