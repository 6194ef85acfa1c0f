package models

import "gorm.io/gorm"

type ContactMessage struct {
	gorm.Model
	Name    string `json:"name" gorm:"size:150"`
	Email   string `json:"email" gorm:"size:254"`
	Phone   string `json:"phone" gorm:"size:20"`
	Subject string `json:"subject" gorm:"size:200"`
	Message string `json:"message" gorm:"type:text;not null"`
}
