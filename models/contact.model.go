package models

import "gorm.io/gorm"

type ContactRequest struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
}
