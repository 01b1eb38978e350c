package models

import "gorm.io/gorm"

const (
	RoleAdmin   = "admin"
	RoleTutor   = "tutor"
	RoleStudent = "student"
)

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:'student'" json:"role"`
	BirthDate    string `gorm:"default:''" json:"birthDate"`
	ProfileImage string `gorm:"default:''" json:"profileImage"`
	IsDeleted    bool   `gorm:"default:false" json:"-"`
}
