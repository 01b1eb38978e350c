package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	CourseID uint   `gorm:"not null;uniqueIndex:idx_review_user_course" json:"courseId"`
	UserID   uint   `gorm:"not null;uniqueIndex:idx_review_user_course" json:"userId"`
	Rating   int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment  string `gorm:"type:text;default:''" json:"comment"`
	User     User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course   Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string {
	return "course_reviews"
}
