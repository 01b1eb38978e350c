package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title        string `gorm:"not null" json:"title"`
	Category     string `gorm:"not null" json:"category"`
	Subcategory  string `gorm:"not null" json:"subcategory"`
	Level        string `gorm:"not null" json:"level"`
	MaxStudents  int    `gorm:"not null" json:"maxStudents"`
	TutoringType string `gorm:"not null" json:"tutoringType"`
	Date         string `gorm:"not null" json:"date"` // ISO date (YYYY-MM-DD), compared lexically
	Time         string `gorm:"not null" json:"time"`
	MeetingLink  string `gorm:"not null" json:"meetingLink"`
	Description  string `gorm:"type:text;default:''" json:"description"`
	UserID       uint   `gorm:"index;not null" json:"userId"`
	IsDeleted    bool   `gorm:"default:false" json:"-"`
	User         User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// CourseAvailability tracks seat usage for a course. Exactly one row per
// course; ActualStudents never exceeds MaxStudents.
type CourseAvailability struct {
	gorm.Model
	CourseID       uint   `gorm:"uniqueIndex;not null" json:"courseId"`
	MaxStudents    int    `gorm:"not null" json:"maxStudents"`
	ActualStudents int    `gorm:"not null;default:0" json:"actualStudents"`
	Course         Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CourseAvailability) TableName() string {
	return "course_availability"
}
