package models

import "gorm.io/gorm"

type EnrollmentStatus string

const (
	EnrollmentRequested EnrollmentStatus = "REQUESTED"
	EnrollmentBooked    EnrollmentStatus = "BOOKED"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentRejected  EnrollmentStatus = "REJECTED"
)

// Enrollment records one user's relationship to one course. Lifecycle:
// REQUESTED -> BOOKED (tutor accepts, consumes a seat), REQUESTED -> REJECTED,
// BOOKED -> COMPLETED (sweep over past-dated courses). REJECTED and COMPLETED
// are terminal.
type Enrollment struct {
	gorm.Model
	CourseID  uint             `gorm:"not null;uniqueIndex:idx_enrollment_course_user" json:"courseId"`
	UserID    uint             `gorm:"not null;uniqueIndex:idx_enrollment_course_user" json:"userId"`
	Status    EnrollmentStatus `gorm:"not null;default:'REQUESTED'" json:"status"`
	Reference string           `gorm:"size:36" json:"reference"`
	User      User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course    Course           `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Enrollment) TableName() string {
	return "course_enrollment"
}
