package models

import "time"

// Favorite is a plain (user, course) bookmark. No soft delete: toggling off
// removes the row so the unique index allows toggling back on.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_course" json:"userId"`
	CourseID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_course" json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}
