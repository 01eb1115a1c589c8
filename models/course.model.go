package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	CourseCode string `gorm:"unique;not null" json:"course_code"` // e.g. "CIT-5920"
	CourseName string `gorm:"not null" json:"course_name"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`
}
