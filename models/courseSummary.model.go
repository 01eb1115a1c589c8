package models

import "gorm.io/gorm"

// CourseSummary holds the precomputed per-course aggregate statistics.
// Stored values are raw; display rounding happens when the summary is served.
type CourseSummary struct {
	gorm.Model
	CourseID          uint    `gorm:"uniqueIndex;not null" json:"course_id"`
	CourseCode        string  `gorm:"not null" json:"course_code"`
	TotalReviews      int64   `gorm:"default:0" json:"totalReviews"`
	AverageDifficulty float64 `gorm:"default:0" json:"averageDifficulty"`
	AverageWorkload   float64 `gorm:"default:0" json:"averageWorkload"`
	AverageRating     float64 `gorm:"default:0" json:"averageRating"`
}
