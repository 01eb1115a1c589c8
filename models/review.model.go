package models

import (
	"fmt"
	"regexp"
	"strconv"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	CourseID   uint   `gorm:"not null;index" json:"course_id"`
	CourseCode string `gorm:"not null" json:"course_code"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	Semester   string `gorm:"type:varchar(20);not null" json:"semester"`   // e.g. "Fall 2025"
	Difficulty string `gorm:"type:varchar(20);not null" json:"difficulty"` // one of DifficultyScale
	Workload   string `gorm:"type:varchar(20);not null" json:"workload"`   // "<n> hrs/wk"
	Rating     string `gorm:"type:varchar(20);not null" json:"rating"`     // one of RatingScale
	Comment    string `gorm:"type:text;not null" json:"comment"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`

	// Association - omit in JSON unless Preloaded
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

const (
	MinCommentLength = 50
	MaxCommentLength = 2000
	MaxWorkloadHours = 168 // hours in a week
)

// DifficultyScale maps the five difficulty labels to their numeric value,
// which is what summary averages are computed over.
var DifficultyScale = map[string]int{
	"Very Easy": 1,
	"Easy":      2,
	"Moderate":  3,
	"Hard":      4,
	"Very Hard": 5,
}

// RatingScale maps the five rating labels to their numeric value.
var RatingScale = map[string]int{
	"Poor":      1,
	"Fair":      2,
	"Good":      3,
	"Very Good": 4,
	"Excellent": 5,
}

var workloadPattern = regexp.MustCompile(`^(\d+) hrs/wk$`)

// FormatWorkload renders the stored workload string for n hours per week
func FormatWorkload(hours int) string {
	return fmt.Sprintf("%d hrs/wk", hours)
}

// ParseWorkload extracts the hours from a stored workload string
func ParseWorkload(workload string) (int, bool) {
	m := workloadPattern.FindStringSubmatch(workload)
	if m == nil {
		return 0, false
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return hours, true
}
