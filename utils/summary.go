package utils

import (
	"crev/database"
	"crev/models"
	"errors"
	"log"
	"math"

	"gorm.io/gorm"
)

// RecomputeCourseSummary rebuilds the stored aggregate for one course from its
// non-deleted reviews. A review with an unknown label or a malformed workload
// string contributes nothing to that particular average.
func RecomputeCourseSummary(db *gorm.DB, courseID uint) error {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return err
	}

	var reviews []models.Review
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&reviews).Error; err != nil {
		return err
	}

	var diffSum, ratSum, wlSum float64
	var diffCount, ratCount, wlCount int
	for _, r := range reviews {
		if v, ok := models.DifficultyScale[r.Difficulty]; ok {
			diffSum += float64(v)
			diffCount++
		}
		if v, ok := models.RatingScale[r.Rating]; ok {
			ratSum += float64(v)
			ratCount++
		}
		if hours, ok := models.ParseWorkload(r.Workload); ok {
			wlSum += float64(hours)
			wlCount++
		}
	}

	summary := models.CourseSummary{
		CourseID:     course.ID,
		CourseCode:   course.CourseCode,
		TotalReviews: int64(len(reviews)),
	}
	if diffCount > 0 {
		summary.AverageDifficulty = diffSum / float64(diffCount)
	}
	if ratCount > 0 {
		summary.AverageRating = ratSum / float64(ratCount)
	}
	if wlCount > 0 {
		summary.AverageWorkload = wlSum / float64(wlCount)
	}

	var existing models.CourseSummary
	if err := db.Where("course_id = ?", course.ID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.Create(&summary).Error
		}
		return err
	}

	existing.CourseCode = summary.CourseCode
	existing.TotalReviews = summary.TotalReviews
	existing.AverageDifficulty = summary.AverageDifficulty
	existing.AverageWorkload = summary.AverageWorkload
	existing.AverageRating = summary.AverageRating
	return db.Save(&existing).Error
}

// RecomputeAllSummaries refreshes every course aggregate. Used by the scheduler.
func RecomputeAllSummaries() {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		log.Printf("[SUMMARY-SCHEDULER] Error fetching courses: %v", err)
		return
	}

	for _, course := range courses {
		if err := RecomputeCourseSummary(db, course.ID); err != nil {
			log.Printf("[SUMMARY-SCHEDULER] Error recomputing summary for %s: %v", course.CourseCode, err)
		}
	}
}

// RoundForDisplay rounds an average to 2 decimals; whole numbers stay whole.
func RoundForDisplay(v float64) float64 {
	return math.Round(v*100) / 100
}
