package utils

import (
	"crev/database"
	"crev/models"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.Review{}, &models.CourseSummary{}))
	database.Database = database.DbInstance{Db: db}
	return db
}

func addReview(t *testing.T, db *gorm.DB, course models.Course, userID uint, difficulty, workload, rating string) {
	t.Helper()
	review := models.Review{
		CourseID:   course.ID,
		CourseCode: course.CourseCode,
		UserID:     userID,
		Semester:   "Fall 2024",
		Difficulty: difficulty,
		Workload:   workload,
		Rating:     rating,
		Comment:    strings.Repeat("a", 60),
	}
	require.NoError(t, db.Create(&review).Error)
}

func TestRoundForDisplay(t *testing.T) {
	assert.Equal(t, 4.33, RoundForDisplay(13.0/3.0))
	assert.Equal(t, 4.34, RoundForDisplay(4.336))
	assert.Equal(t, 12.5, RoundForDisplay(12.5))
	assert.Equal(t, 3.0, RoundForDisplay(3.0))
	assert.Equal(t, 0.0, RoundForDisplay(0))
}

func TestRecomputeCourseSummary(t *testing.T) {
	db := setupDB(t)
	course := models.Course{CourseCode: "CIT-5920", CourseName: "Intro to Algorithms"}
	require.NoError(t, db.Create(&course).Error)

	addReview(t, db, course, 1, "Easy", "10 hrs/wk", "Good")
	addReview(t, db, course, 2, "Hard", "20 hrs/wk", "Excellent")

	require.NoError(t, RecomputeCourseSummary(db, course.ID))

	var summary models.CourseSummary
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&summary).Error)
	assert.Equal(t, int64(2), summary.TotalReviews)
	assert.Equal(t, 3.0, summary.AverageDifficulty) // (2+4)/2
	assert.Equal(t, 15.0, summary.AverageWorkload)
	assert.Equal(t, 4.0, summary.AverageRating) // (3+5)/2

	// Recompute updates the existing row rather than inserting a second one
	addReview(t, db, course, 3, "Hard", "30 hrs/wk", "Excellent")
	require.NoError(t, RecomputeCourseSummary(db, course.ID))

	var count int64
	db.Model(&models.CourseSummary{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	require.NoError(t, db.Where("course_id = ?", course.ID).First(&summary).Error)
	assert.Equal(t, int64(3), summary.TotalReviews)
	assert.Equal(t, 20.0, summary.AverageWorkload)
}

func TestRecomputeCourseSummary_SkipsMalformedRows(t *testing.T) {
	db := setupDB(t)
	course := models.Course{CourseCode: "CIT-5920", CourseName: "Intro to Algorithms"}
	require.NoError(t, db.Create(&course).Error)

	addReview(t, db, course, 1, "Moderate", "10 hrs/wk", "Good")
	// Unknown labels and a malformed workload count toward the total but not
	// toward any average
	addReview(t, db, course, 2, "Brutal", "lots", "Meh")

	require.NoError(t, RecomputeCourseSummary(db, course.ID))

	var summary models.CourseSummary
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&summary).Error)
	assert.Equal(t, int64(2), summary.TotalReviews)
	assert.Equal(t, 3.0, summary.AverageDifficulty)
	assert.Equal(t, 10.0, summary.AverageWorkload)
	assert.Equal(t, 3.0, summary.AverageRating)
}

func TestRecomputeCourseSummary_MissingCourse(t *testing.T) {
	db := setupDB(t)
	assert.Error(t, RecomputeCourseSummary(db, 999))
}
