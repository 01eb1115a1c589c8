package courseController

import (
	"crev/database"
	"crev/middleware"
	"crev/models"
	"crev/semester"
	"crev/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCourses lists courses, optionally filtered by course_code
func GetCourses(c *fiber.Ctx) error {
	courseCode := c.Query("course_code")

	db := database.Database.Db.Where("is_deleted = ?", false)
	if courseCode != "" {
		db = db.Where("course_code = ?", courseCode)
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseSummaries returns the aggregate summary for one course as a
// one-element list. Averages are rounded to 2 decimals for display.
func GetCourseSummaries(c *fiber.Ctx) error {
	courseCode := c.Query("course_code")
	if courseCode == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "course_code is required!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("course_code = ? AND is_deleted = ?", courseCode, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var summary models.CourseSummary
	if err := db.Where("course_id = ?", course.ID).First(&summary).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch summary!", nil)
		}
		// No reviews yet: serve a zeroed summary
		summary = models.CourseSummary{
			CourseID:   course.ID,
			CourseCode: course.CourseCode,
		}
	}

	summary.AverageDifficulty = utils.RoundForDisplay(summary.AverageDifficulty)
	summary.AverageWorkload = utils.RoundForDisplay(summary.AverageWorkload)
	summary.AverageRating = utils.RoundForDisplay(summary.AverageRating)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary fetched successfully!", fiber.Map{
		"summaries": []models.CourseSummary{summary},
	})
}

// GetSemesters returns the semester labels selectable for a new review
func GetSemesters(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Semesters fetched successfully!", fiber.Map{
		"semesters": semester.Selectable(time.Now()),
	})
}
