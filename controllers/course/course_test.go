package courseController

import (
	"crev/config"
	"crev/database"
	"crev/models"
	"crev/utils"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:             "test-secret",
		AllowedEmailDomain: "seas.upenn.edu",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Review{},
		&models.CourseSummary{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/api/courses", GetCourses)
	app.Get("/api/course-summaries", GetCourseSummaries)
	app.Get("/api/semesters", GetSemesters)

	return app, db
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func seedCourse(t *testing.T, db *gorm.DB, code, name string) models.Course {
	t.Helper()
	course := models.Course{CourseCode: code, CourseName: name}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func seedReview(t *testing.T, db *gorm.DB, course models.Course, userID uint, difficulty string, hours int, rating string) {
	t.Helper()
	review := models.Review{
		CourseID:   course.ID,
		CourseCode: course.CourseCode,
		UserID:     userID,
		Semester:   "Fall 2024",
		Difficulty: difficulty,
		Workload:   models.FormatWorkload(hours),
		Rating:     rating,
		Comment:    strings.Repeat("a", 60),
	}
	require.NoError(t, db.Create(&review).Error)
}

type coursesResponse struct {
	Data struct {
		Courses []struct {
			CourseCode string `json:"course_code"`
			CourseName string `json:"course_name"`
		} `json:"courses"`
	} `json:"data"`
}

type summariesResponse struct {
	Data struct {
		Summaries []struct {
			CourseCode        string  `json:"course_code"`
			TotalReviews      int64   `json:"totalReviews"`
			AverageDifficulty float64 `json:"averageDifficulty"`
			AverageWorkload   float64 `json:"averageWorkload"`
			AverageRating     float64 `json:"averageRating"`
		} `json:"summaries"`
	} `json:"data"`
}

func TestGetCourses(t *testing.T) {
	app, db := setupTest(t)
	seedCourse(t, db, "CIT-5920", "Intro to Algorithms")
	seedCourse(t, db, "CIT-5950", "Computer Systems Programming")

	code, body := get(t, app, "/api/courses")
	assert.Equal(t, fiber.StatusOK, code)

	var resp coursesResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Data.Courses, 2)

	code, body = get(t, app, "/api/courses?course_code=CIT-5950")
	assert.Equal(t, fiber.StatusOK, code)
	resp = coursesResponse{}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Data.Courses, 1)
	assert.Equal(t, "Computer Systems Programming", resp.Data.Courses[0].CourseName)

	// Unknown code degrades to an empty list, not an error
	code, body = get(t, app, "/api/courses?course_code=CIT-0000")
	assert.Equal(t, fiber.StatusOK, code)
	resp = coursesResponse{}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Data.Courses, 0)
}

func TestGetCourseSummaries_Rounding(t *testing.T) {
	app, db := setupTest(t)
	course := seedCourse(t, db, "CIT-5920", "Intro to Algorithms")

	seedReview(t, db, course, 1, "Moderate", 10, "Good")
	seedReview(t, db, course, 2, "Moderate", 15, "Excellent")
	seedReview(t, db, course, 3, "Moderate", 5, "Excellent")
	require.NoError(t, utils.RecomputeCourseSummary(db, course.ID))

	code, body := get(t, app, "/api/course-summaries?course_code=CIT-5920")
	assert.Equal(t, fiber.StatusOK, code)

	var resp summariesResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Data.Summaries, 1)

	summary := resp.Data.Summaries[0]
	assert.Equal(t, int64(3), summary.TotalReviews)
	assert.Equal(t, 3.0, summary.AverageDifficulty) // whole numbers stay whole
	assert.Equal(t, 10.0, summary.AverageWorkload)
	assert.Equal(t, 4.33, summary.AverageRating) // 13/3 rounded to 2 decimals
}

func TestGetCourseSummaries_NoReviews(t *testing.T) {
	app, db := setupTest(t)
	seedCourse(t, db, "CIT-5920", "Intro to Algorithms")

	code, body := get(t, app, "/api/course-summaries?course_code=CIT-5920")
	assert.Equal(t, fiber.StatusOK, code)

	var resp summariesResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Data.Summaries, 1)
	assert.Equal(t, int64(0), resp.Data.Summaries[0].TotalReviews)
	assert.Equal(t, 0.0, resp.Data.Summaries[0].AverageRating)
}

func TestGetCourseSummaries_NotFound(t *testing.T) {
	app, _ := setupTest(t)

	code, _ := get(t, app, "/api/course-summaries?course_code=CIT-0000")
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestGetCourseSummaries_MissingParam(t *testing.T) {
	app, _ := setupTest(t)

	code, _ := get(t, app, "/api/course-summaries")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestGetSemesters(t *testing.T) {
	app, _ := setupTest(t)

	code, body := get(t, app, "/api/semesters")
	assert.Equal(t, fiber.StatusOK, code)

	var resp struct {
		Data struct {
			Semesters []string `json:"semesters"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Data.Semesters, 9)

	currentYear := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("Fall %d", currentYear), resp.Data.Semesters[0])
	assert.Equal(t, fmt.Sprintf("Spring %d", currentYear-2), resp.Data.Semesters[8])
}
