package courseRoutes

import (
	controllers "crev/controllers/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the read-only course and summary routes
func SetupCourseRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Get("/courses", controllers.GetCourses)
	apiGroup.Get("/course-summaries", controllers.GetCourseSummaries)
	apiGroup.Get("/semesters", controllers.GetSemesters)
}
