package reviewValidator

import (
	"crev/middleware"
	"crev/models"
	"crev/semester"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewPayload is the create-review request body
type ReviewPayload struct {
	CourseID   uint   `json:"course_id" validate:"required"`
	CourseCode string `json:"course_code" validate:"required"`
	Semester   string `json:"semester" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof='Very Easy' 'Easy' 'Moderate' 'Hard' 'Very Hard'"`
	Workload   string `json:"workload" validate:"required"`
	Rating     string `json:"rating" validate:"required,oneof='Poor' 'Fair' 'Good' 'Very Good' 'Excellent'"`
	Comment    string `json:"comment" validate:"required"`
}

// ReviewUpdatePayload is the update-review request body; course binding is fixed
type ReviewUpdatePayload struct {
	Semester   string `json:"semester" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof='Very Easy' 'Easy' 'Moderate' 'Hard' 'Very Hard'"`
	Workload   string `json:"workload" validate:"required"`
	Rating     string `json:"rating" validate:"required,oneof='Poor' 'Fair' 'Good' 'Very Good' 'Excellent'"`
	Comment    string `json:"comment" validate:"required"`
}

var validate = validator.New()

var plainHoursPattern = regexp.MustCompile(`^\d+$`)

// ParseWorkloadField accepts the workload either as plain hours ("12") or in
// the stored "<n> hrs/wk" form.
func ParseWorkloadField(workload string) (int, bool) {
	if plainHoursPattern.MatchString(workload) {
		hours, err := strconv.Atoi(workload)
		if err != nil {
			return 0, false
		}
		return hours, true
	}
	return models.ParseWorkload(workload)
}

func structErrors(err error, errors map[string]string) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return
	}
	for _, fieldErr := range validationErrors {
		switch fieldErr.Field() {
		case "CourseID":
			errors["course_id"] = "Course is required!"
		case "CourseCode":
			errors["course_code"] = "Course code is required!"
		case "Semester":
			errors["semester"] = "Semester is required!"
		case "Difficulty":
			errors["difficulty"] = "Difficulty must be one of the five difficulty levels!"
		case "Workload":
			errors["workload"] = "Workload is required!"
		case "Rating":
			errors["rating"] = "Rating must be one of the five rating levels!"
		case "Comment":
			errors["comment"] = "Review text is required!"
		}
	}
}

// fieldErrors applies the domain rules shared by create and update
func fieldErrors(semesterLabel, workload, comment string, errors map[string]string) {
	// Workload must be a positive whole number of hours, at most a full week
	if _, ok := errors["workload"]; !ok {
		hours, ok := ParseWorkloadField(workload)
		if !ok {
			errors["workload"] = "Workload must be a positive whole number of hours!"
		} else if hours < 1 || hours > models.MaxWorkloadHours {
			errors["workload"] = fmt.Sprintf("Workload must be between 1 and %d hours per week!", models.MaxWorkloadHours)
		}
	}

	// Review text length
	if _, ok := errors["comment"]; !ok {
		if len(comment) < models.MinCommentLength || len(comment) > models.MaxCommentLength {
			errors["comment"] = fmt.Sprintf("Review must be between %d and %d characters long!", models.MinCommentLength, models.MaxCommentLength)
		}
	}

	// Only semesters from the last 3 calendar years may be reviewed
	if _, ok := errors["semester"]; !ok {
		if !semester.IsSelectable(semesterLabel, time.Now()) {
			errors["semester"] = "Semester must be within the last 3 calendar years!"
		}
	}
}

// CreateReview validator middleware
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			structErrors(err, errors)
		}
		fieldErrors(reqData.Semester, reqData.Workload, reqData.Comment, errors)

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// UpdateReview validator middleware
func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewUpdatePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			structErrors(err, errors)
		}
		fieldErrors(reqData.Semester, reqData.Workload, reqData.Comment, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReviewUpdate", reqData)
		return c.Next()
	}
}
