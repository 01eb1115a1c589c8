package reviewController

import (
	"crev/database"
	"crev/middleware"
	"crev/models"
	"crev/semester"
	"crev/utils"
	reviewValidator "crev/validators/review"
	"log"
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateReview persists a new review for the signed-in user
func CreateReview(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	email, _ := c.Locals("email").(string)

	reqData, ok := c.Locals("validatedReview").(*reviewValidator.ReviewPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	db := database.Database.Db

	// Check if user exists
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	// Check if course exists
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// One review per user per course
	var existingReview models.Review
	if err := db.Where("course_id = ? AND user_id = ? AND is_deleted = ?", course.ID, userId, false).First(&existingReview).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	hours, _ := reviewValidator.ParseWorkloadField(reqData.Workload)

	review := models.Review{
		CourseID:   course.ID,
		CourseCode: course.CourseCode,
		UserID:     userId,
		Semester:   reqData.Semester,
		Difficulty: reqData.Difficulty,
		Workload:   models.FormatWorkload(hours),
		Rating:     reqData.Rating,
		Comment:    reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error saving review to database: %v", err)
		utils.TrackEvent("review_submit_failed", email, fiber.Map{"course_code": course.CourseCode})
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	if err := utils.RecomputeCourseSummary(db, course.ID); err != nil {
		log.Printf("Error recomputing summary for %s: %v", course.CourseCode, err)
	}

	utils.TrackEvent("review_submitted", email, fiber.Map{"course_code": course.CourseCode})
	go utils.SendReviewConfirmationEmail(user.Email, user.Name, course.CourseCode)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}

// GetReviews returns all reviews for a course, newest semester first
func GetReviews(c *fiber.Ctx) error {
	courseId := c.QueryInt("course_id", 0)
	if courseId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "course_id is required!", nil)
	}

	db := database.Database.Db

	var reviews []models.Review
	if err := db.Where("course_id = ? AND is_deleted = ?", courseId, false).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	// Semester descending, creation time breaks ties
	sort.SliceStable(reviews, func(i, j int) bool {
		ki := semester.Parse(reviews[i].Semester).SortKey()
		kj := semester.Parse(reviews[j].Semester).SortKey()
		if ki != kj {
			return ki > kj
		}
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})

	type ReviewResponse struct {
		models.Review
		UserName string `json:"userName"`
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, ReviewResponse{
			Review:   r,
			UserName: r.User.Name,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": response,
	})
}

// GetMyReviews returns the signed-in user's reviews, newest first
func GetMyReviews(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var reviews []models.Review
	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
	})
}

// UpdateReview edits a review owned by the signed-in user
func UpdateReview(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	email, _ := c.Locals("email").(string)

	reviewId := c.Params("id")

	reqData, ok := c.Locals("validatedReviewUpdate").(*reviewValidator.ReviewUpdatePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ? AND is_deleted = ?", reviewId, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if review.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only edit your own reviews!", nil)
	}

	hours, _ := reviewValidator.ParseWorkloadField(reqData.Workload)

	review.Semester = reqData.Semester
	review.Difficulty = reqData.Difficulty
	review.Workload = models.FormatWorkload(hours)
	review.Rating = reqData.Rating
	review.Comment = reqData.Comment

	if err := db.Save(&review).Error; err != nil {
		log.Printf("Error updating review %d: %v", review.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	if err := utils.RecomputeCourseSummary(db, review.CourseID); err != nil {
		log.Printf("Error recomputing summary for %s: %v", review.CourseCode, err)
	}

	utils.TrackEvent("review_updated", email, fiber.Map{"course_code": review.CourseCode})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}

// DeleteReview soft-deletes a review owned by the signed-in user
func DeleteReview(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	email, _ := c.Locals("email").(string)

	reviewId := c.Params("id")

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ? AND is_deleted = ?", reviewId, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if review.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own reviews!", nil)
	}

	review.IsDeleted = true
	if err := db.Save(&review).Error; err != nil {
		log.Printf("Error deleting review %d: %v", review.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	if err := utils.RecomputeCourseSummary(db, review.CourseID); err != nil {
		log.Printf("Error recomputing summary for %s: %v", review.CourseCode, err)
	}

	utils.TrackEvent("review_deleted", email, fiber.Map{"course_code": review.CourseCode})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}
