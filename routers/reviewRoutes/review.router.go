package reviewRoutes

import (
	controllers "crev/controllers/review"
	"crev/middleware"
	validators "crev/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up the review read and write routes
func SetupReviewRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Get("/reviews", controllers.GetReviews)
	apiGroup.Post("/create-review", middleware.JWTMiddleware, validators.CreateReview(), controllers.CreateReview)
	apiGroup.Get("/my-reviews", middleware.JWTMiddleware, controllers.GetMyReviews)
	apiGroup.Put("/update-review/:id", middleware.JWTMiddleware, validators.UpdateReview(), controllers.UpdateReview)
	apiGroup.Delete("/delete-review/:id", middleware.JWTMiddleware, controllers.DeleteReview)
}
