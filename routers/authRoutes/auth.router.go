package authRoutes

import (
	authControllers "crev/controllers/auth"
	"crev/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Get("/google/login", authControllers.GoogleLogin)
	authGroup.Get("/google/callback", authControllers.GoogleCallback)
	authGroup.Get("/session", middleware.JWTMiddleware, authControllers.GetSession)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
}
