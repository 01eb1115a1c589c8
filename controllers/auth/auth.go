package authController

import (
	"crev/config"
	"crev/database"
	"crev/middleware"
	"crev/models"
	"crev/utils"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

var googleOauthConfig *oauth2.Config

var userInfoClient = resty.New().SetTimeout(10 * time.Second)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// InitGoogle builds the OAuth config; call after config.LoadConfig
func InitGoogle() {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  config.AppConfig.OAuthRedirectURL,
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleLogin redirects the browser to the Google consent screen
func GoogleLogin(c *fiber.Ctx) error {
	url := googleOauthConfig.AuthCodeURL("state", oauth2.SetAuthURLParam("hd", config.AppConfig.AllowedEmailDomain))
	return c.Redirect(url, fiber.StatusTemporaryRedirect)
}

// GoogleCallback exchanges the authorization code, enforces the email domain
// restriction, upserts the user, and issues a session token
func GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing authorization code!", nil)
	}

	token, err := googleOauthConfig.Exchange(c.Context(), code)
	if err != nil {
		log.Printf("Error exchanging authorization code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to exchange authorization code!", nil)
	}

	// Fetch user info
	var userInfo struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	resp, err := userInfoClient.R().
		SetAuthToken(token.AccessToken).
		SetResult(&userInfo).
		Get(userInfoURL)
	if err != nil {
		log.Printf("Error fetching user info: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to fetch user info!", nil)
	}
	if resp.StatusCode() != fiber.StatusOK {
		log.Printf("User info request returned %d", resp.StatusCode())
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to fetch user info!", nil)
	}

	db := database.Database.Db

	// Domain restriction: outside accounts never get a session or a user row
	if !models.HasAllowedDomain(userInfo.Email, config.AppConfig.AllowedEmailDomain) {
		utils.TrackEvent("domain_rejected", userInfo.Email, fiber.Map{"provider": "google"})
		trackLogin(db, 0, userInfo.Email, "domain_rejected", c)
		msg := fmt.Sprintf("Only %s accounts may sign in!", config.AppConfig.AllowedEmailDomain)
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, msg, nil)
	}

	// Upsert user by email
	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", userInfo.Email, false).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		user = models.User{
			Email:    userInfo.Email,
			Name:     userInfo.Name,
			Picture:  userInfo.Picture,
			Provider: "google",
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error saving user to database: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in!", nil)
		}
	} else {
		user.Name = userInfo.Name
		user.Picture = userInfo.Picture
	}

	user.LastLogin = time.Now()
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating user %d: %v", user.ID, err)
	}

	trackLogin(db, user.ID, user.Email, "login", c)
	utils.TrackEvent("login", user.Email, fiber.Map{"provider": "google"})

	accessToken, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed in successfully!", fiber.Map{
		"access_token": accessToken,
		"email":        user.Email,
	})
}

// GetSession returns the identity snapshot for the presented token
func GetSession(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched!", fiber.Map{
		"userId":  user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"picture": user.Picture,
	})
}

// Logout records the sign-out; fire-and-forget, always 200
func Logout(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	email, _ := c.Locals("email").(string)

	trackLogin(database.Database.Db, userId, email, "logout", c)
	utils.TrackEvent("logout", email, nil)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed out successfully!", nil)
}

func trackLogin(db *gorm.DB, userId uint, email, event string, c *fiber.Ctx) {
	tracking := models.LoginTracking{
		UserID:    userId,
		Email:     email,
		Provider:  "google",
		Event:     event,
		IPAddress: c.IP(),
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	if err := db.Create(&tracking).Error; err != nil {
		log.Printf("Error recording %s for %s: %v", event, email, err)
	}
}
