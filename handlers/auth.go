package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"budgetbook/config"
	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/services"
)

type AuthResponse struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

// Register creates a new account and seeds its default categories
func Register(c *fiber.Ctx) error {
	var input models.CredentialsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := services.RegisterUser(input.Username, input.Password)
	if err != nil {
		return apiError(c, err, "User not found")
	}

	services.LogAudit(user.ID, user.Username, models.AuditActionRegister, nil, "", c.IP())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful",
	})
}

// Login authenticates a user, sets the session cookie and returns a
// token for API clients
func Login(c *fiber.Ctx) error {
	var input models.CredentialsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := services.LoginUser(input.Username, input.Password)
	if err != nil {
		return apiError(c, err, "User not found")
	}

	token, err := generateToken(user)
	if err != nil {
		return apiError(c, err, "User not found")
	}

	setSessionCookie(c, token)
	services.LogAudit(user.ID, user.Username, models.AuditActionLogin, nil, "", c.IP())

	return c.JSON(AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	})
}

// Logout clears the session cookie
func Logout(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	username := middleware.GetUsername(c)

	clearSessionCookie(c)
	services.LogAudit(userID, username, models.AuditActionLogout, nil, "", c.IP())

	return c.JSON(fiber.Map{
		"message": "Logout successful",
	})
}

// GetCurrentUser returns the currently authenticated user
func GetCurrentUser(c *fiber.Ctx) error {
	user, err := services.GetUser(middleware.GetUserID(c))
	if err != nil {
		return apiError(c, err, "User not found")
	}

	return c.JSON(user.ToResponse())
}

func generateToken(user *models.User) (string, error) {
	cfg := config.GetConfig()

	claims := middleware.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.SessionDurationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func setSessionCookie(c *fiber.Ctx, token string) {
	cfg := config.GetConfig()
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(cfg.SessionDurationHours) * time.Hour),
		HTTPOnly: true,
		Secure:   cfg.Production,
		SameSite: "Lax",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
