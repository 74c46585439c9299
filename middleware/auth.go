package middleware

import (
	"budgetbook/config"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the token for the page flow; API clients send
// it as a Bearer header instead.
const SessionCookie = "session"

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// parseClaims extracts and validates JWT claims from the Authorization
// header or the session cookie
func parseClaims(c *fiber.Ctx) (*Claims, error) {
	cfg := config.GetConfig()

	tokenString := ""
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
		}
		tokenString = parts[1]
	} else {
		tokenString = c.Cookies(SessionCookie)
	}

	if tokenString == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	return claims, nil
}

// AuthRequired is the API gate: without a valid identity the request
// is short-circuited with a 401 JSON error.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseClaims(c)
		if err != nil {
			e := err.(*fiber.Error)
			return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)

		return c.Next()
	}
}

// LoginRequired is the page-flow gate: without a valid identity the
// request is redirected to the login page.
func LoginRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseClaims(c)
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)

		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) uint {
	if userID, ok := c.Locals("userID").(uint); ok {
		return userID
	}
	return 0
}

func GetUsername(c *fiber.Ctx) string {
	if username, ok := c.Locals("username").(string); ok {
		return username
	}
	return ""
}
