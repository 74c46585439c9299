package middleware

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"budgetbook/config"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "budgetbook-middleware-test-")
	if err != nil {
		panic(err)
	}
	os.Setenv("BUDGETBOOK_CONFIG_DIR", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func signToken(t *testing.T, userID uint, username string, expires time.Time) string {
	t.Helper()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.GetConfig().JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newGateApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/resource", AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  GetUserID(c),
			"username": GetUsername(c),
		})
	})
	app.Get("/page", LoginRequired(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	app := newGateApp()

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
	}{
		{"no identity", "", "", fiber.StatusUnauthorized},
		{"malformed header", "Token abc", "", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", "", fiber.StatusUnauthorized},
		{"expired token", "Bearer " + signToken(t, 1, "alice", time.Now().Add(-time.Hour)), "", fiber.StatusUnauthorized},
		{"valid bearer", "Bearer " + signToken(t, 1, "alice", time.Now().Add(time.Hour)), "", fiber.StatusOK},
		{"valid cookie", "", signToken(t, 1, "alice", time.Now().Add(time.Hour)), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/resource", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.Header.Set("Cookie", SessionCookie+"="+tt.cookie)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestLoginRequiredRedirects(t *testing.T) {
	app := newGateApp()

	req := httptest.NewRequest("GET", "/page", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if location := resp.Header.Get("Location"); location != "/login" {
		t.Errorf("redirect location = %q, want /login", location)
	}
}

func TestLoginRequiredPassesWithCookie(t *testing.T) {
	app := newGateApp()

	req := httptest.NewRequest("GET", "/page", nil)
	req.Header.Set("Cookie", SessionCookie+"="+signToken(t, 1, "alice", time.Now().Add(time.Hour)))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
