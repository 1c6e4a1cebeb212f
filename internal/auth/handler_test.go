package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stoktakip-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &config.Config{
		JWTSecret:     "test-secret-test-secret-test-secret",
		AdminEmail:    "admin@example.com",
		AdminPassHash: string(hash),
	}
}

func newAuthApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Post("/api/auth/login", LoginHandler(cfg))
	protected := app.Group("", JWTMiddleware(cfg))
	protected.Get("/api/auth/me", MeHandler())
	return app
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestLoginAndMe(t *testing.T) {
	cfg := newTestConfig(t, "gizli-parola")
	app := newAuthApp(cfg)

	resp := login(t, app, "admin@example.com", "gizli-parola")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login 200 olmalıydı: %d", resp.StatusCode)
	}
	var lr LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		t.Fatalf("cevap çözümlenemedi: %v", err)
	}
	if lr.Token == "" {
		t.Fatal("token boş olmamalı")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+lr.Token)
	meResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if meResp.StatusCode != fiber.StatusOK {
		t.Fatalf("me 200 olmalıydı: %d", meResp.StatusCode)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	cfg := newTestConfig(t, "gizli-parola")
	app := newAuthApp(cfg)

	resp := login(t, app, "admin@example.com", "yanlis")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("401 bekleniyordu: %d", resp.StatusCode)
	}
}

func TestMeWithoutToken(t *testing.T) {
	cfg := newTestConfig(t, "gizli-parola")
	app := newAuthApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("401 bekleniyordu: %d", resp.StatusCode)
	}
}
