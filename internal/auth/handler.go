package auth

import (
	"stoktakip-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// POST /api/auth/login
// Tek kullanıcılı sistem: kimlik bilgileri config'den gelir, kullanıcı
// tablosu yoktur. Parola bcrypt hash'iyle karşılaştırılır.
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Email != cfg.AdminEmail {
			return fiber.NewError(fiber.StatusUnauthorized, "E-posta veya parola hatalı")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPassHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "E-posta veya parola hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, body.Email)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(LoginResponse{Token: token, Email: body.Email})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals(CtxEmailKey).(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Oturum bilgisi alınamadı")
		}
		return c.JSON(fiber.Map{"email": email})
	}
}
