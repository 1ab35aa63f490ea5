package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"vitrine_backend/internal/middleware"
	"vitrine_backend/internal/model"
	"vitrine_backend/pkg/database"
	"vitrine_backend/pkg/utils/jwt"
	"vitrine_backend/pkg/utils/validation"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login exchanges admin credentials for a session token.
func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := validation.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var user model.User
	if err := database.GetDB().Where("email = ?", input.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid login credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid login credentials",
		})
	}

	token, err := jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.GetPublicProfile(),
	})
}

// GetSession reports the current session, or null when the viewer carries no
// valid token. The console uses this on load to decide between the login
// form and the module views.
func GetSession(c *fiber.Ctx) error {
	claims, err := middleware.ClaimsFromRequest(c)
	if err != nil {
		return c.JSON(fiber.Map{"session": nil})
	}

	return c.JSON(fiber.Map{
		"session": fiber.Map{
			"user_id":    claims.UserID,
			"email":      claims.Email,
			"expires_at": claims.ExpiresAt,
		},
	})
}

// Logout acknowledges sign-out. Tokens are stateless, so the client drops
// its copy and any cached lists with it.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Signed out",
	})
}
