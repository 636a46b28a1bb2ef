package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/auth"
	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/utils"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	DB     *gorm.DB
	Tokens *auth.TokenManager
	// TokenDuration also bounds the cookie lifetime.
	TokenDuration time.Duration
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Login handles POST /login
// @Summary Authenticate a profile
// @Description Exchanges email and password for a signed token, also set as an http-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	profile, err := services.Authenticate(h.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized,
				"Email ou senha inválidos.", "CREDENCIAIS_INVALIDAS", nil)
		}
		return serviceError(c, err, "", "")
	}

	token, err := h.Tokens.Generate(profile.ID, profile.Email, profile.Admin)
	if err != nil {
		return serviceError(c, err, "", "")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(h.TokenDuration),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mensagem": "Login realizado com sucesso.",
		"token":    token,
	})
}

// Logout handles POST /logout
// @Summary End the session
// @Description Expires the token cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return utils.MessageResponse(c, fiber.StatusOK, "Logout realizado com sucesso.")
}
