package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/middleware"
	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/utils"
	"github.com/cinefilos/cinefilos-api/internal/validation"
)

// ProfileHandler handles account routes
type ProfileHandler struct {
	DB *gorm.DB
}

type registerRequest struct {
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Password  string `json:"senha"`
	Biography string `json:"biografia"`
}

// Register handles POST /perfil
// @Summary Create a profile
// @Description Registers a new account with a bcrypt-hashed password
// @Tags Profiles
// @Accept json
// @Produce json
// @Param profile body registerRequest true "New profile"
// @Success 201 {object} models.Profile
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /perfil [post]
func (h *ProfileHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	verrs, err := validation.ProfileCreate(h.DB, req.Name, req.Email, req.Password)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	profile, err := services.CreateProfile(h.DB, req.Name, req.Email, req.Password, req.Biography)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// Me handles GET /meuPerfil
// @Summary Get the authenticated profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /meuPerfil [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	profile, err := services.GetProfile(h.DB, claims.ProfileID)
	if err != nil {
		return serviceError(c, err, "Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO")
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// Update handles PATCH /perfil
// @Summary Update the authenticated profile
// @Description Applies a partial update; the admin flag cannot be changed here
// @Tags Profiles
// @Accept json
// @Produce json
// @Param patch body map[string]interface{} true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /perfil [patch]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.applyUpdate(c, claims.ProfileID)
}

// Delete handles DELETE /perfil
// @Summary Delete the authenticated account
// @Description Removes the profile and all content referencing it in one transaction
// @Tags Profiles
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /perfil [delete]
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.applyDelete(c, claims.ProfileID)
}

// UpdatePhoto handles PATCH /fotoPerfil
// @Summary Update the authenticated profile's photo
// @Tags Profiles
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /fotoPerfil [patch]
func (h *ProfileHandler) UpdatePhoto(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	photo, err := photoFromRequest(c)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if err := services.UpdateProfilePhoto(h.DB, claims.ProfileID, photo); err != nil {
		return serviceError(c, err, "Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Foto de perfil atualizada com sucesso.")
}

// GetPhoto handles GET /fotoPerfil/:id
// @Summary Get a profile's photo
// @Tags Profiles
// @Produce png
// @Param id path int true "Profile id"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /fotoPerfil/{id} [get]
func (h *ProfileHandler) GetPhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	photo, err := services.GetProfilePhoto(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO")
	}
	if len(photo) == 0 {
		return utils.NotFoundResponse(c, "Perfil sem foto cadastrada.", "FOTO_NAO_ENCONTRADA")
	}
	return sendPhoto(c, photo)
}

// List handles GET /perfil (admin)
// @Summary List every profile
// @Tags Profiles
// @Produce json
// @Success 200 {array} models.Profile
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /perfil [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	profiles, err := services.ListProfiles(h.DB)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(profiles)
}

// SearchByEmail handles GET /perfil/pesquisarEmail (admin)
// @Summary Find a profile by email
// @Tags Profiles
// @Produce json
// @Param email query string true "Email to look up"
// @Success 200 {object} models.Profile
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /perfil/pesquisarEmail [get]
func (h *ProfileHandler) SearchByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"O parâmetro email é obrigatório.", "EMAIL_AUSENTE", nil)
	}
	profile, err := services.FindProfileByEmail(h.DB, email)
	if err != nil {
		return serviceError(c, err, "Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO")
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// AdminGet handles GET /perfil/adm/:id (admin)
// @Summary Get any profile by id
// @Tags Profiles
// @Produce json
// @Param id path int true "Profile id"
// @Success 200 {object} models.Profile
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /perfil/adm/{id} [get]
func (h *ProfileHandler) AdminGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	profile, err := services.GetProfile(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO")
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// AdminUpdate handles PATCH /perfil/adm/:id (admin)
// @Summary Update any profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param id path int true "Profile id"
// @Param patch body map[string]interface{} true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /perfil/adm/{id} [patch]
func (h *ProfileHandler) AdminUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	return h.applyUpdate(c, id)
}

// AdminDelete handles DELETE /perfil/adm/:id (admin)
// @Summary Delete any account
// @Description Same cascading removal as the self-service delete
// @Tags Profiles
// @Produce json
// @Param id path int true "Profile id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /perfil/adm/{id} [delete]
func (h *ProfileHandler) AdminDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	return h.applyDelete(c, id)
}

// Promote handles PATCH /perfil/adm/promover/:id (admin)
// @Summary Grant the admin flag
// @Tags Profiles
// @Produce json
// @Param id path int true "Profile id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /perfil/adm/promover/{id} [patch]
func (h *ProfileHandler) Promote(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := services.PromoteToAdmin(h.DB, id); err != nil {
		return serviceError(c, err, "Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Perfil promovido a administrador.")
}

func (h *ProfileHandler) applyUpdate(c *fiber.Ctx, id uint64) error {
	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	verrs, err := validation.ProfileUpdate(h.DB, id, patch)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	if err := services.UpdateProfile(h.DB, id, patch); err != nil {
		return serviceError(c, err, "Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Perfil atualizado com sucesso.")
}

func (h *ProfileHandler) applyDelete(c *fiber.Ctx, id uint64) error {
	affectedRows, err := services.DeleteProfile(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mensagem":       "Perfil deletado com sucesso.",
		"linhasAfetadas": affectedRows,
	})
}
