package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/middleware"
	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/utils"
	"github.com/cinefilos/cinefilos-api/internal/validation"
)

// SuggestionHandler handles film and actor suggestion routes. Regular
// callers only reach their own rows on mutation; the /adm variants skip the
// ownership scope.
type SuggestionHandler struct {
	DB *gorm.DB
}

type filmSuggestionRequest struct {
	Name     string `json:"nomeFilme"`
	Synopsis string `json:"sinopse"`
}

type actorSuggestionRequest struct {
	Name string `json:"nome"`
}

// CreateFilm handles POST /sugestoesFilmes
// @Summary Suggest a film
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param suggestion body filmSuggestionRequest true "New suggestion"
// @Success 201 {object} models.FilmSuggestion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /sugestoesFilmes [post]
func (h *SuggestionHandler) CreateFilm(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req filmSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	verrs, err := validation.FilmSuggestionCreate(h.DB, req.Name)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	suggestion, err := services.CreateFilmSuggestion(h.DB, claims.ProfileID, req.Name, req.Synopsis)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(suggestion)
}

// ListFilms handles GET /sugestoesFilmes
// @Summary List film suggestions
// @Tags Suggestions
// @Produce json
// @Success 200 {array} models.FilmSuggestion
// @Router /sugestoesFilmes [get]
func (h *SuggestionHandler) ListFilms(c *fiber.Ctx) error {
	suggestions, err := services.ListFilmSuggestions(h.DB)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(suggestions)
}

// MyFilms handles GET /sugestoesFilmes/minhas
// @Summary List the caller's film suggestions
// @Tags Suggestions
// @Produce json
// @Success 200 {array} models.FilmSuggestion
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /sugestoesFilmes/minhas [get]
func (h *SuggestionHandler) MyFilms(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	suggestions, err := services.ListFilmSuggestionsByProfile(h.DB, claims.ProfileID)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(suggestions)
}

// GetFilm handles GET /sugestoesFilmes/:id
// @Summary Get one film suggestion
// @Tags Suggestions
// @Produce json
// @Param id path int true "Suggestion id"
// @Success 200 {object} models.FilmSuggestion
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesFilmes/{id} [get]
func (h *SuggestionHandler) GetFilm(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	suggestion, err := services.GetFilmSuggestion(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Sugestão não encontrada.", "SUGESTAO_NAO_ENCONTRADA")
	}
	return c.Status(fiber.StatusOK).JSON(suggestion)
}

// UpdateFilm handles PATCH /sugestoesFilmes/:id
// @Summary Update the caller's film suggestion
// @Description Someone else's suggestion reads as not found
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param id path int true "Suggestion id"
// @Param patch body map[string]interface{} true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesFilmes/{id} [patch]
func (h *SuggestionHandler) UpdateFilm(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.updateFilm(c, claims.ProfileID)
}

// AdminUpdateFilm handles PATCH /sugestoesFilmes/adm/:id (admin)
// @Summary Update any film suggestion
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param id path int true "Suggestion id"
// @Param patch body map[string]interface{} true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesFilmes/adm/{id} [patch]
func (h *SuggestionHandler) AdminUpdateFilm(c *fiber.Ctx) error {
	return h.updateFilm(c, 0)
}

// DeleteFilm handles DELETE /sugestoesFilmes/:id
// @Summary Delete the caller's film suggestion
// @Tags Suggestions
// @Produce json
// @Param id path int true "Suggestion id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesFilmes/{id} [delete]
func (h *SuggestionHandler) DeleteFilm(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.deleteFilm(c, claims.ProfileID)
}

// AdminDeleteFilm handles DELETE /sugestoesFilmes/adm/:id (admin)
// @Summary Delete any film suggestion
// @Tags Suggestions
// @Produce json
// @Param id path int true "Suggestion id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesFilmes/adm/{id} [delete]
func (h *SuggestionHandler) AdminDeleteFilm(c *fiber.Ctx) error {
	return h.deleteFilm(c, 0)
}

// CreateActor handles POST /sugestoesAtores
// @Summary Suggest an actor
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param suggestion body actorSuggestionRequest true "New suggestion"
// @Success 201 {object} models.ActorSuggestion
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /sugestoesAtores [post]
func (h *SuggestionHandler) CreateActor(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req actorSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	verrs, err := validation.ActorSuggestionCreate(h.DB, req.Name)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	suggestion, err := services.CreateActorSuggestion(h.DB, claims.ProfileID, req.Name)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(suggestion)
}

// ListActors handles GET /sugestoesAtores
// @Summary List actor suggestions
// @Tags Suggestions
// @Produce json
// @Success 200 {array} models.ActorSuggestion
// @Router /sugestoesAtores [get]
func (h *SuggestionHandler) ListActors(c *fiber.Ctx) error {
	suggestions, err := services.ListActorSuggestions(h.DB)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(suggestions)
}

// MyActors handles GET /sugestoesAtores/minhas
// @Summary List the caller's actor suggestions
// @Tags Suggestions
// @Produce json
// @Success 200 {array} models.ActorSuggestion
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /sugestoesAtores/minhas [get]
func (h *SuggestionHandler) MyActors(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	suggestions, err := services.ListActorSuggestionsByProfile(h.DB, claims.ProfileID)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(suggestions)
}

// GetActor handles GET /sugestoesAtores/:id
// @Summary Get one actor suggestion
// @Tags Suggestions
// @Produce json
// @Param id path int true "Suggestion id"
// @Success 200 {object} models.ActorSuggestion
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesAtores/{id} [get]
func (h *SuggestionHandler) GetActor(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	suggestion, err := services.GetActorSuggestion(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Sugestão não encontrada.", "SUGESTAO_NAO_ENCONTRADA")
	}
	return c.Status(fiber.StatusOK).JSON(suggestion)
}

// UpdateActor handles PATCH /sugestoesAtores/:id
// @Summary Update the caller's actor suggestion
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param id path int true "Suggestion id"
// @Param patch body map[string]interface{} true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesAtores/{id} [patch]
func (h *SuggestionHandler) UpdateActor(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.updateActor(c, claims.ProfileID)
}

// AdminUpdateActor handles PATCH /sugestoesAtores/adm/:id (admin)
// @Summary Update any actor suggestion
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param id path int true "Suggestion id"
// @Param patch body map[string]interface{} true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesAtores/adm/{id} [patch]
func (h *SuggestionHandler) AdminUpdateActor(c *fiber.Ctx) error {
	return h.updateActor(c, 0)
}

// DeleteActor handles DELETE /sugestoesAtores/:id
// @Summary Delete the caller's actor suggestion
// @Tags Suggestions
// @Produce json
// @Param id path int true "Suggestion id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesAtores/{id} [delete]
func (h *SuggestionHandler) DeleteActor(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.deleteActor(c, claims.ProfileID)
}

// AdminDeleteActor handles DELETE /sugestoesAtores/adm/:id (admin)
// @Summary Delete any actor suggestion
// @Tags Suggestions
// @Produce json
// @Param id path int true "Suggestion id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /sugestoesAtores/adm/{id} [delete]
func (h *SuggestionHandler) AdminDeleteActor(c *fiber.Ctx) error {
	return h.deleteActor(c, 0)
}

func (h *SuggestionHandler) updateFilm(c *fiber.Ctx, profileID uint64) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	patch, err := catalogPatch(c)
	if err != nil {
		return err
	}
	if err := services.UpdateFilmSuggestion(h.DB, id, profileID, patch); err != nil {
		return serviceError(c, err, "Sugestão não encontrada.", "SUGESTAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Sugestão atualizada com sucesso.")
}

func (h *SuggestionHandler) deleteFilm(c *fiber.Ctx, profileID uint64) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteFilmSuggestion(h.DB, id, profileID); err != nil {
		return serviceError(c, err, "Sugestão não encontrada.", "SUGESTAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Sugestão deletada com sucesso.")
}

func (h *SuggestionHandler) updateActor(c *fiber.Ctx, profileID uint64) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	patch, err := catalogPatch(c)
	if err != nil {
		return err
	}
	if err := services.UpdateActorSuggestion(h.DB, id, profileID, patch); err != nil {
		return serviceError(c, err, "Sugestão não encontrada.", "SUGESTAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Sugestão atualizada com sucesso.")
}

func (h *SuggestionHandler) deleteActor(c *fiber.Ctx, profileID uint64) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteActorSuggestion(h.DB, id, profileID); err != nil {
		return serviceError(c, err, "Sugestão não encontrada.", "SUGESTAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Sugestão deletada com sucesso.")
}
