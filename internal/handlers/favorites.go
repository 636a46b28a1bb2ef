package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/middleware"
	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/types"
	"github.com/cinefilos/cinefilos-api/internal/utils"
	"github.com/cinefilos/cinefilos-api/internal/validation"
)

// FavoriteHandler handles the favorite film and actor routes. Favorites
// always belong to the authenticated caller.
type FavoriteHandler struct {
	DB *gorm.DB
}

type favoriteRequest struct {
	FilmID  types.FlexUint64 `json:"filmes_idfilmes"`
	ActorID types.FlexUint64 `json:"atores_idatores"`
}

// AddFilm handles POST /favoritosFilmes
// @Summary Favorite a film
// @Tags Favorites
// @Accept json
// @Produce json
// @Param favorite body favoriteRequest true "Film id"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /favoritosFilmes [post]
func (h *FavoriteHandler) AddFilm(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	ce, err := validation.FavoriteFilm(h.DB, claims.ProfileID, req.FilmID.Uint64())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if ce != nil {
		return ce
	}

	if err := services.AddFavoriteFilm(h.DB, claims.ProfileID, req.FilmID.Uint64()); err != nil {
		return serviceError(c, err, "", "")
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Filme favoritado com sucesso.")
}

// RemoveFilm handles DELETE /favoritosFilmes/:idFilme
// @Summary Unfavorite a film
// @Tags Favorites
// @Produce json
// @Param idFilme path int true "Film id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /favoritosFilmes/{idFilme} [delete]
func (h *FavoriteHandler) RemoveFilm(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	filmID, err := parseIDParam(c, "idFilme")
	if err != nil {
		return err
	}
	if err := services.RemoveFavoriteFilm(h.DB, claims.ProfileID, filmID); err != nil {
		return serviceError(c, err, "Favorito não encontrado.", "FAVORITO_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Filme removido dos favoritos.")
}

// ListFilms handles GET /favoritosFilmes
// @Summary List the caller's favorite films
// @Tags Favorites
// @Produce json
// @Success 200 {array} models.Film
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /favoritosFilmes [get]
func (h *FavoriteHandler) ListFilms(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	films, err := services.ListFavoriteFilms(h.DB, claims.ProfileID)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(films)
}

// AddActor handles POST /favoritosAtores
// @Summary Favorite an actor
// @Tags Favorites
// @Accept json
// @Produce json
// @Param favorite body favoriteRequest true "Actor id"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /favoritosAtores [post]
func (h *FavoriteHandler) AddActor(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	ce, err := validation.FavoriteActor(h.DB, claims.ProfileID, req.ActorID.Uint64())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if ce != nil {
		return ce
	}

	if err := services.AddFavoriteActor(h.DB, claims.ProfileID, req.ActorID.Uint64()); err != nil {
		return serviceError(c, err, "", "")
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Ator favoritado com sucesso.")
}

// RemoveActor handles DELETE /favoritosAtores/:idAtor
// @Summary Unfavorite an actor
// @Tags Favorites
// @Produce json
// @Param idAtor path int true "Actor id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /favoritosAtores/{idAtor} [delete]
func (h *FavoriteHandler) RemoveActor(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	actorID, err := parseIDParam(c, "idAtor")
	if err != nil {
		return err
	}
	if err := services.RemoveFavoriteActor(h.DB, claims.ProfileID, actorID); err != nil {
		return serviceError(c, err, "Favorito não encontrado.", "FAVORITO_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Ator removido dos favoritos.")
}

// ListActors handles GET /favoritosAtores
// @Summary List the caller's favorite actors
// @Tags Favorites
// @Produce json
// @Success 200 {array} models.Actor
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /favoritosAtores [get]
func (h *FavoriteHandler) ListActors(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	actors, err := services.ListFavoriteActors(h.DB, claims.ProfileID)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(actors)
}
