package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/types"
	"github.com/cinefilos/cinefilos-api/internal/utils"
	"github.com/cinefilos/cinefilos-api/internal/validation"
)

// LinkHandler handles the catalog association routes. Creation and removal
// are admin-only; the listings are public.
type LinkHandler struct {
	DB *gorm.DB
}

type linkRequest struct {
	FilmID     types.FlexUint64 `json:"filmes_idfilmes"`
	ActorID    types.FlexUint64 `json:"atores_idatores"`
	DirectorID types.FlexUint64 `json:"diretor_iddiretor"`
	ProducerID types.FlexUint64 `json:"produtor_idprodutor"`
	GenreID    types.FlexUint64 `json:"generos_idgeneros"`
}

// LinkActor handles POST /atoresFilmes (admin)
// @Summary Link an actor to a film
// @Tags Links
// @Accept json
// @Produce json
// @Param link body linkRequest true "Film and actor ids"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /atoresFilmes [post]
func (h *LinkHandler) LinkActor(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	ce, err := validation.FilmActorLink(h.DB, req.FilmID.Uint64(), req.ActorID.Uint64())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if ce != nil {
		return ce
	}
	if err := services.LinkFilmActor(h.DB, req.FilmID.Uint64(), req.ActorID.Uint64()); err != nil {
		return serviceError(c, err, "", "")
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Relação criada com sucesso.")
}

// UnlinkActor handles DELETE /atoresFilmes/:idFilme/:idAtor (admin)
// @Summary Unlink an actor from a film
// @Tags Links
// @Produce json
// @Param idFilme path int true "Film id"
// @Param idAtor path int true "Actor id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /atoresFilmes/{idFilme}/{idAtor} [delete]
func (h *LinkHandler) UnlinkActor(c *fiber.Ctx) error {
	filmID, err := parseIDParam(c, "idFilme")
	if err != nil {
		return err
	}
	actorID, err := parseIDParam(c, "idAtor")
	if err != nil {
		return err
	}
	if err := services.UnlinkFilmActor(h.DB, filmID, actorID); err != nil {
		return serviceError(c, err, "Relação não encontrada.", "RELACAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Relação removida com sucesso.")
}

// FilmCast handles GET /atoresFilmes/filme/:id
// @Summary List the cast of a film
// @Tags Links
// @Produce json
// @Param id path int true "Film id"
// @Success 200 {array} models.Actor
// @Router /atoresFilmes/filme/{id} [get]
func (h *LinkHandler) FilmCast(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	actors, err := services.ListFilmActors(h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(actors)
}

// ActorFilmography handles GET /atoresFilmes/ator/:id
// @Summary List the films of an actor
// @Tags Links
// @Produce json
// @Param id path int true "Actor id"
// @Success 200 {array} models.Film
// @Router /atoresFilmes/ator/{id} [get]
func (h *LinkHandler) ActorFilmography(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	films, err := services.ListActorFilms(h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(films)
}

// LinkDirector handles POST /diretorFilmes (admin)
// @Summary Link a director to a film
// @Tags Links
// @Accept json
// @Produce json
// @Param link body linkRequest true "Film and director ids"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /diretorFilmes [post]
func (h *LinkHandler) LinkDirector(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	ce, err := validation.FilmDirectorLink(h.DB, req.FilmID.Uint64(), req.DirectorID.Uint64())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if ce != nil {
		return ce
	}
	if err := services.LinkFilmDirector(h.DB, req.FilmID.Uint64(), req.DirectorID.Uint64()); err != nil {
		return serviceError(c, err, "", "")
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Relação criada com sucesso.")
}

// UnlinkDirector handles DELETE /diretorFilmes/:idFilme/:idDiretor (admin)
// @Summary Unlink a director from a film
// @Tags Links
// @Produce json
// @Param idFilme path int true "Film id"
// @Param idDiretor path int true "Director id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /diretorFilmes/{idFilme}/{idDiretor} [delete]
func (h *LinkHandler) UnlinkDirector(c *fiber.Ctx) error {
	filmID, err := parseIDParam(c, "idFilme")
	if err != nil {
		return err
	}
	directorID, err := parseIDParam(c, "idDiretor")
	if err != nil {
		return err
	}
	if err := services.UnlinkFilmDirector(h.DB, filmID, directorID); err != nil {
		return serviceError(c, err, "Relação não encontrada.", "RELACAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Relação removida com sucesso.")
}

// FilmDirectors handles GET /diretorFilmes/filme/:id
// @Summary List the directors of a film
// @Tags Links
// @Produce json
// @Param id path int true "Film id"
// @Success 200 {array} models.Director
// @Router /diretorFilmes/filme/{id} [get]
func (h *LinkHandler) FilmDirectors(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	directors, err := services.ListFilmDirectors(h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(directors)
}

// LinkProducer handles POST /produtorFilmes (admin)
// @Summary Link a producer to a film
// @Tags Links
// @Accept json
// @Produce json
// @Param link body linkRequest true "Film and producer ids"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /produtorFilmes [post]
func (h *LinkHandler) LinkProducer(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	ce, err := validation.FilmProducerLink(h.DB, req.FilmID.Uint64(), req.ProducerID.Uint64())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if ce != nil {
		return ce
	}
	if err := services.LinkFilmProducer(h.DB, req.FilmID.Uint64(), req.ProducerID.Uint64()); err != nil {
		return serviceError(c, err, "", "")
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Relação criada com sucesso.")
}

// UnlinkProducer handles DELETE /produtorFilmes/:idFilme/:idProdutor (admin)
// @Summary Unlink a producer from a film
// @Tags Links
// @Produce json
// @Param idFilme path int true "Film id"
// @Param idProdutor path int true "Producer id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /produtorFilmes/{idFilme}/{idProdutor} [delete]
func (h *LinkHandler) UnlinkProducer(c *fiber.Ctx) error {
	filmID, err := parseIDParam(c, "idFilme")
	if err != nil {
		return err
	}
	producerID, err := parseIDParam(c, "idProdutor")
	if err != nil {
		return err
	}
	if err := services.UnlinkFilmProducer(h.DB, filmID, producerID); err != nil {
		return serviceError(c, err, "Relação não encontrada.", "RELACAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Relação removida com sucesso.")
}

// FilmProducers handles GET /produtorFilmes/filme/:id
// @Summary List the producers of a film
// @Tags Links
// @Produce json
// @Param id path int true "Film id"
// @Success 200 {array} models.Producer
// @Router /produtorFilmes/filme/{id} [get]
func (h *LinkHandler) FilmProducers(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	producers, err := services.ListFilmProducers(h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(producers)
}

// LinkGenre handles POST /generosFilmes (admin)
// @Summary Link a genre to a film
// @Tags Links
// @Accept json
// @Produce json
// @Param link body linkRequest true "Film and genre ids"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /generosFilmes [post]
func (h *LinkHandler) LinkGenre(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	ce, err := validation.FilmGenreLink(h.DB, req.FilmID.Uint64(), req.GenreID.Uint64())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if ce != nil {
		return ce
	}
	if err := services.LinkFilmGenre(h.DB, req.FilmID.Uint64(), req.GenreID.Uint64()); err != nil {
		return serviceError(c, err, "", "")
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "Relação criada com sucesso.")
}

// UnlinkGenre handles DELETE /generosFilmes/:idFilme/:idGenero (admin)
// @Summary Unlink a genre from a film
// @Tags Links
// @Produce json
// @Param idFilme path int true "Film id"
// @Param idGenero path int true "Genre id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /generosFilmes/{idFilme}/{idGenero} [delete]
func (h *LinkHandler) UnlinkGenre(c *fiber.Ctx) error {
	filmID, err := parseIDParam(c, "idFilme")
	if err != nil {
		return err
	}
	genreID, err := parseIDParam(c, "idGenero")
	if err != nil {
		return err
	}
	if err := services.UnlinkFilmGenre(h.DB, filmID, genreID); err != nil {
		return serviceError(c, err, "Relação não encontrada.", "RELACAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Relação removida com sucesso.")
}

// FilmGenres handles GET /generosFilmes/filme/:id
// @Summary List the genres of a film
// @Tags Links
// @Produce json
// @Param id path int true "Film id"
// @Success 200 {array} models.Genre
// @Router /generosFilmes/filme/{id} [get]
func (h *LinkHandler) FilmGenres(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	genres, err := services.ListFilmGenres(h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(genres)
}
