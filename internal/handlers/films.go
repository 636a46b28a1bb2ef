package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/utils"
	"github.com/cinefilos/cinefilos-api/internal/validation"
)

// FilmHandler handles the film catalog routes
type FilmHandler struct {
	DB *gorm.DB
}

type filmRequest struct {
	Name        string `json:"nomeFilme" validate:"required,max=255"`
	ReleaseDate string `json:"dataLanc"`
	Synopsis    string `json:"sinopse"`
	Rating      string `json:"classInd" validate:"max=45"`
}

// Create handles POST /filmes (admin)
// @Summary Add a film to the catalog
// @Tags Films
// @Accept json
// @Produce json
// @Param film body filmRequest true "New film"
// @Success 201 {object} models.Film
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /filmes [post]
func (h *FilmHandler) Create(c *fiber.Ctx) error {
	var req filmRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	if verrs := validation.Struct(req); len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	film := models.Film{
		Name:     req.Name,
		Synopsis: req.Synopsis,
		Rating:   req.Rating,
	}
	if req.ReleaseDate != "" {
		date, err := time.Parse("2006-01-02", req.ReleaseDate)
		if err != nil {
			return utils.ValidationErrorResponse(c,
				[]string{"A data de lançamento deve estar no formato AAAA-MM-DD."})
		}
		film.ReleaseDate = datatypes.Date(date)
	}

	if err := services.CreateFilm(h.DB, &film); err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(film)
}

// List handles GET /filmes
// @Summary List the film catalog
// @Tags Films
// @Produce json
// @Success 200 {array} models.Film
// @Router /filmes [get]
func (h *FilmHandler) List(c *fiber.Ctx) error {
	films, err := services.ListFilms(h.DB)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(films)
}

// Get handles GET /filmes/:id
// @Summary Get one film
// @Tags Films
// @Produce json
// @Param id path int true "Film id"
// @Success 200 {object} models.Film
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /filmes/{id} [get]
func (h *FilmHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	film, err := services.GetFilm(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Filme não encontrado.", "FILME_NAO_ENCONTRADO")
	}
	return c.Status(fiber.StatusOK).JSON(film)
}

// Search handles GET /filmes/pesquisar
// @Summary Search films by name
// @Tags Films
// @Produce json
// @Param nome query string true "Substring of the title"
// @Success 200 {array} models.Film
// @Router /filmes/pesquisar [get]
func (h *FilmHandler) Search(c *fiber.Ctx) error {
	name := c.Query("nome")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"O parâmetro nome é obrigatório.", "NOME_AUSENTE", nil)
	}
	films, err := services.SearchFilmsByName(h.DB, name)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(films)
}

// Update handles PATCH /filmes/:id (admin)
// @Summary Update a film
// @Tags Films
// @Accept json
// @Produce json
// @Param id path int true "Film id"
// @Param patch body map[string]interface{} true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /filmes/{id} [patch]
func (h *FilmHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	patch, err := catalogPatch(c, "idfilmes", "fotoFilme")
	if err != nil {
		return err
	}
	if err := services.UpdateFilm(h.DB, id, patch); err != nil {
		return serviceError(c, err, "Filme não encontrado.", "FILME_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Filme atualizado com sucesso.")
}

// UpdatePhoto handles PATCH /fotoFilme/:id (admin)
// @Summary Update a film's poster
// @Tags Films
// @Accept mpfd
// @Produce json
// @Param id path int true "Film id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /fotoFilme/{id} [patch]
func (h *FilmHandler) UpdatePhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	photo, err := photoFromRequest(c)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if err := services.UpdateFilmPhoto(h.DB, id, photo); err != nil {
		return serviceError(c, err, "Filme não encontrado.", "FILME_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Foto do filme atualizada com sucesso.")
}

// GetPhoto handles GET /fotoFilme/:id
// @Summary Get a film's poster
// @Tags Films
// @Produce png
// @Param id path int true "Film id"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /fotoFilme/{id} [get]
func (h *FilmHandler) GetPhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	photo, err := services.GetFilmPhoto(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Filme não encontrado.", "FILME_NAO_ENCONTRADO")
	}
	if len(photo) == 0 {
		return utils.NotFoundResponse(c, "Filme sem foto cadastrada.", "FOTO_NAO_ENCONTRADA")
	}
	return sendPhoto(c, photo)
}

// Delete handles DELETE /filmes/:id (admin)
// @Summary Remove a film from the catalog
// @Tags Films
// @Produce json
// @Param id path int true "Film id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /filmes/{id} [delete]
func (h *FilmHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteFilm(h.DB, id); err != nil {
		return serviceError(c, err, "Filme não encontrado.", "FILME_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Filme deletado com sucesso.")
}
