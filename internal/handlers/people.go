package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/utils"
)

// The name-only catalog entities (directors, producers, genres) share the
// same request shape and route pattern.

type nameRequest struct {
	Name string `json:"nome"`
}

// DirectorHandler handles the director catalog routes
type DirectorHandler struct {
	DB *gorm.DB
}

// Create handles POST /diretores (admin)
// @Summary Add a director
// @Tags Directors
// @Accept json
// @Produce json
// @Param director body nameRequest true "New director"
// @Success 201 {object} models.Director
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /diretores [post]
func (h *DirectorHandler) Create(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	if req.Name == "" {
		return utils.ValidationErrorResponse(c, []string{"O nome do diretor é obrigatório."})
	}
	director := models.Director{Name: req.Name}
	if err := services.CreateDirector(h.DB, &director); err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(director)
}

// List handles GET /diretores
// @Summary List directors
// @Tags Directors
// @Produce json
// @Success 200 {array} models.Director
// @Router /diretores [get]
func (h *DirectorHandler) List(c *fiber.Ctx) error {
	directors, err := services.ListDirectors(h.DB)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(directors)
}

// Get handles GET /diretores/:id
// @Summary Get one director
// @Tags Directors
// @Produce json
// @Param id path int true "Director id"
// @Success 200 {object} models.Director
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /diretores/{id} [get]
func (h *DirectorHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	director, err := services.GetDirector(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Diretor não encontrado.", "DIRETOR_NAO_ENCONTRADO")
	}
	return c.Status(fiber.StatusOK).JSON(director)
}

// Update handles PATCH /diretores/:id (admin)
// @Summary Update a director
// @Tags Directors
// @Accept json
// @Produce json
// @Param id path int true "Director id"
// @Param patch body nameRequest true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /diretores/{id} [patch]
func (h *DirectorHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	patch, err := catalogPatch(c, "iddiretor")
	if err != nil {
		return err
	}
	if err := services.UpdateDirector(h.DB, id, patch); err != nil {
		return serviceError(c, err, "Diretor não encontrado.", "DIRETOR_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Diretor atualizado com sucesso.")
}

// Delete handles DELETE /diretores/:id (admin)
// @Summary Remove a director
// @Tags Directors
// @Produce json
// @Param id path int true "Director id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /diretores/{id} [delete]
func (h *DirectorHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteDirector(h.DB, id); err != nil {
		return serviceError(c, err, "Diretor não encontrado.", "DIRETOR_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Diretor deletado com sucesso.")
}

// ProducerHandler handles the producer catalog routes
type ProducerHandler struct {
	DB *gorm.DB
}

// Create handles POST /produtores (admin)
// @Summary Add a producer
// @Tags Producers
// @Accept json
// @Produce json
// @Param producer body nameRequest true "New producer"
// @Success 201 {object} models.Producer
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /produtores [post]
func (h *ProducerHandler) Create(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	if req.Name == "" {
		return utils.ValidationErrorResponse(c, []string{"O nome do produtor é obrigatório."})
	}
	producer := models.Producer{Name: req.Name}
	if err := services.CreateProducer(h.DB, &producer); err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(producer)
}

// List handles GET /produtores
// @Summary List producers
// @Tags Producers
// @Produce json
// @Success 200 {array} models.Producer
// @Router /produtores [get]
func (h *ProducerHandler) List(c *fiber.Ctx) error {
	producers, err := services.ListProducers(h.DB)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(producers)
}

// Get handles GET /produtores/:id
// @Summary Get one producer
// @Tags Producers
// @Produce json
// @Param id path int true "Producer id"
// @Success 200 {object} models.Producer
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /produtores/{id} [get]
func (h *ProducerHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	producer, err := services.GetProducer(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Produtor não encontrado.", "PRODUTOR_NAO_ENCONTRADO")
	}
	return c.Status(fiber.StatusOK).JSON(producer)
}

// Update handles PATCH /produtores/:id (admin)
// @Summary Update a producer
// @Tags Producers
// @Accept json
// @Produce json
// @Param id path int true "Producer id"
// @Param patch body nameRequest true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /produtores/{id} [patch]
func (h *ProducerHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	patch, err := catalogPatch(c, "idprodutor")
	if err != nil {
		return err
	}
	if err := services.UpdateProducer(h.DB, id, patch); err != nil {
		return serviceError(c, err, "Produtor não encontrado.", "PRODUTOR_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Produtor atualizado com sucesso.")
}

// Delete handles DELETE /produtores/:id (admin)
// @Summary Remove a producer
// @Tags Producers
// @Produce json
// @Param id path int true "Producer id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /produtores/{id} [delete]
func (h *ProducerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteProducer(h.DB, id); err != nil {
		return serviceError(c, err, "Produtor não encontrado.", "PRODUTOR_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Produtor deletado com sucesso.")
}

// GenreHandler handles the genre catalog routes
type GenreHandler struct {
	DB *gorm.DB
}

// Create handles POST /generos (admin)
// @Summary Add a genre
// @Tags Genres
// @Accept json
// @Produce json
// @Param genre body nameRequest true "New genre"
// @Success 201 {object} models.Genre
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /generos [post]
func (h *GenreHandler) Create(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	if req.Name == "" {
		return utils.ValidationErrorResponse(c, []string{"O nome do gênero é obrigatório."})
	}
	genre := models.Genre{Name: req.Name}
	if err := services.CreateGenre(h.DB, &genre); err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(genre)
}

// List handles GET /generos
// @Summary List genres
// @Tags Genres
// @Produce json
// @Success 200 {array} models.Genre
// @Router /generos [get]
func (h *GenreHandler) List(c *fiber.Ctx) error {
	genres, err := services.ListGenres(h.DB)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(genres)
}

// Get handles GET /generos/:id
// @Summary Get one genre
// @Tags Genres
// @Produce json
// @Param id path int true "Genre id"
// @Success 200 {object} models.Genre
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /generos/{id} [get]
func (h *GenreHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	genre, err := services.GetGenre(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Gênero não encontrado.", "GENERO_NAO_ENCONTRADO")
	}
	return c.Status(fiber.StatusOK).JSON(genre)
}

// Update handles PATCH /generos/:id (admin)
// @Summary Update a genre
// @Tags Genres
// @Accept json
// @Produce json
// @Param id path int true "Genre id"
// @Param patch body nameRequest true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /generos/{id} [patch]
func (h *GenreHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	patch, err := catalogPatch(c, "idgeneros")
	if err != nil {
		return err
	}
	if err := services.UpdateGenre(h.DB, id, patch); err != nil {
		return serviceError(c, err, "Gênero não encontrado.", "GENERO_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Gênero atualizado com sucesso.")
}

// Delete handles DELETE /generos/:id (admin)
// @Summary Remove a genre
// @Tags Genres
// @Produce json
// @Param id path int true "Genre id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /generos/{id} [delete]
func (h *GenreHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteGenre(h.DB, id); err != nil {
		return serviceError(c, err, "Gênero não encontrado.", "GENERO_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Gênero deletado com sucesso.")
}
