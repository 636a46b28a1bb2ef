package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/types"
	"github.com/cinefilos/cinefilos-api/internal/utils"
)

// ActorHandler handles the actor catalog routes
type ActorHandler struct {
	DB *gorm.DB
}

type actorRequest struct {
	Name      string          `json:"nome"`
	BirthDate string          `json:"dataNasc"`
	Alive     *types.FlexBool `json:"vivo"`
}

// Create handles POST /atores (admin)
// @Summary Add an actor to the catalog
// @Tags Actors
// @Accept json
// @Produce json
// @Param actor body actorRequest true "New actor"
// @Success 201 {object} models.Actor
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /atores [post]
func (h *ActorHandler) Create(c *fiber.Ctx) error {
	var req actorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	if req.Name == "" {
		return utils.ValidationErrorResponse(c, []string{"O nome do ator é obrigatório."})
	}

	// vivo defaults to true when the client omits it.
	alive := true
	if req.Alive != nil {
		alive = req.Alive.Bool()
	}
	actor := models.Actor{
		Name:  req.Name,
		Alive: alive,
	}
	if req.BirthDate != "" {
		date, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return utils.ValidationErrorResponse(c,
				[]string{"A data de nascimento deve estar no formato AAAA-MM-DD."})
		}
		actor.BirthDate = datatypes.Date(date)
	}

	if err := services.CreateActor(h.DB, &actor); err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(actor)
}

// List handles GET /atores
// @Summary List the actor catalog
// @Tags Actors
// @Produce json
// @Success 200 {array} models.Actor
// @Router /atores [get]
func (h *ActorHandler) List(c *fiber.Ctx) error {
	actors, err := services.ListActors(h.DB)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(actors)
}

// Get handles GET /atores/:id
// @Summary Get one actor
// @Tags Actors
// @Produce json
// @Param id path int true "Actor id"
// @Success 200 {object} models.Actor
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /atores/{id} [get]
func (h *ActorHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	actor, err := services.GetActor(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Ator não encontrado.", "ATOR_NAO_ENCONTRADO")
	}
	return c.Status(fiber.StatusOK).JSON(actor)
}

// Search handles GET /atores/pesquisar
// @Summary Search actors by name
// @Tags Actors
// @Produce json
// @Param nome query string true "Substring of the name"
// @Success 200 {array} models.Actor
// @Router /atores/pesquisar [get]
func (h *ActorHandler) Search(c *fiber.Ctx) error {
	name := c.Query("nome")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"O parâmetro nome é obrigatório.", "NOME_AUSENTE", nil)
	}
	actors, err := services.SearchActorsByName(h.DB, name)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(actors)
}

// Update handles PATCH /atores/:id (admin)
// @Summary Update an actor
// @Tags Actors
// @Accept json
// @Produce json
// @Param id path int true "Actor id"
// @Param patch body map[string]interface{} true "Fields to change"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /atores/{id} [patch]
func (h *ActorHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	patch, err := catalogPatch(c, "idatores", "fotoAtor")
	if err != nil {
		return err
	}
	if err := services.UpdateActor(h.DB, id, patch); err != nil {
		return serviceError(c, err, "Ator não encontrado.", "ATOR_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Ator atualizado com sucesso.")
}

// UpdatePhoto handles PATCH /fotoAtor/:id (admin)
// @Summary Update an actor's photo
// @Tags Actors
// @Accept mpfd
// @Produce json
// @Param id path int true "Actor id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /fotoAtor/{id} [patch]
func (h *ActorHandler) UpdatePhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	photo, err := photoFromRequest(c)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if err := services.UpdateActorPhoto(h.DB, id, photo); err != nil {
		return serviceError(c, err, "Ator não encontrado.", "ATOR_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Foto do ator atualizada com sucesso.")
}

// GetPhoto handles GET /fotoAtor/:id
// @Summary Get an actor's photo
// @Tags Actors
// @Produce png
// @Param id path int true "Actor id"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /fotoAtor/{id} [get]
func (h *ActorHandler) GetPhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	photo, err := services.GetActorPhoto(h.DB, id)
	if err != nil {
		return serviceError(c, err, "Ator não encontrado.", "ATOR_NAO_ENCONTRADO")
	}
	if len(photo) == 0 {
		return utils.NotFoundResponse(c, "Ator sem foto cadastrada.", "FOTO_NAO_ENCONTRADA")
	}
	return sendPhoto(c, photo)
}

// Delete handles DELETE /atores/:id (admin)
// @Summary Remove an actor from the catalog
// @Tags Actors
// @Produce json
// @Param id path int true "Actor id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /atores/{id} [delete]
func (h *ActorHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteActor(h.DB, id); err != nil {
		return serviceError(c, err, "Ator não encontrado.", "ATOR_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Ator deletado com sucesso.")
}
