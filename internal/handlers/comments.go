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

// CommentHandler handles the comment routes. Listings come back aggregated
// with author, film and vote totals.
type CommentHandler struct {
	DB *gorm.DB
}

type commentRequest struct {
	FilmID types.FlexUint64 `json:"filmes_idfilmes" validate:"required"`
	Text   string           `json:"descricao" validate:"required"`
}

// Create handles POST /comentarios
// @Summary Comment on a film
// @Tags Comments
// @Accept json
// @Produce json
// @Param comment body commentRequest true "New comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /comentarios [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	if verrs := validation.Struct(req); len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	if _, err := services.GetFilm(h.DB, req.FilmID.Uint64()); err != nil {
		return serviceError(c, err, "Filme não encontrado.", "FILME_NAO_ENCONTRADO")
	}

	comment, err := services.CreateComment(h.DB, claims.ProfileID, req.FilmID.Uint64(), req.Text)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// List handles GET /comentarios
// @Summary List every comment with vote totals
// @Tags Comments
// @Produce json
// @Success 200 {array} services.CommentView
// @Router /comentarios [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	views, err := services.ListComments(h.DB)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

// ListByFilm handles GET /comentarios/filme/:idFilme
// @Summary List a film's comments with vote totals
// @Tags Comments
// @Produce json
// @Param idFilme path int true "Film id"
// @Success 200 {array} services.CommentView
// @Router /comentarios/filme/{idFilme} [get]
func (h *CommentHandler) ListByFilm(c *fiber.Ctx) error {
	filmID, err := parseIDParam(c, "idFilme")
	if err != nil {
		return err
	}
	views, err := services.ListCommentsByFilm(h.DB, filmID)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

// Mine handles GET /comentarios/meus
// @Summary List the caller's comments with vote totals
// @Tags Comments
// @Produce json
// @Success 200 {array} services.CommentView
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /comentarios/meus [get]
func (h *CommentHandler) Mine(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	views, err := services.ListCommentsByProfile(h.DB, claims.ProfileID)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

// Update handles PATCH /comentarios/:id
// @Summary Rewrite the caller's comment
// @Description Someone else's comment reads as not found
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Comment id"
// @Param comment body commentRequest true "Film id and new text"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /comentarios/{id} [patch]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.applyUpdate(c, claims.ProfileID)
}

// AdminUpdate handles PATCH /comentarios/adm/:id (admin)
// @Summary Rewrite any comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Comment id"
// @Param comment body commentRequest true "Film id and new text"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /comentarios/adm/{id} [patch]
func (h *CommentHandler) AdminUpdate(c *fiber.Ctx) error {
	return h.applyUpdate(c, 0)
}

// Delete handles DELETE /comentarios/:idFilme/:id
// @Summary Delete the caller's comment
// @Tags Comments
// @Produce json
// @Param idFilme path int true "Film id"
// @Param id path int true "Comment id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /comentarios/{idFilme}/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.applyDelete(c, claims.ProfileID)
}

// AdminDelete handles DELETE /comentarios/adm/:idFilme/:id (admin)
// @Summary Delete any comment
// @Tags Comments
// @Produce json
// @Param idFilme path int true "Film id"
// @Param id path int true "Comment id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /comentarios/adm/{idFilme}/{id} [delete]
func (h *CommentHandler) AdminDelete(c *fiber.Ctx) error {
	return h.applyDelete(c, 0)
}

// AdminDeleteByFilm handles DELETE /comentarios/adm/filme/:idFilme (admin)
// @Summary Delete every comment on a film
// @Tags Comments
// @Produce json
// @Param idFilme path int true "Film id"
// @Success 200 {object} map[string]interface{}
// @Router /comentarios/adm/filme/{idFilme} [delete]
func (h *CommentHandler) AdminDeleteByFilm(c *fiber.Ctx) error {
	filmID, err := parseIDParam(c, "idFilme")
	if err != nil {
		return err
	}
	affectedRows, err := services.DeleteCommentsByFilm(h.DB, filmID)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mensagem":       "Comentários deletados com sucesso.",
		"linhasAfetadas": affectedRows,
	})
}

// AdminDeleteByProfile handles DELETE /comentarios/adm/perfil/:idPerfil (admin)
// @Summary Delete every comment by a profile
// @Tags Comments
// @Produce json
// @Param idPerfil path int true "Profile id"
// @Success 200 {object} map[string]interface{}
// @Router /comentarios/adm/perfil/{idPerfil} [delete]
func (h *CommentHandler) AdminDeleteByProfile(c *fiber.Ctx) error {
	profileID, err := parseIDParam(c, "idPerfil")
	if err != nil {
		return err
	}
	affectedRows, err := services.DeleteCommentsByProfile(h.DB, profileID)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mensagem":       "Comentários deletados com sucesso.",
		"linhasAfetadas": affectedRows,
	})
}

func (h *CommentHandler) applyUpdate(c *fiber.Ctx, profileID uint64) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	if verrs := validation.Struct(req); len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}
	if err := services.UpdateComment(h.DB, id, req.FilmID.Uint64(), profileID, req.Text); err != nil {
		return serviceError(c, err, "Comentário não encontrado.", "COMENTARIO_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Comentário atualizado com sucesso.")
}

func (h *CommentHandler) applyDelete(c *fiber.Ctx, profileID uint64) error {
	filmID, err := parseIDParam(c, "idFilme")
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteComment(h.DB, id, filmID, profileID); err != nil {
		return serviceError(c, err, "Comentário não encontrado.", "COMENTARIO_NAO_ENCONTRADO")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Comentário deletado com sucesso.")
}
