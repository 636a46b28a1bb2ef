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

// EvaluationHandler handles the like/dislike routes for films, actors,
// suggestions and comments.
type EvaluationHandler struct {
	DB *gorm.DB
}

type evaluationRequest struct {
	FilmID        types.FlexUint64 `json:"filmes_idfilmes"`
	ActorID       types.FlexUint64 `json:"atores_idatores"`
	SuggestionID  types.FlexUint64 `json:"idSugestao"`
	CommentID     types.FlexUint64 `json:"comentarios_idcomentarios"`
	CommentAuthor types.FlexUint64 `json:"comentarios_perfil_idperfil"`
	CommentFilm   types.FlexUint64 `json:"comentarios_filmes_idfilmes"`
	Positive      types.FlexBool   `json:"positiva"`
	Negative      types.FlexBool   `json:"negativa"`
}

// CreateFilm handles POST /avaliacaoFilmes
// @Summary Vote on a film
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param evaluation body evaluationRequest true "Vote"
// @Success 201 {object} models.FilmEvaluation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /avaliacaoFilmes [post]
func (h *EvaluationHandler) CreateFilm(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req evaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	verrs, err := validation.FilmEvaluationCreate(h.DB, claims.ProfileID,
		req.FilmID.Uint64(), req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	evaluation, err := services.CreateFilmEvaluation(h.DB, claims.ProfileID,
		req.FilmID.Uint64(), req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(evaluation)
}

// FilmTotals handles GET /avaliacaoFilmes/filme/:id
// @Summary Get a film's vote totals
// @Tags Evaluations
// @Produce json
// @Param id path int true "Film id"
// @Success 200 {object} services.EvaluationTotals
// @Router /avaliacaoFilmes/filme/{id} [get]
func (h *EvaluationHandler) FilmTotals(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	totals, err := services.FilmEvaluationTotals(h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(totals)
}

// MyFilmVote handles GET /avaliacaoFilmes/minha/:idFilme
// @Summary Get the caller's vote on a film
// @Tags Evaluations
// @Produce json
// @Param idFilme path int true "Film id"
// @Success 200 {object} models.FilmEvaluation
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoFilmes/minha/{idFilme} [get]
func (h *EvaluationHandler) MyFilmVote(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	filmID, err := parseIDParam(c, "idFilme")
	if err != nil {
		return err
	}
	evaluation, err := services.GetFilmEvaluation(h.DB, claims.ProfileID, filmID)
	if err != nil {
		return serviceError(c, err, "Avaliação não encontrada.", "AVALIACAO_NAO_ENCONTRADA")
	}
	return c.Status(fiber.StatusOK).JSON(evaluation)
}

// UpdateFilm handles PATCH /avaliacaoFilmes/:id
// @Summary Change the caller's vote on a film
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param id path int true "Evaluation id"
// @Param evaluation body evaluationRequest true "New flags"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoFilmes/{id} [patch]
func (h *EvaluationHandler) UpdateFilm(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req evaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	if verrs := validation.Flags(req.Positive.Bool(), req.Negative.Bool()); verrs != nil {
		return utils.ValidationErrorResponse(c, verrs)
	}
	if err := services.UpdateFilmEvaluation(h.DB, id, claims.ProfileID,
		req.Positive.Bool(), req.Negative.Bool()); err != nil {
		return serviceError(c, err, "Avaliação não encontrada.", "AVALIACAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Avaliação atualizada com sucesso.")
}

// DeleteFilm handles DELETE /avaliacaoFilmes/:id
// @Summary Remove the caller's vote on a film
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoFilmes/{id} [delete]
func (h *EvaluationHandler) DeleteFilm(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.deleteVote(c, services.DeleteFilmEvaluation, claims.ProfileID)
}

// AdminDeleteFilm handles DELETE /avaliacaoFilmes/adm/:id (admin)
// @Summary Remove any vote on a film
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoFilmes/adm/{id} [delete]
func (h *EvaluationHandler) AdminDeleteFilm(c *fiber.Ctx) error {
	return h.deleteVote(c, services.DeleteFilmEvaluation, 0)
}

// CreateActor handles POST /avaliacaoAtores
// @Summary Vote on an actor
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param evaluation body evaluationRequest true "Vote"
// @Success 201 {object} models.ActorEvaluation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /avaliacaoAtores [post]
func (h *EvaluationHandler) CreateActor(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req evaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	verrs, err := validation.ActorEvaluationCreate(h.DB, claims.ProfileID,
		req.ActorID.Uint64(), req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	evaluation, err := services.CreateActorEvaluation(h.DB, claims.ProfileID,
		req.ActorID.Uint64(), req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(evaluation)
}

// ActorTotals handles GET /avaliacaoAtores/ator/:id
// @Summary Get an actor's vote totals
// @Tags Evaluations
// @Produce json
// @Param id path int true "Actor id"
// @Success 200 {object} services.EvaluationTotals
// @Router /avaliacaoAtores/ator/{id} [get]
func (h *EvaluationHandler) ActorTotals(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	totals, err := services.ActorEvaluationTotals(h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(totals)
}

// UpdateActor handles PATCH /avaliacaoAtores/:id
// @Summary Change the caller's vote on an actor
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param id path int true "Evaluation id"
// @Param evaluation body evaluationRequest true "New flags"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoAtores/{id} [patch]
func (h *EvaluationHandler) UpdateActor(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req evaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}
	if verrs := validation.Flags(req.Positive.Bool(), req.Negative.Bool()); verrs != nil {
		return utils.ValidationErrorResponse(c, verrs)
	}
	if err := services.UpdateActorEvaluation(h.DB, id, claims.ProfileID,
		req.Positive.Bool(), req.Negative.Bool()); err != nil {
		return serviceError(c, err, "Avaliação não encontrada.", "AVALIACAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Avaliação atualizada com sucesso.")
}

// DeleteActor handles DELETE /avaliacaoAtores/:id
// @Summary Remove the caller's vote on an actor
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoAtores/{id} [delete]
func (h *EvaluationHandler) DeleteActor(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.deleteVote(c, services.DeleteActorEvaluation, claims.ProfileID)
}

// AdminDeleteActor handles DELETE /avaliacaoAtores/adm/:id (admin)
// @Summary Remove any vote on an actor
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoAtores/adm/{id} [delete]
func (h *EvaluationHandler) AdminDeleteActor(c *fiber.Ctx) error {
	return h.deleteVote(c, services.DeleteActorEvaluation, 0)
}

// CreateFilmSuggestion handles POST /avaliacaoSugsFilmes
// @Summary Vote on a film suggestion
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param evaluation body evaluationRequest true "Vote"
// @Success 201 {object} models.FilmSuggestionEvaluation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /avaliacaoSugsFilmes [post]
func (h *EvaluationHandler) CreateFilmSuggestion(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req evaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	verrs, err := validation.FilmSuggestionEvaluationCreate(h.DB, claims.ProfileID,
		req.SuggestionID.Uint64(), req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	evaluation, err := services.CreateFilmSuggestionEvaluation(h.DB, claims.ProfileID,
		req.SuggestionID.Uint64(), req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(evaluation)
}

// FilmSuggestionTotals handles GET /avaliacaoSugsFilmes/sugestao/:id
// @Summary Get a film suggestion's vote totals
// @Tags Evaluations
// @Produce json
// @Param id path int true "Suggestion id"
// @Success 200 {object} services.EvaluationTotals
// @Router /avaliacaoSugsFilmes/sugestao/{id} [get]
func (h *EvaluationHandler) FilmSuggestionTotals(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	totals, err := services.FilmSuggestionEvaluationTotals(h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(totals)
}

// DeleteFilmSuggestion handles DELETE /avaliacaoSugsFilmes/:id
// @Summary Remove the caller's vote on a film suggestion
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoSugsFilmes/{id} [delete]
func (h *EvaluationHandler) DeleteFilmSuggestion(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.deleteVote(c, services.DeleteFilmSuggestionEvaluation, claims.ProfileID)
}

// AdminDeleteFilmSuggestion handles DELETE /avaliacaoSugsFilmes/adm/:id (admin)
// @Summary Remove any vote on a film suggestion
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoSugsFilmes/adm/{id} [delete]
func (h *EvaluationHandler) AdminDeleteFilmSuggestion(c *fiber.Ctx) error {
	return h.deleteVote(c, services.DeleteFilmSuggestionEvaluation, 0)
}

// CreateActorSuggestion handles POST /avaliacaoSugsAtores
// @Summary Vote on an actor suggestion
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param evaluation body evaluationRequest true "Vote"
// @Success 201 {object} models.ActorSuggestionEvaluation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /avaliacaoSugsAtores [post]
func (h *EvaluationHandler) CreateActorSuggestion(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req evaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	verrs, err := validation.ActorSuggestionEvaluationCreate(h.DB, claims.ProfileID,
		req.SuggestionID.Uint64(), req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	evaluation, err := services.CreateActorSuggestionEvaluation(h.DB, claims.ProfileID,
		req.SuggestionID.Uint64(), req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(evaluation)
}

// ActorSuggestionTotals handles GET /avaliacaoSugsAtores/sugestao/:id
// @Summary Get an actor suggestion's vote totals
// @Tags Evaluations
// @Produce json
// @Param id path int true "Suggestion id"
// @Success 200 {object} services.EvaluationTotals
// @Router /avaliacaoSugsAtores/sugestao/{id} [get]
func (h *EvaluationHandler) ActorSuggestionTotals(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	totals, err := services.ActorSuggestionEvaluationTotals(h.DB, id)
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusOK).JSON(totals)
}

// DeleteActorSuggestion handles DELETE /avaliacaoSugsAtores/:id
// @Summary Remove the caller's vote on an actor suggestion
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoSugsAtores/{id} [delete]
func (h *EvaluationHandler) DeleteActorSuggestion(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.deleteVote(c, services.DeleteActorSuggestionEvaluation, claims.ProfileID)
}

// AdminDeleteActorSuggestion handles DELETE /avaliacaoSugsAtores/adm/:id (admin)
// @Summary Remove any vote on an actor suggestion
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoSugsAtores/adm/{id} [delete]
func (h *EvaluationHandler) AdminDeleteActorSuggestion(c *fiber.Ctx) error {
	return h.deleteVote(c, services.DeleteActorSuggestionEvaluation, 0)
}

// CreateComment handles POST /avaliacaoComentarios
// @Summary Vote on a comment
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param evaluation body evaluationRequest true "Vote with the comment's composite key"
// @Success 201 {object} models.CommentEvaluation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /avaliacaoComentarios [post]
func (h *EvaluationHandler) CreateComment(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	var req evaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO", err)
	}

	verrs, err := validation.CommentEvaluationCreate(h.DB, claims.ProfileID,
		req.CommentID.Uint64(), req.CommentAuthor.Uint64(), req.CommentFilm.Uint64(),
		req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	if len(verrs) > 0 {
		return utils.ValidationErrorResponse(c, verrs)
	}

	evaluation, err := services.CreateCommentEvaluation(h.DB, claims.ProfileID,
		req.CommentID.Uint64(), req.CommentAuthor.Uint64(), req.CommentFilm.Uint64(),
		req.Positive.Bool(), req.Negative.Bool())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.Status(fiber.StatusCreated).JSON(evaluation)
}

// DeleteComment handles DELETE /avaliacaoComentarios/:id
// @Summary Remove the caller's vote on a comment
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoComentarios/{id} [delete]
func (h *EvaluationHandler) DeleteComment(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	return h.deleteVote(c, services.DeleteCommentEvaluation, claims.ProfileID)
}

// AdminDeleteComment handles DELETE /avaliacaoComentarios/adm/:id (admin)
// @Summary Remove any vote on a comment
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /avaliacaoComentarios/adm/{id} [delete]
func (h *EvaluationHandler) AdminDeleteComment(c *fiber.Ctx) error {
	return h.deleteVote(c, services.DeleteCommentEvaluation, 0)
}

func (h *EvaluationHandler) deleteVote(c *fiber.Ctx, del func(*gorm.DB, uint64, uint64) error, profileID uint64) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := del(h.DB, id, profileID); err != nil {
		return serviceError(c, err, "Avaliação não encontrada.", "AVALIACAO_NAO_ENCONTRADA")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Avaliação deletada com sucesso.")
}
