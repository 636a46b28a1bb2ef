package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/types"
	"github.com/cinefilos/cinefilos-api/internal/utils"
	"github.com/cinefilos/cinefilos-api/internal/validation"
)

// parseIDParam reads a numeric path parameter. A malformed id is a client
// error, reported with the legacy envelope.
func parseIDParam(c *fiber.Ctx, name string) (uint64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, types.NewCustomError(fiber.StatusBadRequest,
			"O id informado é inválido.", "ID_INVALIDO")
	}
	return id, nil
}

// photoFromRequest extracts image bytes from a multipart "foto" field, or
// from the raw body when the client posts the image directly.
func photoFromRequest(c *fiber.Ctx) ([]byte, error) {
	file, err := c.FormFile("foto")
	if err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	body := c.Body()
	if len(body) == 0 {
		return nil, types.NewCustomError(fiber.StatusBadRequest,
			"Nenhuma imagem foi enviada.", "FOTO_AUSENTE")
	}
	// Fiber reuses the body buffer after the handler returns.
	photo := make([]byte, len(body))
	copy(photo, body)
	return photo, nil
}

// sendPhoto writes stored image bytes with a sniffed content type, since the
// database keeps no record of the uploaded format.
func sendPhoto(c *fiber.Ctx, photo []byte) error {
	c.Set(fiber.HeaderContentType, http.DetectContentType(photo))
	return c.Status(fiber.StatusOK).Send(photo)
}

// catalogPatch parses a partial-update body into the column map the services
// expect, stripping the columns a patch must never set directly.
func catalogPatch(c *fiber.Ctx, protected ...string) (map[string]interface{}, error) {
	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return nil, types.NewCustomError(fiber.StatusBadRequest,
			"Corpo da requisição inválido.", "BODY_INVALIDO")
	}
	for _, column := range protected {
		delete(patch, column)
	}
	return patch, nil
}

// serviceError maps the errors that bubble out of the service and validation
// layers onto the legacy envelopes. notFoundMessage and notFoundCode name the
// entity for the 404 case.
func serviceError(c *fiber.Ctx, err error, notFoundMessage, notFoundCode string) error {
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, notFoundMessage, notFoundCode)
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return utils.ValidationErrorResponse(c, verrs)
	}
	var ce *types.CustomError
	if errors.As(err, &ce) {
		return utils.ErrorResponse(c, ce.Status, ce.Message, ce.Code, nil)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError,
		"Erro interno do servidor.", "INTERNAL_ERROR", err)
}
