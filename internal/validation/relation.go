package validation

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
	"github.com/cinefilos/cinefilos-api/internal/types"
)

// Relation checks follow the legacy link validators: both endpoint rows must
// exist and the pair must not already be linked. Failures come back as
// status-coded errors because the link routes answered with them directly.

// FavoriteFilm validates a profile/film favorite before insertion.
func FavoriteFilm(db *gorm.DB, profileID, filmID uint64) (*types.CustomError, error) {
	if profileID == 0 || filmID == 0 {
		return types.NewCustomError(fiber.StatusBadRequest,
			"Os campos perfil e filme são obrigatórios.", "CAMPOS_OBRIGATORIOS_INVALIDOS"), nil
	}
	if ce, err := requireRow(db, &models.Profile{}, "idperfil = ?", profileID,
		"Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	if ce, err := requireRow(db, &models.Film{}, "idfilmes = ?", filmID,
		"Filme não encontrado.", "FILME_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	return requireAbsent(db, &models.FavoriteFilm{},
		"perfil_idperfil = ? AND filmes_idfilmes = ?", profileID, filmID)
}

// FavoriteActor validates a profile/actor favorite before insertion.
func FavoriteActor(db *gorm.DB, profileID, actorID uint64) (*types.CustomError, error) {
	if profileID == 0 || actorID == 0 {
		return types.NewCustomError(fiber.StatusBadRequest,
			"Os campos perfil e ator são obrigatórios.", "CAMPOS_OBRIGATORIOS_INVALIDOS"), nil
	}
	if ce, err := requireRow(db, &models.Profile{}, "idperfil = ?", profileID,
		"Perfil não encontrado.", "PERFIL_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	if ce, err := requireRow(db, &models.Actor{}, "idatores = ?", actorID,
		"Ator não encontrado.", "ATOR_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	return requireAbsent(db, &models.FavoriteActor{},
		"perfil_idperfil = ? AND atores_idatores = ?", profileID, actorID)
}

// FilmActorLink validates a catalog film/actor association.
func FilmActorLink(db *gorm.DB, filmID, actorID uint64) (*types.CustomError, error) {
	if filmID == 0 || actorID == 0 {
		return types.NewCustomError(fiber.StatusBadRequest,
			"Os campos filme e ator são obrigatórios.", "CAMPOS_OBRIGATORIOS_INVALIDOS"), nil
	}
	if ce, err := requireRow(db, &models.Film{}, "idfilmes = ?", filmID,
		"Filme não encontrado.", "FILME_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	if ce, err := requireRow(db, &models.Actor{}, "idatores = ?", actorID,
		"Ator não encontrado.", "ATOR_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	return requireAbsent(db, &models.FilmActor{},
		"filmes_idfilmes = ? AND atores_idatores = ?", filmID, actorID)
}

// FilmDirectorLink validates a catalog film/director association.
func FilmDirectorLink(db *gorm.DB, filmID, directorID uint64) (*types.CustomError, error) {
	if filmID == 0 || directorID == 0 {
		return types.NewCustomError(fiber.StatusBadRequest,
			"Os campos filme e diretor são obrigatórios.", "CAMPOS_OBRIGATORIOS_INVALIDOS"), nil
	}
	if ce, err := requireRow(db, &models.Film{}, "idfilmes = ?", filmID,
		"Filme não encontrado.", "FILME_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	if ce, err := requireRow(db, &models.Director{}, "iddiretor = ?", directorID,
		"Diretor não encontrado.", "DIRETOR_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	return requireAbsent(db, &models.FilmDirector{},
		"filmes_idfilmes = ? AND diretor_iddiretor = ?", filmID, directorID)
}

// FilmProducerLink validates a catalog film/producer association.
func FilmProducerLink(db *gorm.DB, filmID, producerID uint64) (*types.CustomError, error) {
	if filmID == 0 || producerID == 0 {
		return types.NewCustomError(fiber.StatusBadRequest,
			"Os campos filme e produtor são obrigatórios.", "CAMPOS_OBRIGATORIOS_INVALIDOS"), nil
	}
	if ce, err := requireRow(db, &models.Film{}, "idfilmes = ?", filmID,
		"Filme não encontrado.", "FILME_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	if ce, err := requireRow(db, &models.Producer{}, "idprodutor = ?", producerID,
		"Produtor não encontrado.", "PRODUTOR_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	return requireAbsent(db, &models.FilmProducer{},
		"filmes_idfilmes = ? AND produtor_idprodutor = ?", filmID, producerID)
}

// FilmGenreLink validates a catalog film/genre association.
func FilmGenreLink(db *gorm.DB, filmID, genreID uint64) (*types.CustomError, error) {
	if filmID == 0 || genreID == 0 {
		return types.NewCustomError(fiber.StatusBadRequest,
			"Os campos filme e gênero são obrigatórios.", "CAMPOS_OBRIGATORIOS_INVALIDOS"), nil
	}
	if ce, err := requireRow(db, &models.Film{}, "idfilmes = ?", filmID,
		"Filme não encontrado.", "FILME_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	if ce, err := requireRow(db, &models.Genre{}, "idgeneros = ?", genreID,
		"Gênero não encontrado.", "GENERO_NAO_ENCONTRADO"); ce != nil || err != nil {
		return ce, err
	}
	return requireAbsent(db, &models.FilmGenre{},
		"filmes_idfilmes = ? AND generos_idgeneros = ?", filmID, genreID)
}

func requireRow(db *gorm.DB, model interface{}, cond string, id uint64, message, code string) (*types.CustomError, error) {
	exists, err := rowExists(db, model, cond, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return types.NewCustomError(fiber.StatusNotFound, message, code), nil
	}
	return nil, nil
}

func requireAbsent(db *gorm.DB, model interface{}, cond string, args ...interface{}) (*types.CustomError, error) {
	exists, err := rowExists(db, model, cond, args...)
	if err != nil {
		return nil, err
	}
	if exists {
		return types.NewCustomError(fiber.StatusConflict,
			"Essa relação já existe.", "RELACAO_JA_EXISTENTE"), nil
	}
	return nil, nil
}
