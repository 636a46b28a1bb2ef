package validation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
)

// FilmSuggestionCreate mirrors the legacy suggestion validator: the name is
// mandatory and must not collide with an existing suggestion or catalog film.
func FilmSuggestionCreate(db *gorm.DB, name string) (Errors, error) {
	var errs Errors

	if name == "" {
		errs = append(errs, "O nome do filme é obrigatório.")
		return errs, nil
	}

	var suggestion models.FilmSuggestion
	err := db.Where("nomeFilme = ?", name).First(&suggestion).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		errs = append(errs, "Já existe uma sugestão com esse nome cadastrada.")
		return errs, nil
	}

	var film models.Film
	err = db.Where("nomeFilme = ?", name).First(&film).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		errs = append(errs, "Já existe um filme com esse nome cadastrado.")
	}
	return errs, nil
}

// ActorSuggestionCreate validates a new actor suggestion against existing
// suggestions and the actor catalog.
func ActorSuggestionCreate(db *gorm.DB, name string) (Errors, error) {
	var errs Errors

	if name == "" {
		errs = append(errs, "O nome do ator é obrigatório.")
		return errs, nil
	}

	var suggestion models.ActorSuggestion
	err := db.Where("nome = ?", name).First(&suggestion).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		errs = append(errs, "Já existe uma sugestão com esse nome cadastrada.")
		return errs, nil
	}

	var actor models.Actor
	err = db.Where("nome = ?", name).First(&actor).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		errs = append(errs, "Já existe um ator com esse nome cadastrado.")
	}
	return errs, nil
}
