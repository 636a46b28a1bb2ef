package validation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
)

// Flags checks the positive/negative pair every evaluation carries. The
// legacy validators rejected a vote that was both at once.
func Flags(positive, negative bool) Errors {
	if positive && negative {
		return Errors{"A avaliação não pode ser positiva e negativa ao mesmo tempo."}
	}
	if !positive && !negative {
		return Errors{"A avaliação deve ser positiva ou negativa."}
	}
	return nil
}

// FilmEvaluationCreate validates a vote on a catalog film: flag sanity, film
// existence and one vote per profile.
func FilmEvaluationCreate(db *gorm.DB, profileID, filmID uint64, positive, negative bool) (Errors, error) {
	if errs := Flags(positive, negative); errs != nil {
		return errs, nil
	}

	exists, err := rowExists(db, &models.Film{}, "idfilmes = ?", filmID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return Errors{"Esse filme não existe."}, nil
	}

	dup, err := rowExists(db, &models.FilmEvaluation{},
		"perfil_idperfil = ? AND filmes_idfilmes = ?", profileID, filmID)
	if err != nil {
		return nil, err
	}
	if dup {
		return Errors{"Você já avaliou esse filme."}, nil
	}
	return nil, nil
}

// ActorEvaluationCreate validates a vote on a catalog actor.
func ActorEvaluationCreate(db *gorm.DB, profileID, actorID uint64, positive, negative bool) (Errors, error) {
	if errs := Flags(positive, negative); errs != nil {
		return errs, nil
	}

	exists, err := rowExists(db, &models.Actor{}, "idatores = ?", actorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return Errors{"Esse ator não existe."}, nil
	}

	dup, err := rowExists(db, &models.ActorEvaluation{},
		"perfil_idperfil = ? AND atores_idatores = ?", profileID, actorID)
	if err != nil {
		return nil, err
	}
	if dup {
		return Errors{"Você já avaliou esse ator."}, nil
	}
	return nil, nil
}

// FilmSuggestionEvaluationCreate validates a vote on a film suggestion.
func FilmSuggestionEvaluationCreate(db *gorm.DB, profileID, suggestionID uint64, positive, negative bool) (Errors, error) {
	if errs := Flags(positive, negative); errs != nil {
		return errs, nil
	}

	exists, err := rowExists(db, &models.FilmSuggestion{}, "idsugestoesFilmes = ?", suggestionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return Errors{"Essa sugestão não existe."}, nil
	}

	dup, err := rowExists(db, &models.FilmSuggestionEvaluation{},
		"perfil_idperfil = ? AND sugestoesFilmes_idsugestoesFilmes = ?", profileID, suggestionID)
	if err != nil {
		return nil, err
	}
	if dup {
		return Errors{"Você já avaliou essa sugestão."}, nil
	}
	return nil, nil
}

// ActorSuggestionEvaluationCreate validates a vote on an actor suggestion.
func ActorSuggestionEvaluationCreate(db *gorm.DB, profileID, suggestionID uint64, positive, negative bool) (Errors, error) {
	if errs := Flags(positive, negative); errs != nil {
		return errs, nil
	}

	exists, err := rowExists(db, &models.ActorSuggestion{}, "idsugestoesAtores = ?", suggestionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return Errors{"Essa sugestão não existe."}, nil
	}

	dup, err := rowExists(db, &models.ActorSuggestionEvaluation{},
		"perfil_idperfil = ? AND sugestoesAtores_idsugestoesAtores = ?", profileID, suggestionID)
	if err != nil {
		return nil, err
	}
	if dup {
		return Errors{"Você já avaliou essa sugestão."}, nil
	}
	return nil, nil
}

// CommentEvaluationCreate validates a vote on a comment, identified by its
// composite key.
func CommentEvaluationCreate(db *gorm.DB, voterID, commentID, authorID, filmID uint64, positive, negative bool) (Errors, error) {
	if errs := Flags(positive, negative); errs != nil {
		return errs, nil
	}

	exists, err := rowExists(db, &models.Comment{},
		"idcomentarios = ? AND perfil_idperfil = ? AND filmes_idfilmes = ?", commentID, authorID, filmID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return Errors{"Esse comentário não existe."}, nil
	}

	dup, err := rowExists(db, &models.CommentEvaluation{},
		"comentarios_idcomentarios = ? AND comentarios_perfil_idperfil = ? AND comentarios_filmes_idfilmes = ? AND perfil_idperfil = ?",
		commentID, authorID, filmID, voterID)
	if err != nil {
		return nil, err
	}
	if dup {
		return Errors{"Você já avaliou esse comentário."}, nil
	}
	return nil, nil
}

func rowExists(db *gorm.DB, model interface{}, cond string, args ...interface{}) (bool, error) {
	err := db.Where(cond, args...).First(model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
