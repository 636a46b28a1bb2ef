package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
)

// EvaluationTotals aggregates the votes on one target.
type EvaluationTotals struct {
	Likes    int64 `json:"totalLikes"`
	Dislikes int64 `json:"totalDislikes"`
}

// Votes carry a (positive, negative) flag pair per profile per target. The
// validators reject duplicates and contradictory pairs before these run;
// mutations on an existing vote are owner-scoped the same way suggestions
// are, with profileID zero meaning an admin caller.

func CreateFilmEvaluation(db *gorm.DB, profileID, filmID uint64, positive, negative bool) (*models.FilmEvaluation, error) {
	evaluation := models.FilmEvaluation{
		ProfileID: profileID,
		FilmID:    filmID,
		Positive:  positive,
		Negative:  negative,
	}
	if err := db.Create(&evaluation).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// FilmEvaluationTotals sums the likes and dislikes of one film. The flag
// columns keep their legacy names, which collide with SQL keywords, so they
// stay backtick-free via the dialect-neutral CASE form.
func FilmEvaluationTotals(db *gorm.DB, filmID uint64) (*EvaluationTotals, error) {
	var totals EvaluationTotals
	err := db.Model(&models.FilmEvaluation{}).
		Select("COALESCE(SUM(CASE WHEN `like` THEN 1 ELSE 0 END), 0) AS likes, COALESCE(SUM(CASE WHEN dislike THEN 1 ELSE 0 END), 0) AS dislikes").
		Where("filmes_idfilmes = ?", filmID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// GetFilmEvaluation returns one profile's vote on a film.
func GetFilmEvaluation(db *gorm.DB, profileID, filmID uint64) (*models.FilmEvaluation, error) {
	var evaluation models.FilmEvaluation
	err := db.Where("perfil_idperfil = ? AND filmes_idfilmes = ?", profileID, filmID).
		First(&evaluation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func UpdateFilmEvaluation(db *gorm.DB, id, profileID uint64, positive, negative bool) error {
	query := db.Model(&models.FilmEvaluation{}).Where("idavaliacao = ?", id)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Updates(map[string]interface{}{"like": positive, "dislike": negative})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteFilmEvaluation(db *gorm.DB, id, profileID uint64) error {
	query := db.Where("idavaliacao = ?", id)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Delete(&models.FilmEvaluation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateActorEvaluation(db *gorm.DB, profileID, actorID uint64, positive, negative bool) (*models.ActorEvaluation, error) {
	evaluation := models.ActorEvaluation{
		ProfileID: profileID,
		ActorID:   actorID,
		Positive:  positive,
		Negative:  negative,
	}
	if err := db.Create(&evaluation).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func ActorEvaluationTotals(db *gorm.DB, actorID uint64) (*EvaluationTotals, error) {
	var totals EvaluationTotals
	err := db.Model(&models.ActorEvaluation{}).
		Select("COALESCE(SUM(positiva), 0) AS likes, COALESCE(SUM(negativa), 0) AS dislikes").
		Where("atores_idatores = ?", actorID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func UpdateActorEvaluation(db *gorm.DB, id, profileID uint64, positive, negative bool) error {
	query := db.Model(&models.ActorEvaluation{}).Where("idavaliacao = ?", id)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Updates(map[string]interface{}{"positiva": positive, "negativa": negative})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteActorEvaluation(db *gorm.DB, id, profileID uint64) error {
	query := db.Where("idavaliacao = ?", id)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Delete(&models.ActorEvaluation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateFilmSuggestionEvaluation(db *gorm.DB, profileID, suggestionID uint64, positive, negative bool) (*models.FilmSuggestionEvaluation, error) {
	evaluation := models.FilmSuggestionEvaluation{
		ProfileID:    profileID,
		SuggestionID: suggestionID,
		Positive:     positive,
		Negative:     negative,
	}
	if err := db.Create(&evaluation).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func FilmSuggestionEvaluationTotals(db *gorm.DB, suggestionID uint64) (*EvaluationTotals, error) {
	var totals EvaluationTotals
	err := db.Model(&models.FilmSuggestionEvaluation{}).
		Select("COALESCE(SUM(positiva), 0) AS likes, COALESCE(SUM(negativa), 0) AS dislikes").
		Where("sugestoesFilmes_idsugestoesFilmes = ?", suggestionID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func DeleteFilmSuggestionEvaluation(db *gorm.DB, id, profileID uint64) error {
	query := db.Where("idavaliacao = ?", id)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Delete(&models.FilmSuggestionEvaluation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateActorSuggestionEvaluation(db *gorm.DB, profileID, suggestionID uint64, positive, negative bool) (*models.ActorSuggestionEvaluation, error) {
	evaluation := models.ActorSuggestionEvaluation{
		ProfileID:    profileID,
		SuggestionID: suggestionID,
		Positive:     positive,
		Negative:     negative,
	}
	if err := db.Create(&evaluation).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func ActorSuggestionEvaluationTotals(db *gorm.DB, suggestionID uint64) (*EvaluationTotals, error) {
	var totals EvaluationTotals
	err := db.Model(&models.ActorSuggestionEvaluation{}).
		Select("COALESCE(SUM(positiva), 0) AS likes, COALESCE(SUM(negativa), 0) AS dislikes").
		Where("sugestoesAtores_idsugestoesAtores = ?", suggestionID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func DeleteActorSuggestionEvaluation(db *gorm.DB, id, profileID uint64) error {
	query := db.Where("idavaliacao = ?", id)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Delete(&models.ActorSuggestionEvaluation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateCommentEvaluation(db *gorm.DB, voterID, commentID, authorID, filmID uint64, positive, negative bool) (*models.CommentEvaluation, error) {
	evaluation := models.CommentEvaluation{
		ProfileID:       voterID,
		CommentID:       commentID,
		CommentAuthorID: authorID,
		CommentFilmID:   filmID,
		Positive:        positive,
		Negative:        negative,
	}
	if err := db.Create(&evaluation).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func DeleteCommentEvaluation(db *gorm.DB, id, profileID uint64) error {
	query := db.Where("idavaliacao = ?", id)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Delete(&models.CommentEvaluation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
