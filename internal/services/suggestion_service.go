package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
)

// Suggestions are owner-scoped content. The non-admin mutations put the
// caller's profile id in the WHERE clause alongside the row id, so acting on
// someone else's suggestion touches zero rows and reads as not found. Admin
// variants drop the ownership condition.

func CreateFilmSuggestion(db *gorm.DB, profileID uint64, name, synopsis string) (*models.FilmSuggestion, error) {
	suggestion := models.FilmSuggestion{
		ProfileID: profileID,
		Name:      name,
		Synopsis:  synopsis,
	}
	if err := db.Create(&suggestion).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func ListFilmSuggestions(db *gorm.DB) ([]models.FilmSuggestion, error) {
	var suggestions []models.FilmSuggestion
	if err := db.Order("idsugestoesFilmes").Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

func ListFilmSuggestionsByProfile(db *gorm.DB, profileID uint64) ([]models.FilmSuggestion, error) {
	var suggestions []models.FilmSuggestion
	err := db.Where("perfil_idperfil = ?", profileID).
		Order("idsugestoesFilmes").Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func GetFilmSuggestion(db *gorm.DB, id uint64) (*models.FilmSuggestion, error) {
	var suggestion models.FilmSuggestion
	err := db.Where("idsugestoesFilmes = ?", id).First(&suggestion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// UpdateFilmSuggestion applies an owner-scoped patch. profileID zero means an
// admin caller and skips the ownership condition.
func UpdateFilmSuggestion(db *gorm.DB, id, profileID uint64, patch map[string]interface{}) error {
	delete(patch, "idsugestoesFilmes")
	delete(patch, "perfil_idperfil")
	if len(patch) == 0 {
		return nil
	}

	query := db.Model(&models.FilmSuggestion{}).Where("idsugestoesFilmes = ?", id)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Updates(patch)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFilmSuggestion removes a suggestion and its votes in one transaction.
// profileID zero means an admin caller and skips the ownership condition.
func DeleteFilmSuggestion(db *gorm.DB, id, profileID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("idsugestoesFilmes = ?", id)
		if profileID != 0 {
			query = query.Where("perfil_idperfil = ?", profileID)
		}
		result := query.Delete(&models.FilmSuggestion{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Exec(`DELETE FROM avaliacaoSugsFilmes WHERE sugestoesFilmes_idsugestoesFilmes = ?`, id).Error
	})
}

func CreateActorSuggestion(db *gorm.DB, profileID uint64, name string) (*models.ActorSuggestion, error) {
	suggestion := models.ActorSuggestion{
		ProfileID: profileID,
		Name:      name,
	}
	if err := db.Create(&suggestion).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func ListActorSuggestions(db *gorm.DB) ([]models.ActorSuggestion, error) {
	var suggestions []models.ActorSuggestion
	if err := db.Order("idsugestoesAtores").Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

func ListActorSuggestionsByProfile(db *gorm.DB, profileID uint64) ([]models.ActorSuggestion, error) {
	var suggestions []models.ActorSuggestion
	err := db.Where("perfil_idperfil = ?", profileID).
		Order("idsugestoesAtores").Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func GetActorSuggestion(db *gorm.DB, id uint64) (*models.ActorSuggestion, error) {
	var suggestion models.ActorSuggestion
	err := db.Where("idsugestoesAtores = ?", id).First(&suggestion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func UpdateActorSuggestion(db *gorm.DB, id, profileID uint64, patch map[string]interface{}) error {
	delete(patch, "idsugestoesAtores")
	delete(patch, "perfil_idperfil")
	if len(patch) == 0 {
		return nil
	}

	query := db.Model(&models.ActorSuggestion{}).Where("idsugestoesAtores = ?", id)
	if profileID != 0 {
		query = query.Where("perfil_idperfil = ?", profileID)
	}
	result := query.Updates(patch)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteActorSuggestion(db *gorm.DB, id, profileID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("idsugestoesAtores = ?", id)
		if profileID != 0 {
			query = query.Where("perfil_idperfil = ?", profileID)
		}
		result := query.Delete(&models.ActorSuggestion{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Exec(`DELETE FROM avaliacaoSugsAtores WHERE sugestoesAtores_idsugestoesAtores = ?`, id).Error
	})
}
