package services

import (
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
)

// Favorites always belong to the calling profile; the relation validators
// run first, so inserts here see clean input.

func AddFavoriteFilm(db *gorm.DB, profileID, filmID uint64) error {
	return db.Create(&models.FavoriteFilm{ProfileID: profileID, FilmID: filmID}).Error
}

func RemoveFavoriteFilm(db *gorm.DB, profileID, filmID uint64) error {
	return deletePair(db, &models.FavoriteFilm{},
		"perfil_idperfil = ? AND filmes_idfilmes = ?", profileID, filmID)
}

// ListFavoriteFilms returns the films one profile favorited.
func ListFavoriteFilms(db *gorm.DB, profileID uint64) ([]models.Film, error) {
	var films []models.Film
	err := db.Model(&models.Film{}).
		Joins("INNER JOIN favoritosFilmes ff ON ff.filmes_idfilmes = filmes.idfilmes").
		Where("ff.perfil_idperfil = ?", profileID).
		Order("filmes.idfilmes").
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return films, nil
}

func AddFavoriteActor(db *gorm.DB, profileID, actorID uint64) error {
	return db.Create(&models.FavoriteActor{ProfileID: profileID, ActorID: actorID}).Error
}

func RemoveFavoriteActor(db *gorm.DB, profileID, actorID uint64) error {
	return deletePair(db, &models.FavoriteActor{},
		"perfil_idperfil = ? AND atores_idatores = ?", profileID, actorID)
}

// ListFavoriteActors returns the actors one profile favorited.
func ListFavoriteActors(db *gorm.DB, profileID uint64) ([]models.Actor, error) {
	var actors []models.Actor
	err := db.Model(&models.Actor{}).
		Joins("INNER JOIN favoritosAtores fa ON fa.atores_idatores = atores.idatores").
		Where("fa.perfil_idperfil = ?", profileID).
		Order("atores.idatores").
		Find(&actors).Error
	if err != nil {
		return nil, err
	}
	return actors, nil
}
