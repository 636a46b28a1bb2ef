package services

import (
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
)

// Catalog link management. Creation is pre-validated by the relation
// validators, so a storage conflict here is a genuine race and surfaces as a
// plain error.

func LinkFilmActor(db *gorm.DB, filmID, actorID uint64) error {
	return db.Create(&models.FilmActor{FilmID: filmID, ActorID: actorID}).Error
}

func UnlinkFilmActor(db *gorm.DB, filmID, actorID uint64) error {
	return deletePair(db, &models.FilmActor{},
		"filmes_idfilmes = ? AND atores_idatores = ?", filmID, actorID)
}

// ListFilmActors returns the cast of one film.
func ListFilmActors(db *gorm.DB, filmID uint64) ([]models.Actor, error) {
	var actors []models.Actor
	err := db.Model(&models.Actor{}).
		Joins("INNER JOIN atoresFilmes af ON af.atores_idatores = atores.idatores").
		Where("af.filmes_idfilmes = ?", filmID).
		Order("atores.idatores").
		Find(&actors).Error
	if err != nil {
		return nil, err
	}
	return actors, nil
}

// ListActorFilms returns the filmography of one actor.
func ListActorFilms(db *gorm.DB, actorID uint64) ([]models.Film, error) {
	var films []models.Film
	err := db.Model(&models.Film{}).
		Joins("INNER JOIN atoresFilmes af ON af.filmes_idfilmes = filmes.idfilmes").
		Where("af.atores_idatores = ?", actorID).
		Order("filmes.idfilmes").
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return films, nil
}

func LinkFilmDirector(db *gorm.DB, filmID, directorID uint64) error {
	return db.Create(&models.FilmDirector{FilmID: filmID, DirectorID: directorID}).Error
}

func UnlinkFilmDirector(db *gorm.DB, filmID, directorID uint64) error {
	return deletePair(db, &models.FilmDirector{},
		"filmes_idfilmes = ? AND diretor_iddiretor = ?", filmID, directorID)
}

// ListFilmDirectors returns the directors of one film.
func ListFilmDirectors(db *gorm.DB, filmID uint64) ([]models.Director, error) {
	var directors []models.Director
	err := db.Model(&models.Director{}).
		Joins("INNER JOIN diretorFilmes df ON df.diretor_iddiretor = diretor.iddiretor").
		Where("df.filmes_idfilmes = ?", filmID).
		Order("diretor.iddiretor").
		Find(&directors).Error
	if err != nil {
		return nil, err
	}
	return directors, nil
}

func LinkFilmProducer(db *gorm.DB, filmID, producerID uint64) error {
	return db.Create(&models.FilmProducer{FilmID: filmID, ProducerID: producerID}).Error
}

func UnlinkFilmProducer(db *gorm.DB, filmID, producerID uint64) error {
	return deletePair(db, &models.FilmProducer{},
		"filmes_idfilmes = ? AND produtor_idprodutor = ?", filmID, producerID)
}

// ListFilmProducers returns the producers of one film.
func ListFilmProducers(db *gorm.DB, filmID uint64) ([]models.Producer, error) {
	var producers []models.Producer
	err := db.Model(&models.Producer{}).
		Joins("INNER JOIN produtorFilmes pf ON pf.produtor_idprodutor = produtor.idprodutor").
		Where("pf.filmes_idfilmes = ?", filmID).
		Order("produtor.idprodutor").
		Find(&producers).Error
	if err != nil {
		return nil, err
	}
	return producers, nil
}

func LinkFilmGenre(db *gorm.DB, filmID, genreID uint64) error {
	return db.Create(&models.FilmGenre{FilmID: filmID, GenreID: genreID}).Error
}

func UnlinkFilmGenre(db *gorm.DB, filmID, genreID uint64) error {
	return deletePair(db, &models.FilmGenre{},
		"filmes_idfilmes = ? AND generos_idgeneros = ?", filmID, genreID)
}

// ListFilmGenres returns the genres of one film.
func ListFilmGenres(db *gorm.DB, filmID uint64) ([]models.Genre, error) {
	var genres []models.Genre
	err := db.Model(&models.Genre{}).
		Joins("INNER JOIN generosFilmes gf ON gf.generos_idgeneros = generos.idgeneros").
		Where("gf.filmes_idfilmes = ?", filmID).
		Order("generos.idgeneros").
		Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

func deletePair(db *gorm.DB, model interface{}, cond string, args ...interface{}) error {
	result := db.Where(cond, args...).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
