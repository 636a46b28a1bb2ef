package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
)

// Catalog reads are public; every mutation below sits behind the admin
// middleware, so no function here re-checks the caller.

func CreateFilm(db *gorm.DB, film *models.Film) error {
	return db.Create(film).Error
}

func ListFilms(db *gorm.DB) ([]models.Film, error) {
	var films []models.Film
	if err := db.Order("idfilmes").Find(&films).Error; err != nil {
		return nil, err
	}
	return films, nil
}

func GetFilm(db *gorm.DB, id uint64) (*models.Film, error) {
	var film models.Film
	err := db.Where("idfilmes = ?", id).First(&film).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &film, nil
}

// SearchFilmsByName matches on a case-insensitive substring of the title.
func SearchFilmsByName(db *gorm.DB, name string) ([]models.Film, error) {
	var films []models.Film
	if err := db.Where("nomeFilme LIKE ?", "%"+name+"%").Order("idfilmes").Find(&films).Error; err != nil {
		return nil, err
	}
	return films, nil
}

func UpdateFilm(db *gorm.DB, id uint64, patch map[string]interface{}) error {
	return applyPatch(db, &models.Film{}, "idfilmes = ?", id, patch)
}

func UpdateFilmPhoto(db *gorm.DB, id uint64, photo []byte) error {
	return applyPatch(db, &models.Film{}, "idfilmes = ?", id, map[string]interface{}{"fotoFilme": photo})
}

func GetFilmPhoto(db *gorm.DB, id uint64) ([]byte, error) {
	film, err := GetFilm(db, id)
	if err != nil {
		return nil, err
	}
	return film.Photo, nil
}

// DeleteFilm removes a film and everything that references it, in one
// transaction. Dependents go first: votes on the film's comments, the
// comments themselves, film evaluations, favorites, the crew and genre
// links, then the film row. A zero row count on the final delete means the
// film did not exist and nothing was touched.
func DeleteFilm(db *gorm.DB, id uint64) error {
	var affectedRows int64

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM avaliacaoComentarios WHERE comentarios_filmes_idfilmes = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM comentarios WHERE filmes_idfilmes = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM avaliacaoFilmes WHERE filmes_idfilmes = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM favoritosFilmes WHERE filmes_idfilmes = ?`, id).Error; err != nil {
			return err
		}
		for _, join := range []string{"atoresFilmes", "diretorFilmes", "produtorFilmes", "generosFilmes"} {
			if err := tx.Exec(`DELETE FROM `+join+` WHERE filmes_idfilmes = ?`, id).Error; err != nil {
				return err
			}
		}

		result := tx.Exec(`DELETE FROM filmes WHERE idfilmes = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		affectedRows = result.RowsAffected

		return nil
	})
	if err != nil {
		return err
	}
	if affectedRows == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateActor(db *gorm.DB, actor *models.Actor) error {
	return db.Create(actor).Error
}

func ListActors(db *gorm.DB) ([]models.Actor, error) {
	var actors []models.Actor
	if err := db.Order("idatores").Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

func GetActor(db *gorm.DB, id uint64) (*models.Actor, error) {
	var actor models.Actor
	err := db.Where("idatores = ?", id).First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

func SearchActorsByName(db *gorm.DB, name string) ([]models.Actor, error) {
	var actors []models.Actor
	if err := db.Where("nome LIKE ?", "%"+name+"%").Order("idatores").Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

func UpdateActor(db *gorm.DB, id uint64, patch map[string]interface{}) error {
	return applyPatch(db, &models.Actor{}, "idatores = ?", id, patch)
}

func UpdateActorPhoto(db *gorm.DB, id uint64, photo []byte) error {
	return applyPatch(db, &models.Actor{}, "idatores = ?", id, map[string]interface{}{"fotoAtor": photo})
}

func GetActorPhoto(db *gorm.DB, id uint64) ([]byte, error) {
	actor, err := GetActor(db, id)
	if err != nil {
		return nil, err
	}
	return actor.Photo, nil
}

// DeleteActor mirrors DeleteFilm for the actor side. Actors carry no
// comments, so the sweep is evaluations, favorites and film links.
func DeleteActor(db *gorm.DB, id uint64) error {
	var affectedRows int64

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM avaliacaoAtores WHERE atores_idatores = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM favoritosAtores WHERE atores_idatores = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM atoresFilmes WHERE atores_idatores = ?`, id).Error; err != nil {
			return err
		}

		result := tx.Exec(`DELETE FROM atores WHERE idatores = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		affectedRows = result.RowsAffected

		return nil
	})
	if err != nil {
		return err
	}
	if affectedRows == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateDirector(db *gorm.DB, director *models.Director) error {
	return db.Create(director).Error
}

func ListDirectors(db *gorm.DB) ([]models.Director, error) {
	var directors []models.Director
	if err := db.Order("iddiretor").Find(&directors).Error; err != nil {
		return nil, err
	}
	return directors, nil
}

func GetDirector(db *gorm.DB, id uint64) (*models.Director, error) {
	var director models.Director
	err := db.Where("iddiretor = ?", id).First(&director).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &director, nil
}

func UpdateDirector(db *gorm.DB, id uint64, patch map[string]interface{}) error {
	return applyPatch(db, &models.Director{}, "iddiretor = ?", id, patch)
}

func DeleteDirector(db *gorm.DB, id uint64) error {
	return deleteByID(db, &models.Director{}, "iddiretor = ?", id)
}

func CreateProducer(db *gorm.DB, producer *models.Producer) error {
	return db.Create(producer).Error
}

func ListProducers(db *gorm.DB) ([]models.Producer, error) {
	var producers []models.Producer
	if err := db.Order("idprodutor").Find(&producers).Error; err != nil {
		return nil, err
	}
	return producers, nil
}

func GetProducer(db *gorm.DB, id uint64) (*models.Producer, error) {
	var producer models.Producer
	err := db.Where("idprodutor = ?", id).First(&producer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &producer, nil
}

func UpdateProducer(db *gorm.DB, id uint64, patch map[string]interface{}) error {
	return applyPatch(db, &models.Producer{}, "idprodutor = ?", id, patch)
}

func DeleteProducer(db *gorm.DB, id uint64) error {
	return deleteByID(db, &models.Producer{}, "idprodutor = ?", id)
}

func CreateGenre(db *gorm.DB, genre *models.Genre) error {
	return db.Create(genre).Error
}

func ListGenres(db *gorm.DB) ([]models.Genre, error) {
	var genres []models.Genre
	if err := db.Order("idgeneros").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func GetGenre(db *gorm.DB, id uint64) (*models.Genre, error) {
	var genre models.Genre
	err := db.Where("idgeneros = ?", id).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func UpdateGenre(db *gorm.DB, id uint64, patch map[string]interface{}) error {
	return applyPatch(db, &models.Genre{}, "idgeneros = ?", id, patch)
}

func DeleteGenre(db *gorm.DB, id uint64) error {
	return deleteByID(db, &models.Genre{}, "idgeneros = ?", id)
}

func applyPatch(db *gorm.DB, model interface{}, cond string, id uint64, patch map[string]interface{}) error {
	if len(patch) == 0 {
		return nil
	}
	result := db.Model(model).Where(cond, id).Updates(patch)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(db *gorm.DB, model interface{}, cond string, id uint64) error {
	result := db.Where(cond, id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
