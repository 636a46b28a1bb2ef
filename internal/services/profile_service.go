package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/auth"
	"github.com/cinefilos/cinefilos-api/internal/models"
)

// ErrInvalidCredentials is returned by Authenticate for an unknown email or
// a wrong password. Handlers answer 401 without saying which one it was.
var ErrInvalidCredentials = errors.New("email ou senha inválidos")

// CreateProfile registers a new account. The password is stored as a bcrypt
// hash; new profiles are never admins.
func CreateProfile(db *gorm.DB, name, email, password, biography string) (*models.Profile, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	profile := models.Profile{
		Name:      name,
		Email:     email,
		Password:  hash,
		Biography: biography,
	}
	if err := db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Authenticate resolves login credentials to a profile.
func Authenticate(db *gorm.DB, email, password string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("email = ?", email).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(profile.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &profile, nil
}

// GetProfile fetches one profile by id.
func GetProfile(db *gorm.DB, id uint64) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("idperfil = ?", id).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindProfileByEmail fetches one profile by its unique email.
func FindProfileByEmail(db *gorm.DB, email string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("email = ?", email).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListProfiles returns every account. Admin route only.
func ListProfiles(db *gorm.DB) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := db.Order("idperfil").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateProfile applies a partial update with the legacy column names as map
// keys. The admin flag cannot be set here; senha arrives already validated
// and is hashed before storage.
func UpdateProfile(db *gorm.DB, id uint64, patch map[string]interface{}) error {
	delete(patch, "adm")
	delete(patch, "idperfil")

	if raw, ok := patch["senha"]; ok {
		password, _ := raw.(string)
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		patch["senha"] = hash
	}

	if len(patch) == 0 {
		return nil
	}

	result := db.Model(&models.Profile{}).Where("idperfil = ?", id).Updates(patch)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PromoteToAdmin grants the admin flag. Admin route only.
func PromoteToAdmin(db *gorm.DB, id uint64) error {
	result := db.Model(&models.Profile{}).Where("idperfil = ?", id).Update("adm", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfilePhoto replaces the stored avatar bytes.
func UpdateProfilePhoto(db *gorm.DB, id uint64, photo []byte) error {
	result := db.Model(&models.Profile{}).Where("idperfil = ?", id).Update("fotoPerfil", photo)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProfilePhoto returns the stored avatar bytes.
func GetProfilePhoto(db *gorm.DB, id uint64) ([]byte, error) {
	profile, err := GetProfile(db, id)
	if err != nil {
		return nil, err
	}
	return profile.Photo, nil
}

// DeleteProfile removes an account and everything that references it, in one
// transaction. Dependents go first so no statement ever hits a row that still
// points at the profile: evaluations, favorites, suggestions, comments, then
// the profile row itself. Evaluation sweeps also cover votes other profiles
// cast on this profile's comments and suggestions, since those targets are
// about to disappear. Returns the rows affected by the final profile delete;
// zero means the account did not exist and nothing was touched.
func DeleteProfile(db *gorm.DB, id uint64) (int64, error) {
	var affectedRows int64

	err := db.Transaction(func(tx *gorm.DB) error {
		// Comment votes: cast by the profile, or on the profile's comments.
		// The comment target is its full composite key, so the subquery
		// matches on the row-value triple.
		if err := tx.Exec(`DELETE FROM avaliacaoComentarios
			WHERE perfil_idperfil = ?
			   OR (comentarios_idcomentarios, comentarios_perfil_idperfil, comentarios_filmes_idfilmes) IN
			      (SELECT idcomentarios, perfil_idperfil, filmes_idfilmes FROM comentarios WHERE perfil_idperfil = ?)`,
			id, id).Error; err != nil {
			return err
		}

		// Suggestion votes: cast by the profile, or on the profile's suggestions.
		if err := tx.Exec(`DELETE FROM avaliacaoSugsFilmes
			WHERE perfil_idperfil = ?
			   OR sugestoesFilmes_idsugestoesFilmes IN
			      (SELECT idsugestoesFilmes FROM sugestoesFilmes WHERE perfil_idperfil = ?)`,
			id, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM avaliacaoSugsAtores
			WHERE perfil_idperfil = ?
			   OR sugestoesAtores_idsugestoesAtores IN
			      (SELECT idsugestoesAtores FROM sugestoesAtores WHERE perfil_idperfil = ?)`,
			id, id).Error; err != nil {
			return err
		}

		// Catalog votes and favorites only reference the profile directly.
		if err := tx.Exec(`DELETE FROM avaliacaoFilmes WHERE perfil_idperfil = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM avaliacaoAtores WHERE perfil_idperfil = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM favoritosFilmes WHERE perfil_idperfil = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM favoritosAtores WHERE perfil_idperfil = ?`, id).Error; err != nil {
			return err
		}

		// Now the rows the earlier sweeps depended on.
		if err := tx.Exec(`DELETE FROM sugestoesFilmes WHERE perfil_idperfil = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM sugestoesAtores WHERE perfil_idperfil = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM comentarios WHERE perfil_idperfil = ?`, id).Error; err != nil {
			return err
		}

		result := tx.Exec(`DELETE FROM perfil WHERE idperfil = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		affectedRows = result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, err
	}
	if affectedRows == 0 {
		return 0, ErrNotFound
	}
	return affectedRows, nil
}
