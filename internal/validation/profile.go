package validation

import (
	"errors"
	"net/mail"

	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/models"
)

// ProfileCreate checks a new profile the way the legacy validator did:
// field shape first, then email uniqueness against the database.
func ProfileCreate(db *gorm.DB, name, email, password string) (Errors, error) {
	var errs Errors

	if name == "" {
		errs = append(errs, "O nome é obrigatório e deve ser uma string.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, "O email é obrigatório e deve ser válido.")
	}
	if len(password) < 6 {
		errs = append(errs, "A senha é obrigatória e deve ter no mínimo 6 caracteres.")
	}
	if len(errs) > 0 {
		return errs, nil
	}

	taken, err := emailTaken(db, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		errs = append(errs, "Já existe um Perfil com esse email cadastrado.")
	}
	return errs, nil
}

// ProfileUpdate validates a partial update. Only the fields present in the
// patch are checked; an email change must not collide with another profile.
func ProfileUpdate(db *gorm.DB, profileID uint64, patch map[string]interface{}) (Errors, error) {
	var errs Errors

	if v, ok := patch["nome"]; ok {
		name, isString := v.(string)
		if !isString || name == "" {
			errs = append(errs, "O nome é obrigatório e deve ser uma string.")
		}
	}
	if v, ok := patch["email"]; ok {
		email, isString := v.(string)
		if !isString {
			errs = append(errs, "O email é obrigatório e deve ser válido.")
		} else if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, "O email é obrigatório e deve ser válido.")
		} else {
			taken, err := emailTaken(db, email, profileID)
			if err != nil {
				return nil, err
			}
			if taken {
				errs = append(errs, "Já existe um Perfil com esse email cadastrado.")
			}
		}
	}
	if v, ok := patch["senha"]; ok {
		password, isString := v.(string)
		if !isString || len(password) < 6 {
			errs = append(errs, "A senha é obrigatória e deve ter no mínimo 6 caracteres.")
		}
	}
	return errs, nil
}

func emailTaken(db *gorm.DB, email string, excludeID uint64) (bool, error) {
	query := db.Model(&models.Profile{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("idperfil <> ?", excludeID)
	}
	var existing models.Profile
	err := query.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
