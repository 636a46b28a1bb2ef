package validation_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cinefilos/cinefilos-api/internal/models"
	"github.com/cinefilos/cinefilos-api/internal/validation"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Profile{},
		&models.Film{},
		&models.Actor{},
		&models.FilmSuggestion{},
		&models.ActorSuggestion{},
		&models.Comment{},
		&models.FilmEvaluation{},
		&models.CommentEvaluation{},
		&models.FavoriteFilm{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func containsMessage(errs validation.Errors, want string) bool {
	for _, e := range errs {
		if e == want {
			return true
		}
	}
	return false
}

func TestProfileCreateFieldShape(t *testing.T) {
	db := setupTestDB(t)

	errs, err := validation.ProfileCreate(db, "", "not-an-email", "123")
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if len(errs) != 3 {
		t.Fatalf("Expected 3 problems, got %d: %v", len(errs), errs)
	}
	if !containsMessage(errs, "O nome é obrigatório e deve ser uma string.") {
		t.Error("Expected the name problem")
	}
	if !containsMessage(errs, "O email é obrigatório e deve ser válido.") {
		t.Error("Expected the email problem")
	}
	if !containsMessage(errs, "A senha é obrigatória e deve ter no mínimo 6 caracteres.") {
		t.Error("Expected the password problem")
	}
}

func TestProfileCreateDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Profile{Name: "Ana", Email: "ana@example.com", Password: "x"})

	errs, err := validation.ProfileCreate(db, "Outra Ana", "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if !containsMessage(errs, "Já existe um Perfil com esse email cadastrado.") {
		t.Errorf("Expected the duplicate email problem, got: %v", errs)
	}
}

func TestProfileUpdateChecksOnlyPresentFields(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Profile{Name: "Ana", Email: "ana@example.com", Password: "x"})
	var target models.Profile
	db.Create(&models.Profile{Name: "Bia", Email: "bia@example.com", Password: "x"})
	db.First(&target, "email = ?", "bia@example.com")

	// A patch without the email key must not trip the email checks
	errs, err := validation.ProfileUpdate(db, target.ID, map[string]interface{}{"nome": "Beatriz"})
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("Expected no problems, got: %v", errs)
	}

	// Changing to a colliding email is refused
	errs, err = validation.ProfileUpdate(db, target.ID, map[string]interface{}{"email": "ana@example.com"})
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if !containsMessage(errs, "Já existe um Perfil com esse email cadastrado.") {
		t.Errorf("Expected the duplicate email problem, got: %v", errs)
	}

	// Keeping the own email is fine
	errs, err = validation.ProfileUpdate(db, target.ID, map[string]interface{}{"email": "bia@example.com"})
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("Expected no problems for the unchanged email, got: %v", errs)
	}
}

func TestEvaluationFlags(t *testing.T) {
	if errs := validation.Flags(true, true); !containsMessage(errs,
		"A avaliação não pode ser positiva e negativa ao mesmo tempo.") {
		t.Errorf("Expected the both-flags problem, got: %v", errs)
	}
	if errs := validation.Flags(false, false); !containsMessage(errs,
		"A avaliação deve ser positiva ou negativa.") {
		t.Errorf("Expected the neither-flag problem, got: %v", errs)
	}
	if errs := validation.Flags(true, false); len(errs) != 0 {
		t.Errorf("Expected no problems, got: %v", errs)
	}
	if errs := validation.Flags(false, true); len(errs) != 0 {
		t.Errorf("Expected no problems, got: %v", errs)
	}
}

func TestFilmEvaluationCreate(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Profile{Name: "Ana", Email: "ana@example.com", Password: "x"})
	film := models.Film{Name: "Filme Um"}
	db.Create(&film)

	// Missing film
	errs, err := validation.FilmEvaluationCreate(db, 1, film.ID+100, true, false)
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if !containsMessage(errs, "Esse filme não existe.") {
		t.Errorf("Expected the missing film problem, got: %v", errs)
	}

	// First vote passes
	errs, err = validation.FilmEvaluationCreate(db, 1, film.ID, true, false)
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("Expected no problems, got: %v", errs)
	}

	// Second vote by the same profile is a duplicate
	db.Create(&models.FilmEvaluation{ProfileID: 1, FilmID: film.ID, Positive: true})
	errs, err = validation.FilmEvaluationCreate(db, 1, film.ID, false, true)
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if !containsMessage(errs, "Você já avaliou esse filme.") {
		t.Errorf("Expected the duplicate vote problem, got: %v", errs)
	}
}

func TestFilmSuggestionCreate(t *testing.T) {
	db := setupTestDB(t)

	errs, err := validation.FilmSuggestionCreate(db, "")
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if !containsMessage(errs, "O nome do filme é obrigatório.") {
		t.Errorf("Expected the missing name problem, got: %v", errs)
	}

	db.Create(&models.FilmSuggestion{ProfileID: 1, Name: "Já Sugerido"})
	errs, err = validation.FilmSuggestionCreate(db, "Já Sugerido")
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if !containsMessage(errs, "Já existe uma sugestão com esse nome cadastrada.") {
		t.Errorf("Expected the duplicate suggestion problem, got: %v", errs)
	}

	db.Create(&models.Film{Name: "Já No Catálogo"})
	errs, err = validation.FilmSuggestionCreate(db, "Já No Catálogo")
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if !containsMessage(errs, "Já existe um filme com esse nome cadastrado.") {
		t.Errorf("Expected the catalog collision problem, got: %v", errs)
	}
}

func TestFavoriteFilmRelation(t *testing.T) {
	db := setupTestDB(t)
	profile := models.Profile{Name: "Ana", Email: "ana@example.com", Password: "x"}
	db.Create(&profile)
	film := models.Film{Name: "Filme Um"}
	db.Create(&film)

	// Missing ids
	ce, err := validation.FavoriteFilm(db, 0, film.ID)
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if ce == nil || ce.Status != 400 {
		t.Errorf("Expected a 400 for missing ids, got: %v", ce)
	}

	// Unknown film
	ce, err = validation.FavoriteFilm(db, profile.ID, film.ID+100)
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if ce == nil || ce.Status != 404 {
		t.Errorf("Expected a 404 for an unknown film, got: %v", ce)
	}

	// First favorite passes
	ce, err = validation.FavoriteFilm(db, profile.ID, film.ID)
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if ce != nil {
		t.Errorf("Expected no problem, got: %v", ce)
	}

	// Existing pair is a conflict
	db.Create(&models.FavoriteFilm{ProfileID: profile.ID, FilmID: film.ID})
	ce, err = validation.FavoriteFilm(db, profile.ID, film.ID)
	if err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if ce == nil || ce.Status != 409 {
		t.Errorf("Expected a 409 for an existing favorite, got: %v", ce)
	}
}
