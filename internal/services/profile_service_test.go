package services_test

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cinefilos/cinefilos-api/internal/auth"
	"github.com/cinefilos/cinefilos-api/internal/models"
	"github.com/cinefilos/cinefilos-api/internal/services"
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
		&models.Director{},
		&models.Producer{},
		&models.Genre{},
		&models.FilmActor{},
		&models.FilmDirector{},
		&models.FilmProducer{},
		&models.FilmGenre{},
		&models.FilmSuggestion{},
		&models.ActorSuggestion{},
		&models.Comment{},
		&models.FilmEvaluation{},
		&models.ActorEvaluation{},
		&models.FilmSuggestionEvaluation{},
		&models.ActorSuggestionEvaluation{},
		&models.CommentEvaluation{},
		&models.FavoriteFilm{},
		&models.FavoriteActor{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, cond string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Where(cond, args...).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

func TestCreateProfileHashesPasswordAndNeverGrantsAdmin(t *testing.T) {
	db := setupTestDB(t)

	profile, err := services.CreateProfile(db, "Ana", "ana@example.com", "secret1", "oi")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	if profile.ID == 0 {
		t.Error("Expected an assigned id")
	}
	if profile.Admin {
		t.Error("A new profile must never be an admin")
	}
	if profile.Password == "secret1" {
		t.Error("The password must be stored hashed")
	}
	if !auth.CheckPassword(profile.Password, "secret1") {
		t.Error("The stored hash must match the plaintext")
	}
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	if _, err := services.CreateProfile(db, "Ana", "ana@example.com", "secret1", ""); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	profile, err := services.Authenticate(db, "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("Expected authentication to succeed: %v", err)
	}
	if profile.Email != "ana@example.com" {
		t.Errorf("Expected the authenticated profile, got %q", profile.Email)
	}

	if _, err := services.Authenticate(db, "ana@example.com", "wrong"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for a wrong password, got: %v", err)
	}
	if _, err := services.Authenticate(db, "ghost@example.com", "secret1"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for an unknown email, got: %v", err)
	}
}

func TestUpdateProfileStripsProtectedFieldsAndRehashes(t *testing.T) {
	db := setupTestDB(t)
	profile, err := services.CreateProfile(db, "Ana", "ana@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	err = services.UpdateProfile(db, profile.ID, map[string]interface{}{
		"nome":     "Ana Maria",
		"senha":    "newpass1",
		"adm":      true,
		"idperfil": uint64(999),
	})
	if err != nil {
		t.Fatalf("Failed to update profile: %v", err)
	}

	reloaded, err := services.GetProfile(db, profile.ID)
	if err != nil {
		t.Fatalf("Failed to reload profile: %v", err)
	}
	if reloaded.Name != "Ana Maria" {
		t.Errorf("Expected updated name, got %q", reloaded.Name)
	}
	if reloaded.Admin {
		t.Error("A self update must not grant admin")
	}
	if !auth.CheckPassword(reloaded.Password, "newpass1") {
		t.Error("Expected the new password to be hashed and stored")
	}
}

func TestUpdateProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	err := services.UpdateProfile(db, 12345, map[string]interface{}{"nome": "Ninguém"})
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestDeleteProfileCascades(t *testing.T) {
	db := setupTestDB(t)

	leaving, err := services.CreateProfile(db, "Saindo", "saindo@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create leaving profile: %v", err)
	}
	staying, err := services.CreateProfile(db, "Ficando", "ficando@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create staying profile: %v", err)
	}

	film := models.Film{Name: "Filme Um"}
	db.Create(&film)
	actor := models.Actor{Name: "Ator Um", Alive: true}
	db.Create(&actor)

	// Everything the leaving profile owns
	leavingComment, err := services.CreateComment(db, leaving.ID, film.ID, "Tchau.")
	if err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}
	suggestion, err := services.CreateFilmSuggestion(db, leaving.ID, "Sugestão Um", "")
	if err != nil {
		t.Fatalf("Failed to create film suggestion: %v", err)
	}
	actorSuggestion, err := services.CreateActorSuggestion(db, leaving.ID, "Ator Sugerido")
	if err != nil {
		t.Fatalf("Failed to create actor suggestion: %v", err)
	}
	if _, err := services.CreateFilmEvaluation(db, leaving.ID, film.ID, true, false); err != nil {
		t.Fatalf("Failed to create film evaluation: %v", err)
	}
	if _, err := services.CreateActorEvaluation(db, leaving.ID, actor.ID, false, true); err != nil {
		t.Fatalf("Failed to create actor evaluation: %v", err)
	}
	if err := services.AddFavoriteFilm(db, leaving.ID, film.ID); err != nil {
		t.Fatalf("Failed to favorite film: %v", err)
	}
	if err := services.AddFavoriteActor(db, leaving.ID, actor.ID); err != nil {
		t.Fatalf("Failed to favorite actor: %v", err)
	}

	// Content of the staying profile, some of it pointing at the leaver's
	stayingComment, err := services.CreateComment(db, staying.ID, film.ID, "Eu fico.")
	if err != nil {
		t.Fatalf("Failed to create staying comment: %v", err)
	}
	if _, err := services.CreateCommentEvaluation(db, staying.ID, leavingComment.ID, leaving.ID, film.ID, true, false); err != nil {
		t.Fatalf("Failed to vote on the leaving comment: %v", err)
	}
	if _, err := services.CreateCommentEvaluation(db, leaving.ID, stayingComment.ID, staying.ID, film.ID, true, false); err != nil {
		t.Fatalf("Failed to vote on the staying comment: %v", err)
	}
	if _, err := services.CreateFilmSuggestionEvaluation(db, staying.ID, suggestion.ID, true, false); err != nil {
		t.Fatalf("Failed to vote on the film suggestion: %v", err)
	}
	if _, err := services.CreateActorSuggestionEvaluation(db, staying.ID, actorSuggestion.ID, true, false); err != nil {
		t.Fatalf("Failed to vote on the actor suggestion: %v", err)
	}
	if _, err := services.CreateFilmEvaluation(db, staying.ID, film.ID, true, false); err != nil {
		t.Fatalf("Failed to create the staying film evaluation: %v", err)
	}

	rows, err := services.DeleteProfile(db, leaving.ID)
	if err != nil {
		t.Fatalf("Failed to delete profile: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected 1 deleted profile row, got %d", rows)
	}

	// Every dependent row of the leaving profile is gone
	if n := countRows(t, db, &models.Profile{}, "idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected the profile to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.Comment{}, "perfil_idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected the comments to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.FilmSuggestion{}, "perfil_idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected the film suggestions to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.ActorSuggestion{}, "perfil_idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected the actor suggestions to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.FilmEvaluation{}, "perfil_idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected the film evaluations to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.ActorEvaluation{}, "perfil_idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected the actor evaluations to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.FavoriteFilm{}, "perfil_idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected the favorite films to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.FavoriteActor{}, "perfil_idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected the favorite actors to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.CommentEvaluation{}, "perfil_idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected the leaver's comment votes to be gone, found %d", n)
	}

	// Other users' votes on the leaver's content are swept too
	if n := countRows(t, db, &models.CommentEvaluation{}, "comentarios_perfil_idperfil = ?", leaving.ID); n != 0 {
		t.Errorf("Expected votes on the leaver's comments to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.FilmSuggestionEvaluation{}, "sugestoesFilmes_idsugestoesFilmes = ?", suggestion.ID); n != 0 {
		t.Errorf("Expected votes on the leaver's film suggestion to be gone, found %d", n)
	}
	if n := countRows(t, db, &models.ActorSuggestionEvaluation{}, "sugestoesAtores_idsugestoesAtores = ?", actorSuggestion.ID); n != 0 {
		t.Errorf("Expected votes on the leaver's actor suggestion to be gone, found %d", n)
	}

	// The staying profile keeps its own rows
	if n := countRows(t, db, &models.Comment{}, "perfil_idperfil = ?", staying.ID); n != 1 {
		t.Errorf("Expected the staying comment to survive, found %d", n)
	}
	if n := countRows(t, db, &models.FilmEvaluation{}, "perfil_idperfil = ?", staying.ID); n != 1 {
		t.Errorf("Expected the staying film evaluation to survive, found %d", n)
	}
}

func TestDeleteProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	if _, err := services.DeleteProfile(db, 999); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestDeleteProfileAtomicity(t *testing.T) {
	db := setupTestDB(t)
	profile, err := services.CreateProfile(db, "Ana", "ana@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	film := models.Film{Name: "Filme Um"}
	db.Create(&film)
	if _, err := services.CreateComment(db, profile.ID, film.ID, "Olá."); err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}

	// Breaking the comments table mid-transaction must roll everything back
	if err := db.Migrator().DropTable("comentarios"); err != nil {
		t.Fatalf("Failed to drop table: %v", err)
	}
	if _, err := services.DeleteProfile(db, profile.ID); err == nil {
		t.Fatal("Expected the delete to fail with a missing table")
	}

	if n := countRows(t, db, &models.Profile{}, "idperfil = ?", profile.ID); n != 1 {
		t.Errorf("Expected the profile to survive the rollback, found %d", n)
	}
}

func TestPromoteToAdmin(t *testing.T) {
	db := setupTestDB(t)
	profile, err := services.CreateProfile(db, "Ana", "ana@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	if err := services.PromoteToAdmin(db, profile.ID); err != nil {
		t.Fatalf("Failed to promote: %v", err)
	}
	reloaded, _ := services.GetProfile(db, profile.ID)
	if !reloaded.Admin {
		t.Error("Expected the profile to be an admin after promotion")
	}

	if err := services.PromoteToAdmin(db, 999); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for an unknown profile, got: %v", err)
	}
}
