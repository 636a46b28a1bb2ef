package services_test

import (
	"errors"
	"testing"

	"github.com/cinefilos/cinefilos-api/internal/models"
	"github.com/cinefilos/cinefilos-api/internal/services"
)

func TestFilmEvaluationTotals(t *testing.T) {
	db := setupTestDB(t)
	film := models.Film{Name: "Filme Um"}
	db.Create(&film)

	if _, err := services.CreateFilmEvaluation(db, 1, film.ID, true, false); err != nil {
		t.Fatalf("Failed to create evaluation: %v", err)
	}
	if _, err := services.CreateFilmEvaluation(db, 2, film.ID, true, false); err != nil {
		t.Fatalf("Failed to create evaluation: %v", err)
	}
	if _, err := services.CreateFilmEvaluation(db, 3, film.ID, false, true); err != nil {
		t.Fatalf("Failed to create evaluation: %v", err)
	}

	totals, err := services.FilmEvaluationTotals(db, film.ID)
	if err != nil {
		t.Fatalf("Failed to compute totals: %v", err)
	}
	if totals.Likes != 2 {
		t.Errorf("Expected 2 likes, got %d", totals.Likes)
	}
	if totals.Dislikes != 1 {
		t.Errorf("Expected 1 dislike, got %d", totals.Dislikes)
	}

	// A film with no votes totals to zero, not to an error
	other := models.Film{Name: "Filme Dois"}
	db.Create(&other)
	totals, err = services.FilmEvaluationTotals(db, other.ID)
	if err != nil {
		t.Fatalf("Failed to compute empty totals: %v", err)
	}
	if totals.Likes != 0 || totals.Dislikes != 0 {
		t.Errorf("Expected zero totals, got %d/%d", totals.Likes, totals.Dislikes)
	}
}

func TestGetFilmEvaluationOwnVote(t *testing.T) {
	db := setupTestDB(t)
	film := models.Film{Name: "Filme Um"}
	db.Create(&film)

	created, err := services.CreateFilmEvaluation(db, 7, film.ID, true, false)
	if err != nil {
		t.Fatalf("Failed to create evaluation: %v", err)
	}

	vote, err := services.GetFilmEvaluation(db, 7, film.ID)
	if err != nil {
		t.Fatalf("Failed to fetch own vote: %v", err)
	}
	if vote.ID != created.ID || !vote.Positive {
		t.Errorf("Expected the created vote back, got %+v", vote)
	}

	if _, err := services.GetFilmEvaluation(db, 8, film.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a profile that never voted, got: %v", err)
	}
}

func TestUpdateFilmEvaluationOwnership(t *testing.T) {
	db := setupTestDB(t)
	film := models.Film{Name: "Filme Um"}
	db.Create(&film)
	vote, err := services.CreateFilmEvaluation(db, 7, film.ID, true, false)
	if err != nil {
		t.Fatalf("Failed to create evaluation: %v", err)
	}

	// Another profile's vote reads as absent
	if err := services.UpdateFilmEvaluation(db, vote.ID, 8, false, true); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a non-owner, got: %v", err)
	}

	// The owner can flip it
	if err := services.UpdateFilmEvaluation(db, vote.ID, 7, false, true); err != nil {
		t.Fatalf("Failed to update own vote: %v", err)
	}
	reloaded, _ := services.GetFilmEvaluation(db, 7, film.ID)
	if reloaded.Positive || !reloaded.Negative {
		t.Errorf("Expected the vote to be flipped, got %+v", reloaded)
	}
}

func TestDeleteEvaluationAdminOverride(t *testing.T) {
	db := setupTestDB(t)
	film := models.Film{Name: "Filme Um"}
	db.Create(&film)
	vote, err := services.CreateFilmEvaluation(db, 7, film.ID, true, false)
	if err != nil {
		t.Fatalf("Failed to create evaluation: %v", err)
	}

	// A non-owner cannot delete it
	if err := services.DeleteFilmEvaluation(db, vote.ID, 8); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a non-owner, got: %v", err)
	}

	// Profile id zero means the caller came through the admin route
	if err := services.DeleteFilmEvaluation(db, vote.ID, 0); err != nil {
		t.Fatalf("Failed to delete as admin: %v", err)
	}
	if n := countRows(t, db, &models.FilmEvaluation{}, "idavaliacao = ?", vote.ID); n != 0 {
		t.Errorf("Expected the vote to be gone, found %d", n)
	}

	// Deleting again reads as absent
	if err := services.DeleteFilmEvaluation(db, vote.ID, 0); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a second delete, got: %v", err)
	}
}

func TestSuggestionEvaluationTotals(t *testing.T) {
	db := setupTestDB(t)
	suggestion, err := services.CreateFilmSuggestion(db, 1, "Sugerido", "")
	if err != nil {
		t.Fatalf("Failed to create suggestion: %v", err)
	}

	if _, err := services.CreateFilmSuggestionEvaluation(db, 2, suggestion.ID, true, false); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}
	if _, err := services.CreateFilmSuggestionEvaluation(db, 3, suggestion.ID, false, true); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}

	totals, err := services.FilmSuggestionEvaluationTotals(db, suggestion.ID)
	if err != nil {
		t.Fatalf("Failed to compute totals: %v", err)
	}
	if totals.Likes != 1 || totals.Dislikes != 1 {
		t.Errorf("Expected 1/1 totals, got %d/%d", totals.Likes, totals.Dislikes)
	}
}
