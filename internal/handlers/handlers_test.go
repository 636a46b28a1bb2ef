package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cinefilos/cinefilos-api/internal/auth"
	"github.com/cinefilos/cinefilos-api/internal/handlers"
	"github.com/cinefilos/cinefilos-api/internal/middleware"
	"github.com/cinefilos/cinefilos-api/internal/models"
	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/types"
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

func newTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("handler-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("Failed to create token manager: %v", err)
	}
	return tm
}

// errorHandler mirrors the server's global error mapping.
func errorHandler(c *fiber.Ctx, err error) error {
	var ce *types.CustomError
	if errors.As(err, &ce) {
		return c.Status(ce.Status).JSON(fiber.Map{
			"mensagem": ce.Message,
			"codigo":   ce.Code,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"mensagem": "Erro interno do servidor.",
		"codigo":   "INTERNAL_ERROR",
	})
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	handler := &handlers.ProfileHandler{DB: db}
	app.Post("/perfil", handler.Register)

	// Shape problems come back as the 400 validation envelope
	req := jsonRequest(t, "POST", "/perfil", map[string]string{
		"nome": "", "email": "x", "senha": "123",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
	var body struct {
		Mensagem string   `json:"mensagem"`
		Codigo   string   `json:"codigo"`
		Erro     []string `json:"erro"`
	}
	decodeBody(t, resp, &body)
	if body.Codigo != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR, got %q", body.Codigo)
	}
	if len(body.Erro) != 3 {
		t.Errorf("Expected 3 problems, got %v", body.Erro)
	}

	// A valid registration answers 201 with the profile, password omitted
	req = jsonRequest(t, "POST", "/perfil", map[string]string{
		"nome": "Ana", "email": "ana@example.com", "senha": "secret1",
	})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("Expected status 201, got %d", resp.StatusCode)
	}
	var created map[string]interface{}
	decodeBody(t, resp, &created)
	if created["email"] != "ana@example.com" {
		t.Errorf("Expected the created profile, got %v", created)
	}
	if _, leaked := created["senha"]; leaked {
		t.Error("The password hash must not appear in the response")
	}
}

func TestLoginIssuesCookieAndToken(t *testing.T) {
	db := setupTestDB(t)
	tm := newTokenManager(t)
	if _, err := services.CreateProfile(db, "Ana", "ana@example.com", "secret1", ""); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	handler := &handlers.AuthHandler{DB: db, Tokens: tm, TokenDuration: time.Hour}
	app.Post("/login", handler.Login)

	req := jsonRequest(t, "POST", "/login", map[string]string{
		"email": "ana@example.com", "senha": "secret1",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	if body.Token == "" {
		t.Fatal("Expected a token in the response body")
	}
	claims, err := tm.Validate(body.Token)
	if err != nil {
		t.Fatalf("The issued token does not validate: %v", err)
	}
	if claims.Email != "ana@example.com" || claims.Admin {
		t.Errorf("Unexpected claims: %+v", claims)
	}

	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "token" {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatal("Expected the token cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("The token cookie must be http-only")
	}

	// Wrong password
	req = jsonRequest(t, "POST", "/login", map[string]string{
		"email": "ana@example.com", "senha": "nope",
	})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

func TestAdminGate(t *testing.T) {
	db := setupTestDB(t)
	tm := newTokenManager(t)

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	handler := &handlers.ProfileHandler{DB: db}
	app.Get("/perfil", middleware.RequireAdmin(tm), handler.List)

	// Missing credential
	resp, err := app.Test(httptest.NewRequest("GET", "/perfil", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}

	// Garbage credential
	req := httptest.NewRequest("GET", "/perfil", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}

	// Authenticated but not admin: refused up front, not hidden as a 404
	userToken, _ := tm.Generate(1, "user@example.com", false)
	req = httptest.NewRequest("GET", "/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("Expected status 403, got %d", resp.StatusCode)
	}

	// Admin passes
	adminToken, _ := tm.Generate(2, "admin@example.com", true)
	req = httptest.NewRequest("GET", "/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestCookieCredentialAccepted(t *testing.T) {
	db := setupTestDB(t)
	tm := newTokenManager(t)
	profile, err := services.CreateProfile(db, "Ana", "ana@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	handler := &handlers.ProfileHandler{DB: db}
	app.Get("/meuPerfil", middleware.RequireAuth(tm), handler.Me)

	token, _ := tm.Generate(profile.ID, profile.Email, false)
	req := httptest.NewRequest("GET", "/meuPerfil", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestSuggestionOwnershipReadsAsNotFound(t *testing.T) {
	db := setupTestDB(t)
	tm := newTokenManager(t)

	owner, err := services.CreateProfile(db, "Dona", "dona@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create owner: %v", err)
	}
	other, err := services.CreateProfile(db, "Outro", "outro@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create other: %v", err)
	}
	suggestion, err := services.CreateFilmSuggestion(db, owner.ID, "Minha Sugestão", "")
	if err != nil {
		t.Fatalf("Failed to create suggestion: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	handler := &handlers.SuggestionHandler{DB: db}
	app.Patch("/sugestoesFilmes/adm/:id", middleware.RequireAdmin(tm), handler.AdminUpdateFilm)
	app.Patch("/sugestoesFilmes/:id", middleware.RequireAuth(tm), handler.UpdateFilm)

	target := "/sugestoesFilmes/" + strconv.FormatUint(suggestion.ID, 10)
	patch := map[string]interface{}{"sinopse": "Nova sinopse."}

	// Not the owner: the row reads as absent
	otherToken, _ := tm.Generate(other.ID, other.Email, false)
	req := jsonRequest(t, "PATCH", target, patch)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 for a non-owner, got %d", resp.StatusCode)
	}

	// The owner succeeds
	ownerToken, _ := tm.Generate(owner.ID, owner.Email, false)
	req = jsonRequest(t, "PATCH", target, patch)
	req.Header.Set("Authorization", "Bearer "+ownerToken)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200 for the owner, got %d", resp.StatusCode)
	}

	// The admin route skips the ownership scope entirely
	adminToken, _ := tm.Generate(999, "admin@example.com", true)
	req = jsonRequest(t, "PATCH", "/sugestoesFilmes/adm/"+strconv.FormatUint(suggestion.ID, 10), patch)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200 for the admin route, got %d", resp.StatusCode)
	}
}

func TestInvalidIDParam(t *testing.T) {
	db := setupTestDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	handler := &handlers.FilmHandler{DB: db}
	app.Get("/filmes/:id", handler.Get)

	resp, err := app.Test(httptest.NewRequest("GET", "/filmes/abc", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for a bad id, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/filmes/123", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 for an unknown film, got %d", resp.StatusCode)
	}
}

func TestDeleteProfileReportsAffectedRows(t *testing.T) {
	db := setupTestDB(t)
	tm := newTokenManager(t)
	profile, err := services.CreateProfile(db, "Ana", "ana@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	handler := &handlers.ProfileHandler{DB: db}
	app.Delete("/perfil", middleware.RequireAuth(tm), handler.Delete)

	token, _ := tm.Generate(profile.ID, profile.Email, false)
	req := httptest.NewRequest("DELETE", "/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Mensagem       string `json:"mensagem"`
		LinhasAfetadas int64  `json:"linhasAfetadas"`
	}
	decodeBody(t, resp, &body)
	if body.LinhasAfetadas != 1 {
		t.Errorf("Expected linhasAfetadas 1, got %d", body.LinhasAfetadas)
	}

	// The account is gone, a second delete reads as absent
	req = httptest.NewRequest("DELETE", "/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
