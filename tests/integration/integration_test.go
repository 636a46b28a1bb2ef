package integration_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/cinefilos/cinefilos-api/internal/auth"
	"github.com/cinefilos/cinefilos-api/internal/config"
	"github.com/cinefilos/cinefilos-api/internal/database"
	"github.com/cinefilos/cinefilos-api/internal/handlers"
	"github.com/cinefilos/cinefilos-api/internal/middleware"
	"github.com/cinefilos/cinefilos-api/internal/models"
	"github.com/cinefilos/cinefilos-api/internal/services"
	"github.com/cinefilos/cinefilos-api/internal/types"
	"github.com/cinefilos/cinefilos-api/tests/helpers"
)

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TestWithMariaDB runs the API against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        getenvDefault("DB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "cinefilos",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mariadb",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "cinefilos",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
		JWTSecret:         "integration-test-secret",
		JWTDuration:       time.Hour,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	tm, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTDuration)
	if err != nil {
		t.Fatalf("Failed to create token manager: %v", err)
	}

	app := newTestApp(db, cfg, tm)

	t.Run("RegisterAndLogin", func(t *testing.T) {
		testRegisterAndLogin(t, app)
	})

	t.Run("AdminAuthorization", func(t *testing.T) {
		testAdminAuthorization(t, app, db)
	})

	t.Run("OwnershipScoping", func(t *testing.T) {
		testOwnershipScoping(t, app, db, tm)
	})

	t.Run("AccountCascadeDelete", func(t *testing.T) {
		testAccountCascadeDelete(t, app, db, tm)
	})

	t.Run("HealthCheck", func(t *testing.T) {
		result := services.HealthCheck(cfg, db)
		if result.Status != "healthy" {
			t.Errorf("Expected healthy status, got: %s (%s)", result.Status, result.ErrorMessage)
		}
		if result.Database != "ok" {
			t.Errorf("Expected database ok, got: %s", result.Database)
		}
	})
}

// newTestApp wires the routes exercised by the integration tests, with the
// same error mapping the server uses.
func newTestApp(db *gorm.DB, cfg *config.Config, tm *auth.TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
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
		},
	})

	requireAuth := middleware.RequireAuth(tm)
	requireAdmin := middleware.RequireAdmin(tm)

	authHandler := &handlers.AuthHandler{DB: db, Tokens: tm, TokenDuration: cfg.JWTDuration}
	profileHandler := &handlers.ProfileHandler{DB: db}
	filmHandler := &handlers.FilmHandler{DB: db}
	commentHandler := &handlers.CommentHandler{DB: db}

	app.Post("/login", authHandler.Login)
	app.Post("/perfil", profileHandler.Register)
	app.Get("/meuPerfil", requireAuth, profileHandler.Me)
	app.Delete("/perfil", requireAuth, profileHandler.Delete)
	app.Get("/perfil", requireAdmin, profileHandler.List)
	app.Post("/filmes", requireAdmin, filmHandler.Create)
	app.Post("/comentarios", requireAuth, commentHandler.Create)
	app.Patch("/comentarios/:id", requireAuth, commentHandler.Update)

	return app
}

func register(t *testing.T, app *fiber.App, name, email, password string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/perfil", helpers.JSONBody(t, map[string]string{
		"nome":  name,
		"email": email,
		"senha": password,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to register %s: %v", email, err)
	}
	helpers.AssertStatus(t, resp, 201)
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	req := httptest.NewRequest("POST", "/login", helpers.JSONBody(t, map[string]string{
		"email": email,
		"senha": password,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to login %s: %v", email, err)
	}
	helpers.AssertStatus(t, resp, 200)
	env := helpers.ParseEnvelope(t, resp)
	if env.Token == "" {
		t.Fatal("Expected a token in the login response")
	}
	return env.Token
}

func testRegisterAndLogin(t *testing.T, app *fiber.App) {
	register(t, app, "Maria", "maria@example.com", "secret1")
	token := login(t, app, "maria@example.com", "secret1")

	req := httptest.NewRequest("GET", "/meuPerfil", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to fetch own profile: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var profile models.Profile
	helpers.ParseJSON(t, resp, &profile)
	if profile.Email != "maria@example.com" {
		t.Errorf("Expected own profile email, got %q", profile.Email)
	}
	if profile.Admin {
		t.Error("Registration must never create an admin")
	}

	// Wrong password
	req = httptest.NewRequest("POST", "/login", helpers.JSONBody(t, map[string]string{
		"email": "maria@example.com",
		"senha": "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute login request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)
}

func testAdminAuthorization(t *testing.T, app *fiber.App, db *gorm.DB) {
	register(t, app, "Pedro", "pedro@example.com", "secret1")
	token := login(t, app, "pedro@example.com", "secret1")

	// No token at all
	req := httptest.NewRequest("GET", "/perfil", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)

	// Authenticated but not admin
	req = httptest.NewRequest("GET", "/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 403)

	// Promote, re-login to refresh the claims
	profile, err := services.FindProfileByEmail(db, "pedro@example.com")
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}
	if err := services.PromoteToAdmin(db, profile.ID); err != nil {
		t.Fatalf("Failed to promote profile: %v", err)
	}
	token = login(t, app, "pedro@example.com", "secret1")

	req = httptest.NewRequest("GET", "/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

func testOwnershipScoping(t *testing.T, app *fiber.App, db *gorm.DB, tm *auth.TokenManager) {
	owner, err := services.CreateProfile(db, "Dona", "dona@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create owner: %v", err)
	}
	other, err := services.CreateProfile(db, "Outro", "outro@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create other: %v", err)
	}

	film := &models.Film{Name: "Cidade Cinza"}
	if err := services.CreateFilm(db, film); err != nil {
		t.Fatalf("Failed to create film: %v", err)
	}
	comment, err := services.CreateComment(db, owner.ID, film.ID, "Gostei muito.")
	if err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}

	ownerToken, _ := tm.Generate(owner.ID, owner.Email, false)
	otherToken, _ := tm.Generate(other.ID, other.Email, false)

	body := map[string]interface{}{
		"filmes_idfilmes": film.ID,
		"descricao":       "Editado.",
	}

	// Someone else's comment reads as absent, not forbidden
	req := httptest.NewRequest("PATCH",
		"/comentarios/"+itoa(comment.ID), helpers.JSONBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+otherToken)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)

	// The owner can edit it
	req = httptest.NewRequest("PATCH",
		"/comentarios/"+itoa(comment.ID), helpers.JSONBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ownerToken)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var updated models.Comment
	if err := db.First(&updated, "idcomentarios = ?", comment.ID).Error; err != nil {
		t.Fatalf("Failed to reload comment: %v", err)
	}
	if updated.Text != "Editado." {
		t.Errorf("Expected updated text, got %q", updated.Text)
	}
}

func testAccountCascadeDelete(t *testing.T, app *fiber.App, db *gorm.DB, tm *auth.TokenManager) {
	leaving, err := services.CreateProfile(db, "Saindo", "saindo@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create leaving profile: %v", err)
	}
	staying, err := services.CreateProfile(db, "Ficando", "ficando@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Failed to create staying profile: %v", err)
	}

	film := &models.Film{Name: "O Último Ato"}
	if err := services.CreateFilm(db, film); err != nil {
		t.Fatalf("Failed to create film: %v", err)
	}
	actor := &models.Actor{Name: "João Teste", Alive: true}
	if err := services.CreateActor(db, actor); err != nil {
		t.Fatalf("Failed to create actor: %v", err)
	}

	// Content owned by the leaving profile
	leavingComment, err := services.CreateComment(db, leaving.ID, film.ID, "Vou embora.")
	if err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}
	suggestion, err := services.CreateFilmSuggestion(db, leaving.ID, "Filme Sugerido", "")
	if err != nil {
		t.Fatalf("Failed to create suggestion: %v", err)
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

	// Content owned by the staying profile, partly pointing at the leaver's
	stayingComment, err := services.CreateComment(db, staying.ID, film.ID, "Eu fico.")
	if err != nil {
		t.Fatalf("Failed to create staying comment: %v", err)
	}
	if _, err := services.CreateCommentEvaluation(db, staying.ID, leavingComment.ID, leaving.ID, film.ID, true, false); err != nil {
		t.Fatalf("Failed to vote on leaving comment: %v", err)
	}
	if _, err := services.CreateCommentEvaluation(db, leaving.ID, stayingComment.ID, staying.ID, film.ID, true, false); err != nil {
		t.Fatalf("Failed to vote on staying comment: %v", err)
	}
	if _, err := services.CreateFilmSuggestionEvaluation(db, staying.ID, suggestion.ID, true, false); err != nil {
		t.Fatalf("Failed to vote on suggestion: %v", err)
	}
	if _, err := services.CreateFilmEvaluation(db, staying.ID, film.ID, true, false); err != nil {
		t.Fatalf("Failed to create staying film evaluation: %v", err)
	}

	token, _ := tm.Generate(leaving.ID, leaving.Email, false)
	req := httptest.NewRequest("DELETE", "/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute delete request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
	env := helpers.ParseEnvelope(t, resp)
	if env.LinhasAfetadas != 1 {
		t.Errorf("Expected linhasAfetadas 1, got %d", env.LinhasAfetadas)
	}

	// The profile and everything it owned is gone
	assertCount(t, db, &models.Profile{}, "idperfil = ?", 0, leaving.ID)
	assertCount(t, db, &models.Comment{}, "perfil_idperfil = ?", 0, leaving.ID)
	assertCount(t, db, &models.FilmSuggestion{}, "perfil_idperfil = ?", 0, leaving.ID)
	assertCount(t, db, &models.FilmEvaluation{}, "perfil_idperfil = ?", 0, leaving.ID)
	assertCount(t, db, &models.ActorEvaluation{}, "perfil_idperfil = ?", 0, leaving.ID)
	assertCount(t, db, &models.FavoriteFilm{}, "perfil_idperfil = ?", 0, leaving.ID)
	assertCount(t, db, &models.FavoriteActor{}, "perfil_idperfil = ?", 0, leaving.ID)
	assertCount(t, db, &models.CommentEvaluation{}, "perfil_idperfil = ?", 0, leaving.ID)

	// Votes other users cast on the leaver's content are swept too
	assertCount(t, db, &models.CommentEvaluation{}, "comentarios_perfil_idperfil = ?", 0, leaving.ID)
	assertCount(t, db, &models.FilmSuggestionEvaluation{}, "sugestoesFilmes_idsugestoesFilmes = ?", 0, suggestion.ID)

	// The staying profile's own rows survive
	assertCount(t, db, &models.Profile{}, "idperfil = ?", 1, staying.ID)
	assertCount(t, db, &models.Comment{}, "perfil_idperfil = ?", 1, staying.ID)
	assertCount(t, db, &models.FilmEvaluation{}, "perfil_idperfil = ?", 1, staying.ID)

	// Deleting again reads as absent
	req = httptest.NewRequest("DELETE", "/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute delete request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
}

func assertCount(t *testing.T, db *gorm.DB, model interface{}, cond string, want int64, args ...interface{}) {
	t.Helper()
	var got int64
	if err := db.Model(model).Where(cond, args...).Count(&got).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if got != want {
		t.Errorf("Expected %d rows for %q, got %d", want, cond, got)
	}
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}
