package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/cinefilos/cinefilos-api/internal/auth"
	"github.com/cinefilos/cinefilos-api/internal/config"
	"github.com/cinefilos/cinefilos-api/internal/database"
	"github.com/cinefilos/cinefilos-api/internal/handlers"
	"github.com/cinefilos/cinefilos-api/internal/middleware"
	"github.com/cinefilos/cinefilos-api/internal/types"

	_ "github.com/cinefilos/cinefilos-api/docs/api" // Swagger docs
)

// @title Cinéfilos API
// @version 1.0.0
// @description Movie rating and suggestion service
// @host localhost:9000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTDuration)
	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool { return true },
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("cinefilos")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin(tokens)

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db, Tokens: tokens, TokenDuration: cfg.JWTDuration}
	profileHandler := &handlers.ProfileHandler{DB: db}
	filmHandler := &handlers.FilmHandler{DB: db}
	actorHandler := &handlers.ActorHandler{DB: db}
	directorHandler := &handlers.DirectorHandler{DB: db}
	producerHandler := &handlers.ProducerHandler{DB: db}
	genreHandler := &handlers.GenreHandler{DB: db}
	linkHandler := &handlers.LinkHandler{DB: db}
	suggestionHandler := &handlers.SuggestionHandler{DB: db}
	evaluationHandler := &handlers.EvaluationHandler{DB: db}
	favoriteHandler := &handlers.FavoriteHandler{DB: db}
	commentHandler := &handlers.CommentHandler{DB: db}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}

	app.Get("/health", healthHandler.Health)

	// Session
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Profiles
	app.Post("/perfil", profileHandler.Register)
	app.Get("/meuPerfil", requireAuth, profileHandler.Me)
	app.Patch("/perfil", requireAuth, profileHandler.Update)
	app.Delete("/perfil", requireAuth, profileHandler.Delete)
	app.Patch("/fotoPerfil", requireAuth, profileHandler.UpdatePhoto)
	app.Get("/fotoPerfil/:id", profileHandler.GetPhoto)
	app.Get("/perfil", requireAdmin, profileHandler.List)
	app.Get("/perfil/pesquisarEmail", requireAdmin, profileHandler.SearchByEmail)
	app.Patch("/perfil/adm/promover/:id", requireAdmin, profileHandler.Promote)
	app.Get("/perfil/adm/:id", requireAdmin, profileHandler.AdminGet)
	app.Patch("/perfil/adm/:id", requireAdmin, profileHandler.AdminUpdate)
	app.Delete("/perfil/adm/:id", requireAdmin, profileHandler.AdminDelete)

	// Film catalog
	app.Post("/filmes", requireAdmin, filmHandler.Create)
	app.Get("/filmes", filmHandler.List)
	app.Get("/filmes/pesquisar", filmHandler.Search)
	app.Get("/filmes/:id", filmHandler.Get)
	app.Patch("/filmes/:id", requireAdmin, filmHandler.Update)
	app.Delete("/filmes/:id", requireAdmin, filmHandler.Delete)
	app.Patch("/fotoFilme/:id", requireAdmin, filmHandler.UpdatePhoto)
	app.Get("/fotoFilme/:id", filmHandler.GetPhoto)

	// Actor catalog
	app.Post("/atores", requireAdmin, actorHandler.Create)
	app.Get("/atores", actorHandler.List)
	app.Get("/atores/pesquisar", actorHandler.Search)
	app.Get("/atores/:id", actorHandler.Get)
	app.Patch("/atores/:id", requireAdmin, actorHandler.Update)
	app.Delete("/atores/:id", requireAdmin, actorHandler.Delete)
	app.Patch("/fotoAtor/:id", requireAdmin, actorHandler.UpdatePhoto)
	app.Get("/fotoAtor/:id", actorHandler.GetPhoto)

	// Directors, producers, genres
	app.Post("/diretores", requireAdmin, directorHandler.Create)
	app.Get("/diretores", directorHandler.List)
	app.Get("/diretores/:id", directorHandler.Get)
	app.Patch("/diretores/:id", requireAdmin, directorHandler.Update)
	app.Delete("/diretores/:id", requireAdmin, directorHandler.Delete)

	app.Post("/produtores", requireAdmin, producerHandler.Create)
	app.Get("/produtores", producerHandler.List)
	app.Get("/produtores/:id", producerHandler.Get)
	app.Patch("/produtores/:id", requireAdmin, producerHandler.Update)
	app.Delete("/produtores/:id", requireAdmin, producerHandler.Delete)

	app.Post("/generos", requireAdmin, genreHandler.Create)
	app.Get("/generos", genreHandler.List)
	app.Get("/generos/:id", genreHandler.Get)
	app.Patch("/generos/:id", requireAdmin, genreHandler.Update)
	app.Delete("/generos/:id", requireAdmin, genreHandler.Delete)

	// Catalog links
	app.Post("/atoresFilmes", requireAdmin, linkHandler.LinkActor)
	app.Delete("/atoresFilmes/:idFilme/:idAtor", requireAdmin, linkHandler.UnlinkActor)
	app.Get("/atoresFilmes/filme/:id", linkHandler.FilmCast)
	app.Get("/atoresFilmes/ator/:id", linkHandler.ActorFilmography)

	app.Post("/diretorFilmes", requireAdmin, linkHandler.LinkDirector)
	app.Delete("/diretorFilmes/:idFilme/:idDiretor", requireAdmin, linkHandler.UnlinkDirector)
	app.Get("/diretorFilmes/filme/:id", linkHandler.FilmDirectors)

	app.Post("/produtorFilmes", requireAdmin, linkHandler.LinkProducer)
	app.Delete("/produtorFilmes/:idFilme/:idProdutor", requireAdmin, linkHandler.UnlinkProducer)
	app.Get("/produtorFilmes/filme/:id", linkHandler.FilmProducers)

	app.Post("/generosFilmes", requireAdmin, linkHandler.LinkGenre)
	app.Delete("/generosFilmes/:idFilme/:idGenero", requireAdmin, linkHandler.UnlinkGenre)
	app.Get("/generosFilmes/filme/:id", linkHandler.FilmGenres)

	// Suggestions
	app.Post("/sugestoesFilmes", requireAuth, suggestionHandler.CreateFilm)
	app.Get("/sugestoesFilmes", suggestionHandler.ListFilms)
	app.Get("/sugestoesFilmes/minhas", requireAuth, suggestionHandler.MyFilms)
	app.Get("/sugestoesFilmes/:id", suggestionHandler.GetFilm)
	app.Patch("/sugestoesFilmes/adm/:id", requireAdmin, suggestionHandler.AdminUpdateFilm)
	app.Delete("/sugestoesFilmes/adm/:id", requireAdmin, suggestionHandler.AdminDeleteFilm)
	app.Patch("/sugestoesFilmes/:id", requireAuth, suggestionHandler.UpdateFilm)
	app.Delete("/sugestoesFilmes/:id", requireAuth, suggestionHandler.DeleteFilm)

	app.Post("/sugestoesAtores", requireAuth, suggestionHandler.CreateActor)
	app.Get("/sugestoesAtores", suggestionHandler.ListActors)
	app.Get("/sugestoesAtores/minhas", requireAuth, suggestionHandler.MyActors)
	app.Get("/sugestoesAtores/:id", suggestionHandler.GetActor)
	app.Patch("/sugestoesAtores/adm/:id", requireAdmin, suggestionHandler.AdminUpdateActor)
	app.Delete("/sugestoesAtores/adm/:id", requireAdmin, suggestionHandler.AdminDeleteActor)
	app.Patch("/sugestoesAtores/:id", requireAuth, suggestionHandler.UpdateActor)
	app.Delete("/sugestoesAtores/:id", requireAuth, suggestionHandler.DeleteActor)

	// Evaluations
	app.Post("/avaliacaoFilmes", requireAuth, evaluationHandler.CreateFilm)
	app.Get("/avaliacaoFilmes/filme/:id", evaluationHandler.FilmTotals)
	app.Get("/avaliacaoFilmes/minha/:idFilme", requireAuth, evaluationHandler.MyFilmVote)
	app.Delete("/avaliacaoFilmes/adm/:id", requireAdmin, evaluationHandler.AdminDeleteFilm)
	app.Patch("/avaliacaoFilmes/:id", requireAuth, evaluationHandler.UpdateFilm)
	app.Delete("/avaliacaoFilmes/:id", requireAuth, evaluationHandler.DeleteFilm)

	app.Post("/avaliacaoAtores", requireAuth, evaluationHandler.CreateActor)
	app.Get("/avaliacaoAtores/ator/:id", evaluationHandler.ActorTotals)
	app.Delete("/avaliacaoAtores/adm/:id", requireAdmin, evaluationHandler.AdminDeleteActor)
	app.Patch("/avaliacaoAtores/:id", requireAuth, evaluationHandler.UpdateActor)
	app.Delete("/avaliacaoAtores/:id", requireAuth, evaluationHandler.DeleteActor)

	app.Post("/avaliacaoSugsFilmes", requireAuth, evaluationHandler.CreateFilmSuggestion)
	app.Get("/avaliacaoSugsFilmes/sugestao/:id", evaluationHandler.FilmSuggestionTotals)
	app.Delete("/avaliacaoSugsFilmes/adm/:id", requireAdmin, evaluationHandler.AdminDeleteFilmSuggestion)
	app.Delete("/avaliacaoSugsFilmes/:id", requireAuth, evaluationHandler.DeleteFilmSuggestion)

	app.Post("/avaliacaoSugsAtores", requireAuth, evaluationHandler.CreateActorSuggestion)
	app.Get("/avaliacaoSugsAtores/sugestao/:id", evaluationHandler.ActorSuggestionTotals)
	app.Delete("/avaliacaoSugsAtores/adm/:id", requireAdmin, evaluationHandler.AdminDeleteActorSuggestion)
	app.Delete("/avaliacaoSugsAtores/:id", requireAuth, evaluationHandler.DeleteActorSuggestion)

	app.Post("/avaliacaoComentarios", requireAuth, evaluationHandler.CreateComment)
	app.Delete("/avaliacaoComentarios/adm/:id", requireAdmin, evaluationHandler.AdminDeleteComment)
	app.Delete("/avaliacaoComentarios/:id", requireAuth, evaluationHandler.DeleteComment)

	// Favorites
	app.Post("/favoritosFilmes", requireAuth, favoriteHandler.AddFilm)
	app.Get("/favoritosFilmes", requireAuth, favoriteHandler.ListFilms)
	app.Delete("/favoritosFilmes/:idFilme", requireAuth, favoriteHandler.RemoveFilm)

	app.Post("/favoritosAtores", requireAuth, favoriteHandler.AddActor)
	app.Get("/favoritosAtores", requireAuth, favoriteHandler.ListActors)
	app.Delete("/favoritosAtores/:idAtor", requireAuth, favoriteHandler.RemoveActor)

	// Comments
	app.Post("/comentarios", requireAuth, commentHandler.Create)
	app.Get("/comentarios", commentHandler.List)
	app.Get("/comentarios/meus", requireAuth, commentHandler.Mine)
	app.Get("/comentarios/filme/:idFilme", commentHandler.ListByFilm)
	app.Patch("/comentarios/adm/:id", requireAdmin, commentHandler.AdminUpdate)
	app.Delete("/comentarios/adm/filme/:idFilme", requireAdmin, commentHandler.AdminDeleteByFilm)
	app.Delete("/comentarios/adm/perfil/:idPerfil", requireAdmin, commentHandler.AdminDeleteByProfile)
	app.Delete("/comentarios/adm/:idFilme/:id", requireAdmin, commentHandler.AdminDelete)
	app.Patch("/comentarios/:id", requireAuth, commentHandler.Update)
	app.Delete("/comentarios/:idFilme/:id", requireAuth, commentHandler.Delete)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"mensagem": "Recurso não encontrado.",
			"codigo":   "ROTA_NAO_ENCONTRADA",
			"url":      c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally, keeping the legacy envelope.
func customErrorHandler(c *fiber.Ctx, err error) error {
	var ce *types.CustomError
	if errors.As(err, &ce) {
		return c.Status(ce.Status).JSON(fiber.Map{
			"mensagem": ce.Message,
			"codigo":   ce.Code,
		})
	}

	code := fiber.StatusInternalServerError
	message := "Erro interno do servidor."
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"mensagem":  message,
		"codigo":    "INTERNAL_ERROR",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}
