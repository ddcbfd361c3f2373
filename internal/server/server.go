package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/inkwell-books/apiserver/config"
	"github.com/inkwell-books/apiserver/internal/handlers"
	"github.com/inkwell-books/apiserver/internal/services"
	"github.com/inkwell-books/apiserver/internal/store"
	"github.com/rs/zerolog/log"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
}

// New constructs a Server: seeds the catalog, wires stores, services,
// and handlers, and mounts the routes.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	seed, err := loadSeed(cfg)
	if err != nil {
		return nil, err
	}

	catalogRepo, err := store.NewCatalogRepository(seed)
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	userRepo := store.NewUserRepository()
	log.Info().Int("books", len(seed)).Msg("catalog seeded")

	catalogService := services.NewCatalogService(catalogRepo)
	userService := services.NewUserService(userRepo)
	reviewService := services.NewReviewService(catalogRepo)

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set; login and review routes will answer 500")
	}
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Minute)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", handlers.Healthz)
	handlers.CatalogRouter(router, catalogService)
	router.Route("/customer", func(r chi.Router) {
		handlers.AuthRouter(r, authHandler)
		r.Route("/auth", func(r chi.Router) {
			handlers.ReviewRouter(r, reviewService, authHandler.RequireAuth)
		})
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
	}, nil
}

func loadSeed(cfg config.Config) ([]store.SeedBook, error) {
	if cfg.SeedPath != "" {
		return store.LoadSeedFile(cfg.SeedPath)
	}
	return store.DefaultSeed()
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("bookstore server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	return s.httpServer.Close()
}
