package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"innovated/internal/api/v1/handler"
	"innovated/internal/config"
	"innovated/internal/middleware"
	"innovated/internal/repository"
	"innovated/internal/service"

	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires storage, services and handlers into the HTTP handler chain.
// The returned *sql.DB is nil when the in-memory store is in use; the
// caller owns closing it otherwise.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Pick the storage backend
	var storage repository.Storage
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxIdleTime(5 * time.Minute)

		pg, err := repository.NewPostgresStorage(context.Background(), db, logger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		storage = pg
		logger.Info().Msg("Using Postgres storage")
	} else {
		storage = repository.NewMemStorage()
		logger.Info().Msg("Using in-memory storage (state resets on restart)")
	}

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize services & handlers
	catalogSvc := service.NewCatalogService(storage)
	authSvc := service.NewAuthService(storage)

	courseHandler := handler.NewCourseHandler(catalogSvc, logger)
	authHandler := handler.NewAuthHandler(authSvc, validate, logger)

	// 4. Create ServeMux router
	mux := http.NewServeMux()
	courseHandler.RegisterRoutes(mux)
	authHandler.RegisterRoutes(mux)

	// 5. Serve the built client, falling back to index.html so client-side
	// routes resolve after a page reload
	if cfg.StaticDir != "" {
		mux.Handle("/", spaHandler(cfg.StaticDir))
	}

	// 6. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.Logger(logger)(c.Handler(mux)), db, nil
}

// spaHandler serves files from dir and rewrites unknown paths to
// index.html. API paths never reach it; they are matched first by the
// more specific mux patterns.
func spaHandler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(strings.TrimPrefix(r.URL.Path, "/")))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	})
}
