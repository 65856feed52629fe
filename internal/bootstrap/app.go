package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/gin-gonic/gin"

	"lookbook-backend/internal/catalog"
	"lookbook-backend/internal/looks"
	"lookbook-backend/internal/looks/engine"
	"lookbook-backend/internal/services/health"
	"lookbook-backend/internal/shared/config"
	"lookbook-backend/internal/shared/server"
	"lookbook-backend/internal/shared/storage/db"
)

// scoreJitterSpread bounds the random tie-break addend; it has to stay well
// below the smallest scoring weight so it never reorders distinct scores.
const scoreJitterSpread = 2.0

// App holds shared dependencies wired for serving.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	CatalogRepo    catalog.Repo
	LooksService   *looks.Service
	CatalogHandler *catalog.Handler
	LooksHandler   *looks.Handler
	Health         *health.Service
}

// Build prepares dependencies and the router. With no reachable database it
// falls back to a seeded in-memory catalog in dev-like environments.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo catalog.Repo
	if sqlDB != nil {
		repo = &catalog.PGRepo{DB: sqlDB}
	} else if cfg.SeedCatalog {
		repo = catalog.NewMemoryRepo(catalog.SeedItems()...)
	} else {
		repo = catalog.NewMemoryRepo()
	}

	eng := engine.New(engine.Config{
		LookCount: cfg.LookCount,
		Jitter: func() float64 {
			return rand.Float64() * scoreJitterSpread
		},
	})

	app := &App{
		Config:       cfg,
		DB:           sqlDB,
		CatalogRepo:  repo,
		LooksService: &looks.Service{Catalog: repo, Engine: eng},
		Health:       health.NewService(sqlDB),
	}
	app.CatalogHandler = catalog.NewHandler(repo)
	app.LooksHandler = looks.NewHandler(app.LooksService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		CatalogHandler: app.CatalogHandler,
		LooksHandler:   app.LooksHandler,
		Health:         app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory catalog")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory catalog: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory catalog: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
