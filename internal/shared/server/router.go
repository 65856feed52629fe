package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lookbook-backend/internal/catalog"
	"lookbook-backend/internal/looks"
	"lookbook-backend/internal/services/health"
	"lookbook-backend/internal/shared/config"
	"lookbook-backend/internal/shared/metrics"
	"lookbook-backend/internal/shared/server/middleware"
	"lookbook-backend/internal/shared/server/respond"
)

const rateLimitGroupGenerate = "GENERATE"

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	CatalogHandler *catalog.Handler
	LooksHandler   *looks.Handler
	Health         *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.LooksHandler != nil {
		deps.LooksHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig gives generation endpoints a stricter bucket than reads.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":              {Rate: 20, Burst: 40},
			rateLimitGroupGenerate: {Rate: 2, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return rateLimitGroupGenerate
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
