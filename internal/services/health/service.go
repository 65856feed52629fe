package health

import (
	"context"
	"database/sql"
	"time"
)

// Service reports process and storage health.
type Service struct {
	DB *sql.DB
}

// NewService constructs a health service. db may be nil when the catalog is
// served from memory.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status returns a health payload including which catalog storage is active.
func (s *Service) Status(ctx context.Context) map[string]any {
	status := map[string]any{
		"ok":      true,
		"storage": "memory",
	}
	if s.DB == nil {
		return status
	}
	status["storage"] = "postgres"
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		status["ok"] = false
		status["storage_error"] = err.Error()
	}
	return status
}
