package looks

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"lookbook-backend/internal/catalog"
	"lookbook-backend/internal/looks/engine"
	"lookbook-backend/internal/shared/metrics"
	"lookbook-backend/internal/shared/telemetry"
)

// CatalogSource supplies a fresh catalog snapshot per recommendation call.
type CatalogSource interface {
	ListAvailable(ctx context.Context) ([]catalog.Item, error)
}

// Service wires the pure engine to the catalog boundary. It holds no state
// between calls.
type Service struct {
	Catalog CatalogSource
	Engine  *engine.Engine
}

// Generate runs one recommendation pass. excludeIDs are ids the caller wants
// omitted (already shown elsewhere); an empty result is valid.
func (s *Service) Generate(ctx context.Context, input ProfileInput, excludeIDs []string) (Result, error) {
	items, err := s.Catalog.ListAvailable(ctx)
	if err != nil {
		return Result{}, err
	}

	exclude := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		if id != "" {
			exclude[id] = struct{}{}
		}
	}

	start := time.Now()
	generated := s.Engine.GenerateLooks(input.toProfile(), items, exclude)
	s.observe(start, len(generated), len(items))

	shown := append([]string{}, excludeIDs...)
	shown = append(shown, engine.ShownIDs(generated)...)
	return s.result(generated, shown), nil
}

// Regenerate reruns the pipeline excluding everything previously shown; on
// catalog exhaustion the engine retries once with a fresh pool.
func (s *Service) Regenerate(ctx context.Context, input ProfileInput, previouslyShown []string) (Result, error) {
	items, err := s.Catalog.ListAvailable(ctx)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	generated, exclusion := s.Engine.RegenerateLooks(input.toProfile(), items, previouslyShown)
	s.observe(start, len(generated), len(items))

	shown := make([]string, 0, len(exclusion))
	for id := range exclusion {
		shown = append(shown, id)
	}
	sort.Strings(shown)
	return s.result(generated, shown), nil
}

func (s *Service) result(generated []engine.Look, shown []string) Result {
	if generated == nil {
		generated = []engine.Look{}
	}
	if shown == nil {
		shown = []string{}
	}
	return Result{
		GenerationID: uuid.NewString(),
		Looks:        generated,
		ShownIDs:     shown,
	}
}

func (s *Service) observe(start time.Time, lookCount, catalogSize int) {
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncGenerationRequested()
	metrics.ObserveGenerationDurationMs(durationMs)
	if lookCount == 0 {
		metrics.IncGenerationEmpty()
	}
	metrics.AddLooksReturned(uint64(lookCount))

	telemetry.Info("looks.generated", map[string]any{
		"look_count":   lookCount,
		"catalog_size": catalogSize,
		"duration_ms":  durationMs,
	})
}
