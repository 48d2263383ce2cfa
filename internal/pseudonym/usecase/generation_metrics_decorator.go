package usecase

import (
	"context"
	"time"

	"github.com/rlink7/rlink-pseudonym/internal/metrics"
	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

// generationUseCaseWithMetrics decorates GenerationUseCase with metrics instrumentation.
type generationUseCaseWithMetrics struct {
	next    GenerationUseCase
	metrics metrics.BusinessMetrics
}

// NewGenerationUseCaseWithMetrics wraps a GenerationUseCase with metrics recording.
func NewGenerationUseCaseWithMetrics(
	useCase GenerationUseCase,
	m metrics.BusinessMetrics,
) GenerationUseCase {
	return &generationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GenerateBatch records metrics for batch generation, including the number of
// pseudonyms emitted per prefix.
func (g *generationUseCaseWithMetrics) GenerateBatch(
	ctx context.Context,
	spec *domain.GenerationSpec,
	dryRun bool,
) (*domain.Batch, error) {
	start := time.Now()
	batch, err := g.next.GenerateBatch(ctx, spec, dryRun)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "pseudonym", "batch_generate", status)
	g.metrics.RecordDuration(ctx, "pseudonym", "batch_generate", time.Since(start), status)

	if batch != nil {
		for _, pr := range batch.Report {
			g.metrics.RecordEmitted(ctx, pr.Prefix, int64(pr.Generated))
		}
	}

	return batch, err
}

// Verify records metrics for pseudonym verification operations.
func (g *generationUseCaseWithMetrics) Verify(ctx context.Context, value string) (*domain.Pseudonym, error) {
	start := time.Now()
	pseudonym, err := g.next.Verify(ctx, value)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "pseudonym", "verify", status)
	g.metrics.RecordDuration(ctx, "pseudonym", "verify", time.Since(start), status)

	return pseudonym, err
}

// List records metrics for pseudonym listing operations.
func (g *generationUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Pseudonym, error) {
	start := time.Now()
	pseudonyms, err := g.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "pseudonym", "list", status)
	g.metrics.RecordDuration(ctx, "pseudonym", "list", time.Since(start), status)

	return pseudonyms, err
}

// CountByPrefix records metrics for per-prefix count lookups.
func (g *generationUseCaseWithMetrics) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	start := time.Now()
	count, err := g.next.CountByPrefix(ctx, prefix)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "pseudonym", "count_by_prefix", status)
	g.metrics.RecordDuration(ctx, "pseudonym", "count_by_prefix", time.Since(start), status)

	return count, err
}
