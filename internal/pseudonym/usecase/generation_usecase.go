package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rlink7/rlink-pseudonym/internal/database"
	apperrors "github.com/rlink7/rlink-pseudonym/internal/errors"
	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/service"
	"github.com/rlink7/rlink-pseudonym/internal/validation"
)

// minValueLength is the shortest well-formed pseudonym value: a one-digit
// prefix, a one-digit main code and the check digit.
const minValueLength = 3

// generationUseCase implements GenerationUseCase.
type generationUseCase struct {
	txManager     database.TxManager
	pseudonymRepo PseudonymRepository
	generator     service.Generator
	encoder       service.CheckDigitEncoder
}

// GenerateBatch runs one generation pass for the given spec and persists the
// resulting batch. The accepted set is seeded with every previously issued
// code so the distance guarantee holds across batches, not just within one.
func (g *generationUseCase) GenerateBatch(
	ctx context.Context,
	spec *domain.GenerationSpec,
	dryRun bool,
) (*domain.Batch, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	existing, err := g.pseudonymRepo.ListCodes(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load issued codes")
	}

	emitted, report, err := g.generator.Generate(ctx, spec, existing)
	if err != nil {
		return nil, apperrors.Wrap(err, "generation pass failed")
	}

	batchID, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate UUID for batch")
	}

	now := time.Now().UTC()
	batch := &domain.Batch{
		ID:          batchID,
		Digits:      spec.Digits,
		MinDistance: spec.MinDistance,
		DryRun:      dryRun,
		Report:      report,
		CreatedAt:   now,
	}

	batch.Pseudonyms = make([]*domain.Pseudonym, 0, len(emitted))
	for _, e := range emitted {
		pseudonymID, err := uuid.NewV7()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to generate UUID for pseudonym")
		}
		batch.Pseudonyms = append(batch.Pseudonyms, &domain.Pseudonym{
			ID:        pseudonymID,
			BatchID:   batch.ID,
			Prefix:    e.Prefix,
			Code:      e.Code,
			Value:     e.Value,
			CreatedAt: now,
		})
	}

	if dryRun {
		return batch, nil
	}

	// Persist the batch and its pseudonyms atomically. A partial batch must
	// never become visible to ListCodes of a concurrent run.
	err = g.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return g.pseudonymRepo.CreateBatch(txCtx, batch)
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to persist batch")
	}

	return batch, nil
}

// Verify checks the trailing check digit of a pseudonym value and looks the
// value up among the issued pseudonyms.
func (g *generationUseCase) Verify(ctx context.Context, value string) (*domain.Pseudonym, error) {
	if len(value) < minValueLength || !validation.IsDigitString(value) {
		return nil, domain.ErrMalformedValue
	}

	if err := g.encoder.Verify(value); err != nil {
		return nil, domain.ErrChecksumMismatch
	}

	pseudonym, err := g.pseudonymRepo.GetByValue(ctx, value)
	if err != nil {
		return nil, err
	}
	return pseudonym, nil
}

// List retrieves issued pseudonyms ordered by creation time descending.
func (g *generationUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Pseudonym, error) {
	pseudonyms, err := g.pseudonymRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list pseudonyms")
	}
	return pseudonyms, nil
}

// CountByPrefix counts issued pseudonyms for a prefix.
func (g *generationUseCase) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	if prefix == "" || !validation.IsDigitString(prefix) {
		return 0, domain.ErrInvalidPrefix
	}

	count, err := g.pseudonymRepo.CountByPrefix(ctx, prefix)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count pseudonyms by prefix")
	}
	return count, nil
}

// NewGenerationUseCase creates a new generation use case instance.
func NewGenerationUseCase(
	txManager database.TxManager,
	pseudonymRepo PseudonymRepository,
	generator service.Generator,
	encoder service.CheckDigitEncoder,
) GenerationUseCase {
	return &generationUseCase{
		txManager:     txManager,
		pseudonymRepo: pseudonymRepo,
		generator:     generator,
		encoder:       encoder,
	}
}
