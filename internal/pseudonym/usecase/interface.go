// Package usecase implements pseudonym generation business logic.
//
// Coordinates candidate generation, admission filtering, and batch persistence.
// Uses TxManager for transactional consistency.
package usecase

import (
	"context"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

// PseudonymRepository defines the interface for pseudonym persistence.
type PseudonymRepository interface {
	// CreateBatch persists a batch and all its pseudonyms in one go.
	// Returns ErrCodeAlreadyIssued if any code collides with an issued one.
	CreateBatch(ctx context.Context, batch *domain.Batch) error

	// ListCodes returns the set of every issued code across all batches.
	ListCodes(ctx context.Context) (map[string]struct{}, error)

	// List retrieves pseudonyms ordered by creation time descending with pagination.
	List(ctx context.Context, offset, limit int) ([]*domain.Pseudonym, error)

	// GetByValue retrieves a pseudonym by its full value (prefix + code).
	GetByValue(ctx context.Context, value string) (*domain.Pseudonym, error)

	// CountByPrefix counts issued pseudonyms for a prefix.
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
}

// GenerationUseCase defines the interface for pseudonym generation operations.
type GenerationUseCase interface {
	// GenerateBatch runs one generation pass for the given spec and persists
	// the resulting batch. With dryRun the batch is returned but nothing is
	// written. Quotas that cannot be met from the candidate space are
	// reported on the batch, not raised as errors.
	GenerateBatch(ctx context.Context, spec *domain.GenerationSpec, dryRun bool) (*domain.Batch, error)

	// Verify checks the check digit of a pseudonym value and looks it up.
	// Returns ErrMalformedValue for non-numeric or too-short input and
	// ErrPseudonymNotFound when the value verifies but was never issued.
	Verify(ctx context.Context, value string) (*domain.Pseudonym, error)

	// List retrieves issued pseudonyms ordered by creation time descending
	// with pagination.
	List(ctx context.Context, offset, limit int) ([]*domain.Pseudonym, error)

	// CountByPrefix counts issued pseudonyms for a prefix.
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
}
