package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

// MockGenerationUseCase is a mock implementation of GenerationUseCase for testing.
type MockGenerationUseCase struct {
	mock.Mock
}

// GenerateBatch mocks the GenerateBatch method of GenerationUseCase.
func (m *MockGenerationUseCase) GenerateBatch(
	ctx context.Context,
	spec *domain.GenerationSpec,
	dryRun bool,
) (*domain.Batch, error) {
	args := m.Called(ctx, spec, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

// Verify mocks the Verify method of GenerationUseCase.
func (m *MockGenerationUseCase) Verify(ctx context.Context, value string) (*domain.Pseudonym, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pseudonym), args.Error(1)
}

// List mocks the List method of GenerationUseCase.
func (m *MockGenerationUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Pseudonym, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pseudonym), args.Error(1)
}

// CountByPrefix mocks the CountByPrefix method of GenerationUseCase.
func (m *MockGenerationUseCase) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}
