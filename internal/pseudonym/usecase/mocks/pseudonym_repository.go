// Package mocks provides mock implementations for testing pseudonym use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

// MockPseudonymRepository is a mock implementation of PseudonymRepository for testing.
type MockPseudonymRepository struct {
	mock.Mock
}

// CreateBatch mocks the CreateBatch method of PseudonymRepository.
func (m *MockPseudonymRepository) CreateBatch(ctx context.Context, batch *domain.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// ListCodes mocks the ListCodes method of PseudonymRepository.
func (m *MockPseudonymRepository) ListCodes(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

// List mocks the List method of PseudonymRepository.
func (m *MockPseudonymRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Pseudonym, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pseudonym), args.Error(1)
}

// GetByValue mocks the GetByValue method of PseudonymRepository.
func (m *MockPseudonymRepository) GetByValue(ctx context.Context, value string) (*domain.Pseudonym, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pseudonym), args.Error(1)
}

// CountByPrefix mocks the CountByPrefix method of PseudonymRepository.
func (m *MockPseudonymRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}
