package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/rlink7/rlink-pseudonym/internal/errors"
)

func validSpec() *GenerationSpec {
	return &GenerationSpec{
		Prefixes:    []PrefixQuota{{Prefix: "1000", Count: 20}, {Prefix: "1100", Count: 20}},
		Digits:      5,
		MinDistance: 3,
	}
}

func TestGenerationSpec_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*GenerationSpec)
		expectedErr error
	}{
		{
			name:   "Valid",
			mutate: func(s *GenerationSpec) {},
		},
		{
			name:   "Valid_ZeroMinDistance",
			mutate: func(s *GenerationSpec) { s.MinDistance = 0 },
		},
		{
			name:   "Valid_SingleDigitCode",
			mutate: func(s *GenerationSpec) { s.Digits = 1 },
		},
		{
			name:        "Error_NoPrefixes",
			mutate:      func(s *GenerationSpec) { s.Prefixes = nil },
			expectedErr: ErrNoPrefixes,
		},
		{
			name:        "Error_NonDigitPrefix",
			mutate:      func(s *GenerationSpec) { s.Prefixes[0].Prefix = "10a0" },
			expectedErr: ErrInvalidPrefix,
		},
		{
			name:        "Error_EmptyPrefix",
			mutate:      func(s *GenerationSpec) { s.Prefixes[0].Prefix = "" },
			expectedErr: ErrInvalidPrefix,
		},
		{
			name:        "Error_ZeroQuota",
			mutate:      func(s *GenerationSpec) { s.Prefixes[1].Count = 0 },
			expectedErr: ErrInvalidQuota,
		},
		{
			name:        "Error_NegativeQuota",
			mutate:      func(s *GenerationSpec) { s.Prefixes[1].Count = -5 },
			expectedErr: ErrInvalidQuota,
		},
		{
			name:        "Error_DuplicatePrefix",
			mutate:      func(s *GenerationSpec) { s.Prefixes[1].Prefix = "1000" },
			expectedErr: ErrDuplicatePrefix,
		},
		{
			name:        "Error_ZeroDigits",
			mutate:      func(s *GenerationSpec) { s.Digits = 0 },
			expectedErr: ErrInvalidDigits,
		},
		{
			name:        "Error_DigitsTooLarge",
			mutate:      func(s *GenerationSpec) { s.Digits = MaxDigits + 1 },
			expectedErr: ErrInvalidDigits,
		},
		{
			name:        "Error_NegativeMinDistance",
			mutate:      func(s *GenerationSpec) { s.MinDistance = -1 },
			expectedErr: ErrInvalidMinDistance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(spec)

			err := spec.Validate()

			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		})
	}
}

func TestGenerationSpec_TotalRequested(t *testing.T) {
	spec := validSpec()
	assert.Equal(t, 40, spec.TotalRequested())

	spec.Prefixes = nil
	assert.Equal(t, 0, spec.TotalRequested())
}

func TestReport_Fulfilled(t *testing.T) {
	report := Report{
		{Prefix: "1000", Requested: 20, Generated: 20},
		{Prefix: "1100", Requested: 20, Generated: 20},
	}
	assert.True(t, report.Fulfilled())
	assert.Empty(t, report.Unfulfilled())

	report[1].Generated = 12
	assert.False(t, report.Fulfilled())
	assert.Equal(t, []PrefixReport{{Prefix: "1100", Requested: 20, Generated: 12}}, report.Unfulfilled())
}
