package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rlink7/rlink-pseudonym/internal/errors"
	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
	"github.com/rlink7/rlink-pseudonym/internal/validation"
)

// seededFactory returns a SpaceFactory whose shuffle order is fixed by seed.
func seededFactory(seed byte) SpaceFactory {
	return func(digits int) (CandidateSpace, error) {
		return NewSeededCandidateSpace(digits, seededRand(seed))
	}
}

func TestGenerator_Generate(t *testing.T) {
	encoder := NewDammEncoder()

	t.Run("Success_SinglePrefix", func(t *testing.T) {
		gen := NewGenerator(encoder, seededFactory(1))
		spec := &domain.GenerationSpec{
			Prefixes:    []domain.PrefixQuota{{Prefix: "1000", Count: 2}},
			Digits:      5,
			MinDistance: 3,
		}

		emitted, report, err := gen.Generate(context.Background(), spec, nil)
		require.NoError(t, err)
		require.Len(t, emitted, 2)

		for _, p := range emitted {
			assert.Equal(t, "1000", p.Prefix)
			assert.Len(t, p.Code, 6)
			assert.Len(t, p.Value, 10)
			assert.Equal(t, p.Prefix+p.Code, p.Value)
			assert.True(t, validation.IsDigitString(p.Code))
			assert.NoError(t, encoder.Verify(p.Value))
		}
		assert.GreaterOrEqual(t, DamerauLevenshtein(emitted[0].Code, emitted[1].Code), 3)

		require.Len(t, report, 1)
		assert.Equal(t, domain.PrefixReport{Prefix: "1000", Requested: 2, Generated: 2}, report[0])
		assert.True(t, report.Fulfilled())
	})

	t.Run("Success_MultiplePrefixesPairwiseDistance", func(t *testing.T) {
		gen := NewGenerator(encoder, seededFactory(7))
		spec := &domain.GenerationSpec{
			Prefixes: []domain.PrefixQuota{
				{Prefix: "2001", Count: 3},
				{Prefix: "2002", Count: 3},
			},
			Digits:      6,
			MinDistance: 3,
		}

		emitted, report, err := gen.Generate(context.Background(), spec, nil)
		require.NoError(t, err)
		require.Len(t, emitted, 6)
		assert.True(t, report.Fulfilled())

		// The distance guarantee holds across prefixes, not just within one.
		for i := 0; i < len(emitted); i++ {
			for j := i + 1; j < len(emitted); j++ {
				assert.GreaterOrEqual(t,
					DamerauLevenshtein(emitted[i].Code, emitted[j].Code), 3,
					"codes %q and %q too close", emitted[i].Code, emitted[j].Code)
			}
		}
	})

	t.Run("Success_ExhaustionIsReportedNotRaised", func(t *testing.T) {
		gen := NewGenerator(encoder, seededFactory(3))
		spec := &domain.GenerationSpec{
			Prefixes:    []domain.PrefixQuota{{Prefix: "42", Count: 15}},
			Digits:      1,
			MinDistance: 1,
		}

		// Only nine single-digit candidates exist, so the quota of 15
		// cannot be met.
		emitted, report, err := gen.Generate(context.Background(), spec, nil)
		require.NoError(t, err)
		assert.Len(t, emitted, 9)

		require.Len(t, report, 1)
		assert.Equal(t, 15, report[0].Requested)
		assert.Equal(t, 9, report[0].Generated)
		assert.False(t, report.Fulfilled())
		assert.Equal(t, []domain.PrefixReport{report[0]}, report.Unfulfilled())
	})

	t.Run("Success_EarlierPrefixHasPriority", func(t *testing.T) {
		gen := NewGenerator(encoder, seededFactory(4))
		spec := &domain.GenerationSpec{
			Prefixes: []domain.PrefixQuota{
				{Prefix: "10", Count: 9},
				{Prefix: "20", Count: 9},
			},
			Digits:      1,
			MinDistance: 0,
		}

		// Each candidate is consumed by at most one prefix, so the first
		// prefix drains the whole nine-value space and the second gets
		// nothing.
		emitted, report, err := gen.Generate(context.Background(), spec, nil)
		require.NoError(t, err)
		require.Len(t, emitted, 9)
		for _, p := range emitted {
			assert.Equal(t, "10", p.Prefix)
		}

		require.Len(t, report, 2)
		assert.Equal(t, 9, report[0].Generated)
		assert.Equal(t, 0, report[1].Generated)
	})

	t.Run("Success_ExistingCodesAreSkipped", func(t *testing.T) {
		// Precompute the codes a full run over the one-digit space would
		// emit, then hand three of them in as already issued.
		spec := &domain.GenerationSpec{
			Prefixes:    []domain.PrefixQuota{{Prefix: "5", Count: 9}},
			Digits:      1,
			MinDistance: 0,
		}
		full, _, err := NewGenerator(encoder, seededFactory(5)).Generate(context.Background(), spec, nil)
		require.NoError(t, err)
		require.Len(t, full, 9)

		existing := map[string]struct{}{
			full[0].Code: {},
			full[3].Code: {},
			full[7].Code: {},
		}

		emitted, report, err := NewGenerator(encoder, seededFactory(5)).Generate(context.Background(), spec, existing)
		require.NoError(t, err)
		assert.Len(t, emitted, 6)
		for _, p := range emitted {
			assert.NotContains(t, existing, p.Code)
		}
		assert.Equal(t, 6, report[0].Generated)
		assert.Len(t, existing, 3, "caller's map must not be mutated")
	})

	t.Run("Success_ExistingCodesBlockAdmission", func(t *testing.T) {
		gen := NewGenerator(encoder, seededFactory(6))
		spec := &domain.GenerationSpec{
			Prefixes:    []domain.PrefixQuota{{Prefix: "30", Count: 5}},
			Digits:      2,
			MinDistance: 100,
		}

		// Every three-character code is within distance 100 of the seeded
		// code, so nothing is admissible.
		existing := map[string]struct{}{"123": {}}

		emitted, report, err := gen.Generate(context.Background(), spec, existing)
		require.NoError(t, err)
		assert.Empty(t, emitted)
		assert.Equal(t, 0, report[0].Generated)
		assert.False(t, report.Fulfilled())
	})

	t.Run("Error_InvalidSpec", func(t *testing.T) {
		gen := NewGenerator(encoder, seededFactory(1))
		spec := &domain.GenerationSpec{
			Prefixes:    nil,
			Digits:      5,
			MinDistance: 3,
		}

		emitted, report, err := gen.Generate(context.Background(), spec, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Nil(t, emitted)
		assert.Nil(t, report)
	})

	t.Run("Error_ContextCancelled", func(t *testing.T) {
		gen := NewGenerator(encoder, seededFactory(1))
		spec := &domain.GenerationSpec{
			Prefixes:    []domain.PrefixQuota{{Prefix: "1000", Count: 2}},
			Digits:      5,
			MinDistance: 3,
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := gen.Generate(ctx, spec, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGenerator_DeterministicWithSeededSpace(t *testing.T) {
	encoder := NewDammEncoder()
	spec := &domain.GenerationSpec{
		Prefixes:    []domain.PrefixQuota{{Prefix: "77", Count: 4}},
		Digits:      4,
		MinDistance: 2,
	}

	first, _, err := NewGenerator(encoder, seededFactory(9)).Generate(context.Background(), spec, nil)
	require.NoError(t, err)
	second, _, err := NewGenerator(encoder, seededFactory(9)).Generate(context.Background(), spec, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
