// Package service provides the pseudonym generation primitives: the shuffled
// candidate space, the Damm check-digit encoder, the Damerau-Levenshtein
// admission filter, and the generator that orchestrates them.
package service

import (
	"context"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

// CandidateSpace is a finite, non-restartable sequence of candidate main
// codes in uniformly shuffled order. The whole space is materialized once
// and then consumed lazily; a drained space stays drained.
type CandidateSpace interface {
	// Next returns the next candidate, or ok=false once the space is exhausted.
	Next() (candidate string, ok bool)

	// Size returns the total number of candidates in the space.
	Size() int
}

// CheckDigitEncoder computes and verifies a single decimal check digit over
// digit strings. Implementations must detect all single-digit substitutions
// and all adjacent transpositions.
type CheckDigitEncoder interface {
	// Compute returns the check digit ('0'-'9') for the given digit string.
	Compute(digits string) (byte, error)

	// Verify checks a digit string whose last character is the check digit.
	Verify(digits string) error
}

// AdmissionFilter decides whether a candidate code keeps enough distance
// from every already-accepted code.
type AdmissionFilter interface {
	// Admit reports whether code is at least the configured minimum
	// Damerau-Levenshtein distance from every member of accepted.
	// An empty accepted set admits vacuously.
	Admit(code string, accepted map[string]struct{}) bool
}

// Generated is one emitted pseudonym before persistence.
type Generated struct {
	// Prefix is the cohort prefix the code was issued for.
	Prefix string
	// Code is the main code plus check digit.
	Code string
	// Value is Prefix + Code.
	Value string
}

// Generator produces batches of admissible pseudonym codes.
type Generator interface {
	// Generate runs one generation pass. existing seeds the accepted set
	// with previously issued codes; the map is not mutated. The returned
	// slice is in emission order and the report covers every prefix of the
	// spec in configuration order. Exhaustion of the candidate space is not
	// an error: the report shows which quotas went unmet.
	Generate(
		ctx context.Context,
		spec *domain.GenerationSpec,
		existing map[string]struct{},
	) ([]Generated, domain.Report, error)
}
