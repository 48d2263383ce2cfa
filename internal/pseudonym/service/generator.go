package service

import (
	"context"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

// SpaceFactory builds the candidate space for a given main-code length.
type SpaceFactory func(digits int) (CandidateSpace, error)

type generator struct {
	encoder  CheckDigitEncoder
	newSpace SpaceFactory
}

// NewGenerator creates a Generator using the given check-digit encoder. A nil
// spaceFactory defaults to NewCandidateSpace; tests pass a seeded factory for
// reproducible runs.
func NewGenerator(encoder CheckDigitEncoder, spaceFactory SpaceFactory) Generator {
	if spaceFactory == nil {
		spaceFactory = NewCandidateSpace
	}
	return &generator{
		encoder:  encoder,
		newSpace: spaceFactory,
	}
}

// Generate runs one generation pass over a freshly shuffled candidate space.
//
// For each candidate, pending prefixes are tried in spec order. The first
// prefix whose code (candidate + check digit over prefix+candidate) is new
// and admissible consumes the candidate; a duplicate or rejected code only
// skips that prefix, not the candidate. Acceptance is strictly sequential:
// each admission decision sees every previously accepted code, which is what
// makes the pairwise distance guarantee hold globally.
//
// The run terminates when every quota is met or the space is drained.
// Under-delivery is reported, not raised.
func (g *generator) Generate(
	ctx context.Context,
	spec *domain.GenerationSpec,
	existing map[string]struct{},
) ([]Generated, domain.Report, error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}

	space, err := g.newSpace(spec.Digits)
	if err != nil {
		return nil, nil, err
	}

	// Seed the accepted set with previously issued codes. The caller's map
	// is left untouched.
	accepted := make(map[string]struct{}, len(existing)+spec.TotalRequested())
	for code := range existing {
		accepted[code] = struct{}{}
	}

	filter := NewMinDistanceFilter(spec.MinDistance)

	remaining := make([]int, len(spec.Prefixes))
	pending := 0
	for i, pq := range spec.Prefixes {
		remaining[i] = pq.Count
		pending++
	}

	emitted := make([]Generated, 0, spec.TotalRequested())

	for pending > 0 {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		candidate, ok := space.Next()
		if !ok {
			break
		}

		for i, pq := range spec.Prefixes {
			if remaining[i] == 0 {
				continue
			}

			check, err := g.encoder.Compute(pq.Prefix + candidate)
			if err != nil {
				return nil, nil, err
			}
			code := candidate + string(check)

			if _, dup := accepted[code]; dup {
				// Another prefix may still derive a fresh code from this
				// candidate, since the check digit covers the prefix.
				continue
			}
			if !filter.Admit(code, accepted) {
				continue
			}

			accepted[code] = struct{}{}
			remaining[i]--
			if remaining[i] == 0 {
				pending--
			}
			emitted = append(emitted, Generated{
				Prefix: pq.Prefix,
				Code:   code,
				Value:  pq.Prefix + code,
			})

			// A candidate is consumed by at most one prefix.
			break
		}
	}

	report := make(domain.Report, len(spec.Prefixes))
	for i, pq := range spec.Prefixes {
		report[i] = domain.PrefixReport{
			Prefix:    pq.Prefix,
			Requested: pq.Count,
			Generated: pq.Count - remaining[i],
		}
	}

	return emitted, report, nil
}
