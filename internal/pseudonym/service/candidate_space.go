package service

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

type candidateSpace struct {
	values []string
	pos    int
}

// NewCandidateSpace enumerates every digit string of length digits in
// [10^(digits-1), 10^digits-1] (no leading zero) whose decimal representation
// contains no run of more than domain.MaxRepeatedRun identical consecutive
// digits, and presents them in uniformly shuffled order. The shuffle avoids
// biasing which prefixes receive numerically small or large codes.
func NewCandidateSpace(digits int) (CandidateSpace, error) {
	seed, err := chachaSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed candidate shuffle: %w", err)
	}
	return NewSeededCandidateSpace(digits, rand.New(rand.NewChaCha8(seed)))
}

// NewSeededCandidateSpace is NewCandidateSpace with a caller-supplied random
// source, for reproducible runs and tests.
func NewSeededCandidateSpace(digits int, rng *rand.Rand) (CandidateSpace, error) {
	if digits < domain.MinDigits || digits > domain.MaxDigits {
		return nil, domain.ErrInvalidDigits
	}

	minValue := 1
	for i := 1; i < digits; i++ {
		minValue *= 10
	}
	maxValue := minValue*10 - 1

	values := make([]string, 0, maxValue-minValue+1)
	for v := minValue; v <= maxValue; v++ {
		s := strconv.Itoa(v)
		if hasRepeatedRun(s, domain.MaxRepeatedRun+1) {
			continue
		}
		values = append(values, s)
	}

	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	return &candidateSpace{values: values}, nil
}

// Next returns the next candidate in shuffle order, or ok=false once drained.
func (c *candidateSpace) Next() (string, bool) {
	if c.pos >= len(c.values) {
		return "", false
	}
	candidate := c.values[c.pos]
	c.pos++
	return candidate, true
}

// Size returns the total number of candidates in the space.
func (c *candidateSpace) Size() int {
	return len(c.values)
}

// hasRepeatedRun reports whether s contains runLen or more identical
// consecutive characters.
func hasRepeatedRun(s string, runLen int) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			if run >= runLen {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// chachaSeed draws a ChaCha8 seed from the operating system's entropy source.
func chachaSeed() ([32]byte, error) {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return seed, err
	}
	return seed, nil
}
