package domain

import (
	customValidation "github.com/rlink7/rlink-pseudonym/internal/validation"
)

// PrefixQuota pairs a prefix with the number of pseudonyms to generate for it.
type PrefixQuota struct {
	Prefix string
	Count  int
}

// GenerationSpec describes one generation run. Prefixes is a slice rather
// than a map so that the prefix iteration order of the run is the order the
// caller configured.
type GenerationSpec struct {
	Prefixes    []PrefixQuota
	Digits      int
	MinDistance int
}

// Validate checks the generation spec before a run starts. The reference
// behavior of the tool this service replaces did not validate its inputs;
// here an invalid spec fails fast with an ErrInvalidInput-wrapped error.
func (s *GenerationSpec) Validate() error {
	if len(s.Prefixes) == 0 {
		return ErrNoPrefixes
	}

	seen := make(map[string]struct{}, len(s.Prefixes))
	for _, pq := range s.Prefixes {
		if !customValidation.IsDigitString(pq.Prefix) {
			return ErrInvalidPrefix
		}
		if pq.Count <= 0 {
			return ErrInvalidQuota
		}
		if _, ok := seen[pq.Prefix]; ok {
			return ErrDuplicatePrefix
		}
		seen[pq.Prefix] = struct{}{}
	}

	// validation.Min skips zero values, so bounds on numbers that may
	// legitimately be zero are checked by hand.
	if s.Digits < MinDigits || s.Digits > MaxDigits {
		return ErrInvalidDigits
	}
	if s.MinDistance < 0 {
		return ErrInvalidMinDistance
	}

	return nil
}

// TotalRequested returns the sum of all prefix quotas.
func (s *GenerationSpec) TotalRequested() int {
	total := 0
	for _, pq := range s.Prefixes {
		total += pq.Count
	}
	return total
}
