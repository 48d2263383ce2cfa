package domain

const (
	// MinDigits is the smallest supported main-code length.
	MinDigits = 1

	// MaxDigits is the largest supported main-code length. The candidate
	// space is fully materialized before shuffling, so the length is capped
	// to keep memory bounded.
	MaxDigits = 9

	// DefaultDigits is the production default main-code length.
	DefaultDigits = 5

	// DefaultMinDistance is the production default minimum Damerau-Levenshtein
	// distance between any two issued codes.
	DefaultMinDistance = 3

	// MaxRepeatedRun is the longest allowed run of identical consecutive
	// digits in a candidate. Candidates with longer runs are excluded from
	// the candidate space.
	MaxRepeatedRun = 2
)
