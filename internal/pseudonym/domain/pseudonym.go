// Package domain defines the core pseudonym domain entities and types.
//
// A pseudonym is an opaque numeric identifier replacing personally identifying
// information. Its value is prefix + main code + Damm check digit, where the
// prefix identifies a cohort or acquisition site. Every issued code is kept at
// a minimum Damerau-Levenshtein distance from all other issued codes so that a
// single-character typo or an adjacent transposition cannot turn one valid
// pseudonym into another.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pseudonym represents one issued pseudonym.
type Pseudonym struct {
	ID      uuid.UUID
	BatchID uuid.UUID
	// Prefix is the cohort/site prefix (digit string).
	Prefix string
	// Code is the main code plus check digit. Unique across all batches.
	Code string
	// Value is Prefix + Code, the string handed out to acquisition centres.
	Value     string
	CreatedAt time.Time
}

// Batch groups the pseudonyms produced by a single generation run together
// with the fulfillment report for that run.
type Batch struct {
	ID          uuid.UUID
	Digits      int
	MinDistance int
	DryRun      bool
	Pseudonyms  []*Pseudonym
	Report      Report
	CreatedAt   time.Time
}

// PrefixReport records how many pseudonyms were requested and actually
// generated for one prefix in a run.
type PrefixReport struct {
	Prefix    string
	Requested int
	Generated int
}

// Fulfilled reports whether the prefix received its full quota.
func (r PrefixReport) Fulfilled() bool {
	return r.Generated >= r.Requested
}

// Report is the per-prefix fulfillment report of a generation run, in the
// prefix order of the generation spec.
type Report []PrefixReport

// Fulfilled reports whether every prefix received its full quota. A false
// value means the candidate space was exhausted before all quotas were met.
func (r Report) Fulfilled() bool {
	for _, pr := range r {
		if !pr.Fulfilled() {
			return false
		}
	}
	return true
}

// Unfulfilled returns the entries whose quota was not met.
func (r Report) Unfulfilled() []PrefixReport {
	var out []PrefixReport
	for _, pr := range r {
		if !pr.Fulfilled() {
			out = append(out, pr)
		}
	}
	return out
}
