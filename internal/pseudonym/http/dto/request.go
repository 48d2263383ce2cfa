// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
	customValidation "github.com/rlink7/rlink-pseudonym/internal/validation"
)

// PrefixQuotaRequest is one prefix/count pair of a generation request.
type PrefixQuotaRequest struct {
	Prefix string `json:"prefix"`
	Count  int    `json:"count"`
}

// Validate checks if the prefix quota is valid.
func (r PrefixQuotaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prefix,
			validation.Required,
			customValidation.NotBlank,
			customValidation.DigitString,
		),
		validation.Field(&r.Count,
			validation.Required,
			validation.Min(1),
		),
	)
}

// GenerateBatchRequest contains the parameters for generating a pseudonym batch.
// Digits and MinDistance fall back to server defaults when omitted; their
// bounds are enforced by the generation spec itself.
type GenerateBatchRequest struct {
	Prefixes    []PrefixQuotaRequest `json:"prefixes"`
	Digits      int                  `json:"digits"`
	MinDistance *int                 `json:"min_distance"`
	DryRun      bool                 `json:"dry_run"`
}

// Validate checks if the generate batch request is valid.
func (r *GenerateBatchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Prefixes,
			validation.Required,
			validation.Length(1, 0),
		),
	)
}

// ToGenerationSpec maps the request to a domain generation spec, applying the
// given defaults for omitted digits and min_distance.
func (r *GenerateBatchRequest) ToGenerationSpec(defaultDigits, defaultMinDistance int) *domain.GenerationSpec {
	digits := r.Digits
	if digits == 0 {
		digits = defaultDigits
	}

	minDistance := defaultMinDistance
	if r.MinDistance != nil {
		minDistance = *r.MinDistance
	}

	prefixes := make([]domain.PrefixQuota, 0, len(r.Prefixes))
	for _, pq := range r.Prefixes {
		prefixes = append(prefixes, domain.PrefixQuota{
			Prefix: pq.Prefix,
			Count:  pq.Count,
		})
	}

	return &domain.GenerationSpec{
		Prefixes:    prefixes,
		Digits:      digits,
		MinDistance: minDistance,
	}
}

// VerifyRequest contains the pseudonym value to verify.
type VerifyRequest struct {
	Value string `json:"value"`
}

// Validate checks if the verify request is valid.
func (r *VerifyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
			customValidation.DigitString,
		),
	)
}
