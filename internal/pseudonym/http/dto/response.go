package dto

import (
	"time"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

// PseudonymResponse represents a single issued pseudonym.
type PseudonymResponse struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	Prefix    string    `json:"prefix"`
	Code      string    `json:"code"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// PrefixReportResponse represents the fulfillment of one prefix quota.
type PrefixReportResponse struct {
	Prefix    string `json:"prefix"`
	Requested int    `json:"requested"`
	Generated int    `json:"generated"`
	Fulfilled bool   `json:"fulfilled"`
}

// BatchResponse represents the result of a generation run.
type BatchResponse struct {
	ID          string                 `json:"id"`
	Digits      int                    `json:"digits"`
	MinDistance int                    `json:"min_distance"`
	DryRun      bool                   `json:"dry_run"`
	Fulfilled   bool                   `json:"fulfilled"`
	Report      []PrefixReportResponse `json:"report"`
	Pseudonyms  []PseudonymResponse    `json:"pseudonyms"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ListPseudonymsResponse represents the response for listing pseudonyms.
type ListPseudonymsResponse struct {
	Data []PseudonymResponse `json:"data"`
}

// MapPseudonymToResponse maps a Pseudonym domain entity to a PseudonymResponse DTO.
func MapPseudonymToResponse(pseudonym *domain.Pseudonym) PseudonymResponse {
	return PseudonymResponse{
		ID:        pseudonym.ID.String(),
		BatchID:   pseudonym.BatchID.String(),
		Prefix:    pseudonym.Prefix,
		Code:      pseudonym.Code,
		Value:     pseudonym.Value,
		CreatedAt: pseudonym.CreatedAt,
	}
}

// MapBatchToResponse maps a Batch domain entity to a BatchResponse DTO.
// Returns empty lists instead of null when there are no items to match API conventions.
func MapBatchToResponse(batch *domain.Batch) BatchResponse {
	report := make([]PrefixReportResponse, 0, len(batch.Report))
	for _, pr := range batch.Report {
		report = append(report, PrefixReportResponse{
			Prefix:    pr.Prefix,
			Requested: pr.Requested,
			Generated: pr.Generated,
			Fulfilled: pr.Fulfilled(),
		})
	}

	pseudonyms := make([]PseudonymResponse, 0, len(batch.Pseudonyms))
	for _, p := range batch.Pseudonyms {
		pseudonyms = append(pseudonyms, MapPseudonymToResponse(p))
	}

	return BatchResponse{
		ID:          batch.ID.String(),
		Digits:      batch.Digits,
		MinDistance: batch.MinDistance,
		DryRun:      batch.DryRun,
		Fulfilled:   batch.Report.Fulfilled(),
		Report:      report,
		Pseudonyms:  pseudonyms,
		CreatedAt:   batch.CreatedAt,
	}
}

// MapPseudonymsToListResponse maps a slice of Pseudonym domain entities to a ListPseudonymsResponse DTO.
// Returns an empty list instead of null when there are no items to match API conventions.
func MapPseudonymsToListResponse(pseudonyms []*domain.Pseudonym) ListPseudonymsResponse {
	items := make([]PseudonymResponse, 0, len(pseudonyms))
	for _, p := range pseudonyms {
		items = append(items, MapPseudonymToResponse(p))
	}

	return ListPseudonymsResponse{
		Data: items,
	}
}
