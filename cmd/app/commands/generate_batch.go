package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/usecase"
)

// RunGenerateBatch generates a batch of pseudonyms for the given prefix quotas.
// Supports dry-run mode to preview generation without persisting and both
// text/JSON output formats. Prefix quotas are served in the order given; when
// the candidate space runs out, the shortfall is reported per prefix.
//
// Requirements: Database must be migrated and accessible.
func RunGenerateBatch(
	ctx context.Context,
	generationUseCase usecase.GenerationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	prefixPairs []string,
	digits int,
	minDistance int,
	dryRun bool,
	format string,
) error {
	quotas, err := parsePrefixQuotas(prefixPairs)
	if err != nil {
		return err
	}

	logger.Info("generating pseudonym batch",
		slog.Int("prefix_count", len(quotas)),
		slog.Int("digits", digits),
		slog.Int("min_distance", minDistance),
		slog.Bool("dry_run", dryRun),
	)

	spec := &domain.GenerationSpec{
		Prefixes:    quotas,
		Digits:      digits,
		MinDistance: minDistance,
	}

	batch, err := generationUseCase.GenerateBatch(ctx, spec, dryRun)
	if err != nil {
		return fmt.Errorf("failed to generate batch: %w", err)
	}

	if !batch.Report.Fulfilled() {
		logger.Warn("candidate space exhausted before all quotas were met",
			slog.String("batch_id", batch.ID.String()),
			slog.Any("unfulfilled_prefixes", batch.Report.Unfulfilled()),
		)
	}

	if format == "json" {
		outputBatchJSON(writer, batch)
	} else {
		outputBatchText(writer, batch)
	}

	logger.Info("batch generation completed",
		slog.String("batch_id", batch.ID.String()),
		slog.Int("pseudonym_count", len(batch.Pseudonyms)),
		slog.Bool("fulfilled", batch.Report.Fulfilled()),
	)

	return nil
}

// outputBatchText outputs the batch in human-readable text format.
func outputBatchText(writer io.Writer, batch *domain.Batch) {
	if batch.DryRun {
		fmt.Fprintf(writer, "Dry-run mode: batch %s (not persisted)\n", batch.ID)
	} else {
		fmt.Fprintf(writer, "Batch %s\n", batch.ID)
	}

	for _, entry := range batch.Report {
		status := "fulfilled"
		if !entry.Fulfilled() {
			status = "SHORT"
		}
		fmt.Fprintf(writer, "  prefix %s: %d/%d %s\n", entry.Prefix, entry.Generated, entry.Requested, status)
	}

	for _, pseudonym := range batch.Pseudonyms {
		fmt.Fprintln(writer, pseudonym.Value)
	}
}

// outputBatchJSON outputs the batch in JSON format for machine consumption.
func outputBatchJSON(writer io.Writer, batch *domain.Batch) {
	values := make([]string, 0, len(batch.Pseudonyms))
	for _, pseudonym := range batch.Pseudonyms {
		values = append(values, pseudonym.Value)
	}

	report := make([]map[string]interface{}, 0, len(batch.Report))
	for _, entry := range batch.Report {
		report = append(report, map[string]interface{}{
			"prefix":    entry.Prefix,
			"requested": entry.Requested,
			"generated": entry.Generated,
			"fulfilled": entry.Fulfilled(),
		})
	}

	result := map[string]interface{}{
		"batch_id":  batch.ID.String(),
		"dry_run":   batch.DryRun,
		"fulfilled": batch.Report.Fulfilled(),
		"report":    report,
		"values":    values,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(writer, string(jsonBytes))
}
