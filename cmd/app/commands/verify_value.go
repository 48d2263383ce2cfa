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

// RunVerifyValue verifies a pseudonym value and looks up its issuance record.
// The check digit is validated before the database lookup, so a mistyped value
// fails fast without touching storage.
//
// Requirements: Database must be migrated and accessible.
func RunVerifyValue(
	ctx context.Context,
	generationUseCase usecase.GenerationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	value string,
	format string,
) error {
	logger.Info("verifying pseudonym value")

	pseudonym, err := generationUseCase.Verify(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to verify pseudonym: %w", err)
	}

	if format == "json" {
		outputPseudonymJSON(writer, pseudonym)
	} else {
		outputPseudonymText(writer, pseudonym)
	}

	logger.Info("pseudonym verified",
		slog.String("id", pseudonym.ID.String()),
		slog.String("batch_id", pseudonym.BatchID.String()),
	)

	return nil
}

// outputPseudonymText outputs the pseudonym in human-readable text format.
func outputPseudonymText(writer io.Writer, pseudonym *domain.Pseudonym) {
	fmt.Fprintf(writer, "Valid pseudonym: %s\n", pseudonym.Value)
	fmt.Fprintf(writer, "  prefix:     %s\n", pseudonym.Prefix)
	fmt.Fprintf(writer, "  batch:      %s\n", pseudonym.BatchID)
	fmt.Fprintf(writer, "  created at: %s\n", pseudonym.CreatedAt.Format("2006-01-02 15:04:05 MST"))
}

// outputPseudonymJSON outputs the pseudonym in JSON format for machine consumption.
func outputPseudonymJSON(writer io.Writer, pseudonym *domain.Pseudonym) {
	result := map[string]interface{}{
		"id":         pseudonym.ID.String(),
		"batch_id":   pseudonym.BatchID.String(),
		"prefix":     pseudonym.Prefix,
		"value":      pseudonym.Value,
		"created_at": pseudonym.CreatedAt,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(writer, string(jsonBytes))
}
