package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/usecase"
)

// RunPrefixStats reports how many pseudonyms have been issued under a prefix.
//
// Requirements: Database must be migrated and accessible.
func RunPrefixStats(
	ctx context.Context,
	generationUseCase usecase.GenerationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	prefix string,
	format string,
) error {
	logger.Info("counting issued pseudonyms", slog.String("prefix", prefix))

	count, err := generationUseCase.CountByPrefix(ctx, prefix)
	if err != nil {
		return fmt.Errorf("failed to count pseudonyms: %w", err)
	}

	if format == "json" {
		outputPrefixStatsJSON(writer, prefix, count)
	} else {
		fmt.Fprintf(writer, "Prefix %s: %d pseudonyms issued\n", prefix, count)
	}

	return nil
}

// outputPrefixStatsJSON outputs the prefix count in JSON format.
func outputPrefixStatsJSON(writer io.Writer, prefix string, count int64) {
	result := map[string]interface{}{
		"prefix": prefix,
		"issued": count,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(writer, string(jsonBytes))
}
