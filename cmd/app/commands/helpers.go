// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/rlink7/rlink-pseudonym/internal/app"
	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// parsePrefixQuotas converts "prefix:count" pairs into prefix quotas.
// Returns an error if a pair is malformed or the count is not a positive integer.
func parsePrefixQuotas(pairs []string) ([]domain.PrefixQuota, error) {
	quotas := make([]domain.PrefixQuota, 0, len(pairs))

	for _, pair := range pairs {
		prefix, countStr, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid prefix quota %q (expected prefix:count, e.g. 1000:50)", pair)
		}

		count, err := strconv.Atoi(countStr)
		if err != nil || count < 1 {
			return nil, fmt.Errorf("invalid count in prefix quota %q (expected a positive integer)", pair)
		}

		quotas = append(quotas, domain.PrefixQuota{
			Prefix: strings.TrimSpace(prefix),
			Count:  count,
		})
	}

	return quotas, nil
}
