package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rlink7/rlink-pseudonym/internal/database"
	apperrors "github.com/rlink7/rlink-pseudonym/internal/errors"
	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/domain"
)

// MySQLPseudonymRepository implements pseudonym persistence for MySQL databases.
type MySQLPseudonymRepository struct {
	db *sql.DB
}

// NewMySQLPseudonymRepository creates a new MySQL pseudonym repository instance.
func NewMySQLPseudonymRepository(db *sql.DB) *MySQLPseudonymRepository {
	return &MySQLPseudonymRepository{db: db}
}

// CreateBatch inserts a batch row and all its pseudonyms.
// Callers are expected to run this inside a TxManager transaction so the
// batch becomes visible atomically.
func (m *MySQLPseudonymRepository) CreateBatch(ctx context.Context, batch *domain.Batch) error {
	querier := database.GetTx(ctx, m.db)

	reportJSON, err := json.Marshal(batch.Report)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal batch report")
	}

	batchQuery := `INSERT INTO batches (id, digits, min_distance, report, created_at)
				   VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		batchQuery,
		batch.ID,
		batch.Digits,
		batch.MinDistance,
		reportJSON,
		batch.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create batch")
	}

	pseudonymQuery := `INSERT INTO pseudonyms (id, batch_id, prefix, code, value, created_at)
					   VALUES (?, ?, ?, ?, ?, ?)`

	for _, pseudonym := range batch.Pseudonyms {
		_, err := querier.ExecContext(
			ctx,
			pseudonymQuery,
			pseudonym.ID,
			pseudonym.BatchID,
			pseudonym.Prefix,
			pseudonym.Code,
			pseudonym.Value,
			pseudonym.CreatedAt,
		)
		if err != nil {
			// Check for unique constraint violation (duplicate code)
			if isMySQLUniqueViolation(err) {
				return domain.ErrCodeAlreadyIssued
			}
			return apperrors.Wrap(err, "failed to create pseudonym")
		}
	}

	return nil
}

// ListCodes returns the set of every issued code across all batches.
func (m *MySQLPseudonymRepository) ListCodes(ctx context.Context) (map[string]struct{}, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT code FROM pseudonyms`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list codes")
	}
	defer func() {
		_ = rows.Close()
	}()

	codes := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan code")
		}
		codes[code] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating codes")
	}

	return codes, nil
}

// List retrieves pseudonyms ordered by creation time descending with pagination.
func (m *MySQLPseudonymRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Pseudonym, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, batch_id, prefix, code, value, created_at
			  FROM pseudonyms
			  ORDER BY created_at DESC, value ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list pseudonyms")
	}
	defer func() {
		_ = rows.Close()
	}()

	var pseudonyms []*domain.Pseudonym
	for rows.Next() {
		var pseudonym domain.Pseudonym
		err := rows.Scan(
			&pseudonym.ID,
			&pseudonym.BatchID,
			&pseudonym.Prefix,
			&pseudonym.Code,
			&pseudonym.Value,
			&pseudonym.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan pseudonym")
		}
		pseudonyms = append(pseudonyms, &pseudonym)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating pseudonyms")
	}

	if pseudonyms == nil {
		pseudonyms = make([]*domain.Pseudonym, 0)
	}

	return pseudonyms, nil
}

// GetByValue retrieves a pseudonym by its full value (prefix + code).
func (m *MySQLPseudonymRepository) GetByValue(
	ctx context.Context,
	value string,
) (*domain.Pseudonym, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, batch_id, prefix, code, value, created_at
			  FROM pseudonyms
			  WHERE value = ?`

	var pseudonym domain.Pseudonym
	err := querier.QueryRowContext(ctx, query, value).Scan(
		&pseudonym.ID,
		&pseudonym.BatchID,
		&pseudonym.Prefix,
		&pseudonym.Code,
		&pseudonym.Value,
		&pseudonym.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPseudonymNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get pseudonym by value")
	}

	return &pseudonym, nil
}

// CountByPrefix counts issued pseudonyms for a prefix.
func (m *MySQLPseudonymRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM pseudonyms WHERE prefix = ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, prefix).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count pseudonyms by prefix")
	}

	return count, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	// MySQL: "Error 1062: Duplicate entry"
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "error 1062") || strings.Contains(errMsg, "duplicate entry")
}
