package domain

import (
	"github.com/rlink7/rlink-pseudonym/internal/errors"
)

var (
	// ErrPseudonymNotFound indicates the pseudonym was not found.
	ErrPseudonymNotFound = errors.Wrap(errors.ErrNotFound, "pseudonym not found")

	// ErrBatchNotFound indicates the generation batch was not found.
	ErrBatchNotFound = errors.Wrap(errors.ErrNotFound, "batch not found")

	// ErrCodeAlreadyIssued indicates a code with the same value was already persisted.
	ErrCodeAlreadyIssued = errors.Wrap(errors.ErrConflict, "code already issued")

	// ErrInvalidDigits indicates the main-code length is out of the supported range.
	ErrInvalidDigits = errors.Wrap(errors.ErrInvalidInput, "digits out of supported range")

	// ErrInvalidMinDistance indicates a negative minimum distance was requested.
	ErrInvalidMinDistance = errors.Wrap(errors.ErrInvalidInput, "min distance must not be negative")

	// ErrNoPrefixes indicates the generation spec contains no prefixes.
	ErrNoPrefixes = errors.Wrap(errors.ErrInvalidInput, "at least one prefix is required")

	// ErrInvalidPrefix indicates a prefix is not a digit string.
	ErrInvalidPrefix = errors.Wrap(errors.ErrInvalidInput, "prefix must contain only digits")

	// ErrDuplicatePrefix indicates the same prefix appears twice in a generation spec.
	ErrDuplicatePrefix = errors.Wrap(errors.ErrInvalidInput, "duplicate prefix")

	// ErrInvalidQuota indicates a prefix quota is not a positive integer.
	ErrInvalidQuota = errors.Wrap(errors.ErrInvalidInput, "prefix quota must be positive")

	// ErrMalformedValue indicates a pseudonym value cannot be split into
	// prefix, main code and check digit.
	ErrMalformedValue = errors.Wrap(errors.ErrInvalidInput, "malformed pseudonym value")

	// ErrChecksumMismatch indicates the trailing check digit of a pseudonym
	// value does not match its payload.
	ErrChecksumMismatch = errors.Wrap(errors.ErrInvalidInput, "check digit mismatch")
)
