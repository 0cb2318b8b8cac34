package repo

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound so callers can use either sentinel.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates a uniqueness violation on insert.
var ErrDuplicate = errors.New("duplicate")

// Fault classifies a raw store error independently of the driver in use.
type Fault int

const (
	// FaultNone is reported for a nil error.
	FaultNone Fault = iota
	// FaultInvalidInput is a value the store could not coerce to the column
	// type (PostgreSQL 22P02, SQLite "datatype mismatch").
	FaultInvalidInput
	// FaultNotNull is a NOT NULL violation (23502).
	FaultNotNull
	// FaultForeignKey is a foreign key violation (23503).
	FaultForeignKey
	// FaultUnique is a uniqueness violation (23505).
	FaultUnique
	// FaultUnknown is anything else: connectivity, syntax, cancellation...
	FaultUnknown
)

// String returns the metric/log label for f.
func (f Fault) String() string {
	switch f {
	case FaultNone:
		return "none"
	case FaultInvalidInput:
		return "invalid_input"
	case FaultNotNull:
		return "not_null"
	case FaultForeignKey:
		return "foreign_key"
	case FaultUnique:
		return "unique"
	default:
		return "unknown"
	}
}

// PostgreSQL SQLSTATE codes we discriminate on.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

// Classify maps err to a Fault. PostgreSQL errors are matched on their
// SQLSTATE; SQLite (glebarez) reports constraint failures as plain text, so
// those are matched on the message like CreateIdempotency does.
func Classify(err error) Fault {
	if err == nil {
		return FaultNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			return FaultInvalidInput
		case pgNotNullViolation:
			return FaultNotNull
		case pgForeignKeyViolation:
			return FaultForeignKey
		case pgUniqueViolation:
			return FaultUnique
		}
		return FaultUnknown
	}

	switch {
	case errors.Is(err, ErrDuplicate), errors.Is(err, gorm.ErrDuplicatedKey):
		return FaultUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return FaultForeignKey
	}

	low := strings.ToLower(err.Error())
	switch {
	case strings.Contains(low, "datatype mismatch"):
		return FaultInvalidInput
	case strings.Contains(low, "not null constraint failed"):
		return FaultNotNull
	case strings.Contains(low, "foreign key constraint failed"):
		return FaultForeignKey
	case strings.Contains(low, "unique constraint failed"),
		strings.Contains(low, "constraint failed: unique"):
		return FaultUnique
	}
	return FaultUnknown
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool { return Classify(err) == FaultForeignKey }

// IsUniqueViolation reports whether err is a uniqueness violation.
func IsUniqueViolation(err error) bool { return Classify(err) == FaultUnique }
