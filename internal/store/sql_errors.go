package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// violation is the kind of integrity constraint a statement broke.
type violation int

const (
	noViolation violation = iota
	uniqueViolation
	checkViolation
	foreignKeyViolation
	notNullViolation
	rangeViolation
)

// rangeConstraintSuffix marks SQLite CHECK constraints that emulate the
// Postgres NUMERIC(14,2) limit, e.g. funds_balance_range.
const rangeConstraintSuffix = "_range"

func (v violation) String() string {
	switch v {
	case uniqueViolation:
		return "unique"
	case checkViolation:
		return "check"
	case foreignKeyViolation:
		return "foreign key"
	case notNullViolation:
		return "not null"
	case rangeViolation:
		return "range"
	default:
		return "none"
	}
}

// constraintViolation reports which integrity constraint err violated,
// for both the pgx and the sqlite3 driver.
func constraintViolation(err error) violation {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return uniqueViolation
	case pgerrcode.CheckViolation:
		return checkViolation
	case pgerrcode.ForeignKeyViolation:
		return foreignKeyViolation
	case pgerrcode.NotNullViolation:
		return notNullViolation
	case pgerrcode.NumericValueOutOfRange:
		return rangeViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueViolation
		case sqlite3.ErrConstraintCheck:
			if strings.Contains(liteErr.Error(), rangeConstraintSuffix) {
				return rangeViolation
			}
			return checkViolation
		case sqlite3.ErrConstraintForeignKey:
			return foreignKeyViolation
		case sqlite3.ErrConstraintNotNull:
			return notNullViolation
		}
	}

	return noViolation
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
