package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrFundAlreadyExists is returned when the admin already owns a fund.
	ErrFundAlreadyExists = errors.New("fund already exists for this admin")

	// ErrFundNotFound is returned when no fund matches the lookup.
	ErrFundNotFound = errors.New("fund not found")

	// ErrAdminNotFound is returned when a fund references a missing user.
	ErrAdminNotFound = errors.New("admin user not found")

	// ErrNegativeBalance is returned when a write would leave a fund balance
	// below zero.
	ErrNegativeBalance = errors.New("fund balance cannot be negative")

	// ErrBalanceOutOfRange is returned when a deposit would push the balance
	// past what NUMERIC(14,2) can hold.
	ErrBalanceOutOfRange = errors.New("fund balance exceeds the supported range")

	// ErrServiceFeeNotFound is returned when no service fee matches the ID.
	ErrServiceFeeNotFound = errors.New("service fee not found")

	// ErrInvalidServiceFee is returned when a service fee row breaks a table
	// constraint (negative amount, unknown status, missing required column).
	ErrInvalidServiceFee = errors.New("service fee violates table constraints")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDriver is returned by NewDB for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
