package store

import (
	"database/sql"
	"strings"
	"time"

	"github.com/MKhiriev/court-fund/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

var (
	userColumns       = []string{"user_id", "login", "name", "password_hash", "role", "created_at"}
	fundColumns       = []string{"fund_id", "admin_id", "balance", "created_at", "updated_at"}
	serviceFeeColumns = []string{"service_fee_id", "court_id", "amount", "month", "status", "due_date", "paid_date", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.Insert("users").
		Columns("login", "name", "password_hash", "role", "created_at").
		Values(user.Login, user.Name, user.PasswordHash, string(user.Role), now.UTC()).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
}

// ── funds ─────────────────────────────────────────────────────────────────────

func buildCreateFundQuery(b sq.StatementBuilderType, fund models.Fund, now time.Time) (string, []any, error) {
	return b.Insert("funds").
		Columns("admin_id", "balance", "created_at", "updated_at").
		Values(fund.AdminID, fund.Balance, now.UTC(), now.UTC()).
		Suffix(returning(fundColumns)).
		ToSql()
}

func buildSelectFundQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(fundColumns...).
		From("funds").
		Where(where).
		ToSql()
}

func buildListFundsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(fundColumns...).
		From("funds").
		OrderBy("fund_id").
		ToSql()
}

// buildAdjustBalanceQuery moves the balance by delta inside the UPDATE
// itself, so concurrent deposits and withdrawals never overwrite each other
// and the CHECK (balance >= 0) constraint rejects overdrafts. The sum is
// rounded to cents: SQLite keeps NUMERIC as REAL, and 0.3 - 0.1 would
// otherwise be 0.19999999999999998.
func buildAdjustBalanceQuery(b sq.StatementBuilderType, adminID int64, delta decimal.Decimal, now time.Time) (string, []any, error) {
	return b.Update("funds").
		Set("balance", sq.Expr("ROUND(balance + ?, 2)", delta)).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"admin_id": adminID}).
		Suffix(returning(fundColumns)).
		ToSql()
}

// ── service fees ──────────────────────────────────────────────────────────────

func buildCreateServiceFeeQuery(b sq.StatementBuilderType, fee models.ServiceFee, now time.Time) (string, []any, error) {
	return b.Insert("service_fees").
		Columns("court_id", "amount", "month", "status", "due_date", "paid_date", "created_at").
		Values(fee.CourtID, fee.Amount, nullString(fee.Month), string(fee.Status), fee.DueDate.UTC(), nullTime(fee.PaidDate), now.UTC()).
		Suffix(returning(serviceFeeColumns)).
		ToSql()
}

func buildSelectServiceFeeQuery(b sq.StatementBuilderType, feeID int64) (string, []any, error) {
	return b.Select(serviceFeeColumns...).
		From("service_fees").
		Where(sq.Eq{"service_fee_id": feeID}).
		ToSql()
}

// buildListServiceFeesQuery applies every non-zero field of filter as an
// AND condition. Results are ordered by due date, oldest first.
func buildListServiceFeesQuery(b sq.StatementBuilderType, filter models.ServiceFeeFilter) (string, []any, error) {
	query := b.Select(serviceFeeColumns...).From("service_fees")

	if filter.CourtID > 0 {
		query = query.Where(sq.Eq{"court_id": filter.CourtID})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Month != "" {
		query = query.Where(sq.Eq{"month": filter.Month})
	}
	if filter.DueBefore != nil {
		query = query.Where(sq.Lt{"due_date": filter.DueBefore.UTC()})
	}

	return query.OrderBy("due_date", "service_fee_id").ToSql()
}

func buildUpdateServiceFeeStatusQuery(b sq.StatementBuilderType, feeID int64, status models.FeeStatus, paidDate *time.Time) (string, []any, error) {
	return b.Update("service_fees").
		Set("status", string(status)).
		Set("paid_date", nullTime(paidDate)).
		Where(sq.Eq{"service_fee_id": feeID}).
		Suffix(returning(serviceFeeColumns)).
		ToSql()
}

func buildDeleteServiceFeeQuery(b sq.StatementBuilderType, feeID int64) (string, []any, error) {
	return b.Delete("service_fees").
		Where(sq.Eq{"service_fee_id": feeID}).
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
