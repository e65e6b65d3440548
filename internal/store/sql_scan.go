package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/court-fund/models"
	"github.com/mattn/go-sqlite3"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// timestamp scans a time column returned either as time.Time or as text.
// SQLite only converts columns with a declared time type, so expression
// results such as RETURNING columns may arrive as strings.
type timestamp struct {
	Time  time.Time
	Valid bool
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v, true
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp value %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time, t.Valid = parsed, true
			return nil
		}
	}
	return fmt.Errorf("unparsable timestamp %q", s)
}

func (t timestamp) ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		role      string
		createdAt timestamp
	)
	if err := row.Scan(&user.UserID, &user.Login, &user.Name, &user.PasswordHash, &role, &createdAt); err != nil {
		return models.User{}, err
	}
	user.Role = models.Role(role)
	user.CreatedAt = createdAt.Time

	return user, nil
}

func scanFund(row rowScanner) (models.Fund, error) {
	var (
		fund                 models.Fund
		createdAt, updatedAt timestamp
	)
	if err := row.Scan(&fund.ID, &fund.AdminID, &fund.Balance, &createdAt, &updatedAt); err != nil {
		return models.Fund{}, err
	}
	fund.CreatedAt = createdAt.Time
	fund.UpdatedAt = updatedAt.Time

	return fund, nil
}

func scanServiceFee(row rowScanner) (models.ServiceFee, error) {
	var (
		fee                          models.ServiceFee
		month                        *string
		status                       string
		dueDate, paidDate, createdAt timestamp
	)
	if err := row.Scan(&fee.ID, &fee.CourtID, &fee.Amount, &month, &status, &dueDate, &paidDate, &createdAt); err != nil {
		return models.ServiceFee{}, err
	}
	if month != nil {
		fee.Month = *month
	}
	fee.Status = models.FeeStatus(status)
	fee.DueDate = dueDate.Time
	fee.PaidDate = paidDate.ptr()
	fee.CreatedAt = createdAt.Time

	return fee, nil
}
