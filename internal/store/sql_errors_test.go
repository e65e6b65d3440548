package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want violation
	}{
		{"nil", nil, noViolation},
		{"plain error", errors.New("boom"), noViolation},
		{"pg unique", pgError(pgerrcode.UniqueViolation), uniqueViolation},
		{"pg check wrapped", fmt.Errorf("insert: %w", pgError(pgerrcode.CheckViolation)), checkViolation},
		{"pg foreign key", pgError(pgerrcode.ForeignKeyViolation), foreignKeyViolation},
		{"pg not null", pgError(pgerrcode.NotNullViolation), notNullViolation},
		{"pg numeric overflow", pgError(pgerrcode.NumericValueOutOfRange), rangeViolation},
		{"pg deadlock", pgError(pgerrcode.DeadlockDetected), noViolation},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, uniqueViolation},
		{"sqlite foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, foreignKeyViolation},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, notNullViolation},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, noViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constraintViolation(tt.err))
		})
	}
}

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.SerializationFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.TooManyConnections, Retryable},
		{pgerrcode.QueryCanceled, NonRetryable},
		{pgerrcode.CheckViolation, NonRetryable},
		{pgerrcode.UndefinedTable, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestErrorClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	assert.Equal(t, Retryable, pg.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, NonRetryable, pg.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, pg.Classify(nil))

	lite := NewSQLiteErrorClassifier()
	assert.Equal(t, Retryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, lite.Classify(errors.New("boom")))
}

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		src       any
		wantValid bool
		wantErr   bool
	}{
		{name: "nil", src: nil},
		{name: "time", src: want, wantValid: true},
		{name: "sqlite text", src: "2025-06-30 12:00:00+00:00", wantValid: true},
		{name: "sqlite bytes", src: []byte("2025-06-30T12:00:00+00:00"), wantValid: true},
		{name: "garbage", src: "yesterday", wantErr: true},
		{name: "unsupported", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts timestamp
			err := ts.Scan(tt.src)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, ts.Valid)
			if tt.wantValid {
				assert.True(t, ts.Time.Equal(want))
				require.NotNil(t, ts.ptr())
			} else {
				assert.Nil(t, ts.ptr())
			}
		})
	}
}
