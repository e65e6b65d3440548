// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first query goose issues fails
	err = Migrate(db, "pgx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

// Both dialects must ship the same migration versions.
func TestEmbeddedMigrations_SameVersions(t *testing.T) {
	pg, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	lite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, pg)
	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, strings.TrimPrefix(pg[i], "postgres/"), strings.TrimPrefix(lite[i], "sqlite/"))
	}
}

func TestEmbeddedMigrations_DeclareIndexes(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		t.Run(dir, func(t *testing.T) {
			funds, err := fs.ReadFile(embedMigrations, dir+"/00002_create_funds.sql")
			require.NoError(t, err)
			assert.Contains(t, string(funds), "idx_funds_admin_id")

			fees, err := fs.ReadFile(embedMigrations, dir+"/00003_create_service_fees.sql")
			require.NoError(t, err)
			for _, idx := range []string{"idx_service_fees_court_id", "idx_service_fees_status", "idx_service_fees_due_date"} {
				assert.Contains(t, string(fees), idx)
			}
		})
	}
}
