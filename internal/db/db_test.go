package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTesting(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	err = db.Ping()
	assert.NoError(t, err)
}

func TestMigrationsApply(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	// Verify tables exist
	var tableName string

	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='residents'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "residents", tableName)

	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='movement_records'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "movement_records", tableName)
}

func TestMigrationsIdempotent(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	// Running again against an up-to-date database is a no-op.
	err = runMigrations(db)
	assert.NoError(t, err)
}
