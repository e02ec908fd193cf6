package database_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcanum/internal/database"
	"arcanum/internal/database/repository"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))
	return db
}

func TestWithTxCommits(t *testing.T) {
	db := testDB(t)

	err := database.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO notes(id, subject, body, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), "7", "kept", database.Now().Format(time.RFC3339), database.Now().Format(time.RFC3339))
		return err
	})
	require.NoError(t, err)

	notes, err := repository.NewNoteRepo(db).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := testDB(t)
	boom := errors.New("boom")

	err := database.WithTx(db, func(tx *sql.Tx) error {
		_, execErr := tx.Exec(`INSERT INTO notes(id, subject, body, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), "7", "doomed", database.Now().Format(time.RFC3339), database.Now().Format(time.RFC3339))
		require.NoError(t, execErr)
		return boom
	})
	require.ErrorIs(t, err, boom)

	notes, err := repository.NewNoteRepo(db).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes, "failed transaction must leave no rows behind")
}

func TestPurgeClearsAllTables(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	now := database.Now()

	require.NoError(t, repository.NewWindowStateRepo(db).Put(ctx, repository.WindowState{
		Key: "panels/calculator", W: 40, H: 12, Visible: true, UpdatedAt: now,
	}))
	require.NoError(t, repository.NewNoteRepo(db).Upsert(ctx, repository.Note{
		ID: uuid.NewString(), Subject: "93", Body: "thelema", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, repository.NewAnnotationRepo(db).Add(ctx, repository.Annotation{
		ID: uuid.NewString(), DocPath: "emerald.md", Body: "as above", CreatedAt: now,
	}))

	require.NoError(t, database.Purge(db))

	states, err := repository.NewWindowStateRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, states)

	notes, err := repository.NewNoteRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	anns, err := repository.NewAnnotationRepo(db).ByDoc(ctx, "emerald.md")
	require.NoError(t, err)
	assert.Empty(t, anns)
}
