package repository

import (
	"context"
	"database/sql"
	"time"
)

// NoteRepo handles saved notes.
type NoteRepo struct {
	db *sql.DB
}

func NewNoteRepo(db *sql.DB) *NoteRepo { return &NoteRepo{db: db} }

func (r *NoteRepo) Upsert(ctx context.Context, n Note) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO notes(id, subject, body, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		subject=excluded.subject, body=excluded.body, updated_at=excluded.updated_at;
	`, n.ID, n.Subject, n.Body,
		n.CreatedAt.Format(time.RFC3339), n.UpdatedAt.Format(time.RFC3339))
	return err
}

func (r *NoteRepo) BySubject(ctx context.Context, subject string) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, subject, body, created_at, updated_at
	FROM notes WHERE subject = ? ORDER BY created_at`, subject)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotes(rows)
}

func (r *NoteRepo) List(ctx context.Context) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, subject, body, created_at, updated_at
	FROM notes ORDER BY subject, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotes(rows)
}

func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	return err
}

func collectNotes(rows *sql.Rows) ([]Note, error) {
	var out []Note
	for rows.Next() {
		var n Note
		var created, updated string
		if err := rows.Scan(&n.ID, &n.Subject, &n.Body, &created, &updated); err != nil {
			return nil, err
		}
		n.CreatedAt, _ = time.Parse(time.RFC3339, created)
		n.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		out = append(out, n)
	}
	return out, rows.Err()
}
