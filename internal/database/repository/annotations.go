package repository

import (
	"context"
	"database/sql"
	"time"
)

// AnnotationRepo handles document annotations.
type AnnotationRepo struct {
	db *sql.DB
}

func NewAnnotationRepo(db *sql.DB) *AnnotationRepo { return &AnnotationRepo{db: db} }

func (r *AnnotationRepo) Add(ctx context.Context, a Annotation) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO annotations(id, doc_path, line, body, created_at)
	VALUES (?, ?, ?, ?, ?);
	`, a.ID, a.DocPath, a.Line, a.Body, a.CreatedAt.Format(time.RFC3339))
	return err
}

func (r *AnnotationRepo) ByDoc(ctx context.Context, docPath string) ([]Annotation, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, doc_path, line, body, created_at
	FROM annotations WHERE doc_path = ? ORDER BY line, created_at`, docPath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Annotation
	for rows.Next() {
		var a Annotation
		var created string
		if err := rows.Scan(&a.ID, &a.DocPath, &a.Line, &a.Body, &created); err != nil {
			return nil, err
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnnotationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM annotations WHERE id = ?`, id)
	return err
}
