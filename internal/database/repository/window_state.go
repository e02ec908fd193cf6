package repository

import (
	"context"
	"database/sql"
	"time"
)

// WindowStateRepo handles persisted surface placements.
type WindowStateRepo struct {
	db *sql.DB
}

func NewWindowStateRepo(db *sql.DB) *WindowStateRepo { return &WindowStateRepo{db: db} }

func (r *WindowStateRepo) Put(ctx context.Context, s WindowState) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO window_state(key, x, y, w, h, visible, floating, extra, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		x=excluded.x, y=excluded.y, w=excluded.w, h=excluded.h,
		visible=excluded.visible, floating=excluded.floating,
		extra=excluded.extra, updated_at=excluded.updated_at;
	`, s.Key, s.X, s.Y, s.W, s.H, boolInt(s.Visible), boolInt(s.Floating), s.Extra,
		s.UpdatedAt.Format(time.RFC3339))
	return err
}

// Get returns nil when no row exists for key.
func (r *WindowStateRepo) Get(ctx context.Context, key string) (*WindowState, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT key, x, y, w, h, visible, floating, extra, updated_at
	FROM window_state WHERE key = ?`, key)
	return scanWindowState(row)
}

func (r *WindowStateRepo) List(ctx context.Context) ([]WindowState, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT key, x, y, w, h, visible, floating, extra, updated_at
	FROM window_state ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []WindowState
	for rows.Next() {
		s, err := scanWindowStateRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Reset clears all persisted placements. Surfaces come back at defaults on
// the next launch.
func (r *WindowStateRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM window_state`)
	return err
}

func scanWindowState(row *sql.Row) (*WindowState, error) {
	var s WindowState
	var visible, floating int
	var updated string
	if err := row.Scan(&s.Key, &s.X, &s.Y, &s.W, &s.H, &visible, &floating, &s.Extra, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.Visible = visible != 0
	s.Floating = floating != 0
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &s, nil
}

func scanWindowStateRows(rows *sql.Rows) (*WindowState, error) {
	var s WindowState
	var visible, floating int
	var updated string
	if err := rows.Scan(&s.Key, &s.X, &s.Y, &s.W, &s.H, &visible, &floating, &s.Extra, &updated); err != nil {
		return nil, err
	}
	s.Visible = visible != 0
	s.Floating = floating != 0
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &s, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
