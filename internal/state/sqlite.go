// Package state adapts the window_state repository to the shell's
// persistence interface.
package state

import (
	"context"
	"encoding/json"
	"fmt"

	"arcanum/core"
	"arcanum/internal/database"
	"arcanum/internal/database/repository"
)

const shellKey = "mainWindow"

// SQLiteStore persists surface placement through the window_state table.
type SQLiteStore struct {
	repo *repository.WindowStateRepo
}

func NewSQLiteStore(repo *repository.WindowStateRepo) *SQLiteStore {
	return &SQLiteStore{repo: repo}
}

func (s *SQLiteStore) Save(key string, rec core.StateRecord) error {
	return s.repo.Put(context.Background(), repository.WindowState{
		Key:       key,
		X:         rec.Geometry.X,
		Y:         rec.Geometry.Y,
		W:         rec.Geometry.W,
		H:         rec.Geometry.H,
		Visible:   rec.Visible,
		Floating:  rec.Floating,
		UpdatedAt: database.Now(),
	})
}

func (s *SQLiteStore) Load(key string) (core.StateRecord, bool, error) {
	row, err := s.repo.Get(context.Background(), key)
	if err != nil {
		return core.StateRecord{}, false, err
	}
	if row == nil {
		return core.StateRecord{}, false, nil
	}
	return core.StateRecord{
		Geometry: core.Geometry{X: row.X, Y: row.Y, W: row.W, H: row.H},
		Visible:  row.Visible,
		Floating: row.Floating,
	}, true, nil
}

// shellSnapshot is the JSON shape stored in the extra column of the
// reserved mainWindow row.
type shellSnapshot struct {
	ActiveTab int `json:"activeTab"`
	Width     int `json:"width"`
	Height    int `json:"height"`
}

// SaveShell stores the shell snapshot in the same table under a reserved
// key, serialized into the extra column. The geometry columns stay zero
// so the row cannot be mistaken for a surface placement.
func (s *SQLiteStore) SaveShell(rec core.ShellRecord) error {
	raw, err := json.Marshal(shellSnapshot{
		ActiveTab: rec.ActiveTab,
		Width:     rec.Width,
		Height:    rec.Height,
	})
	if err != nil {
		return fmt.Errorf("marshal shell snapshot: %w", err)
	}
	extra := string(raw)
	return s.repo.Put(context.Background(), repository.WindowState{
		Key:       shellKey,
		Visible:   true,
		Extra:     &extra,
		UpdatedAt: database.Now(),
	})
}

func (s *SQLiteStore) LoadShell() (core.ShellRecord, bool, error) {
	row, err := s.repo.Get(context.Background(), shellKey)
	if err != nil {
		return core.ShellRecord{}, false, err
	}
	if row == nil || row.Extra == nil {
		return core.ShellRecord{}, false, nil
	}
	var snap shellSnapshot
	if err := json.Unmarshal([]byte(*row.Extra), &snap); err != nil {
		return core.ShellRecord{}, false, fmt.Errorf("decode shell snapshot: %w", err)
	}
	return core.ShellRecord{ActiveTab: snap.ActiveTab, Width: snap.Width, Height: snap.Height}, true, nil
}
