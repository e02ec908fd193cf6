package repository

import "time"

// WindowState represents a persisted surface placement row. Key is the
// namespaced surface key, e.g. "panels/calculator" or "mainWindow".
type WindowState struct {
	Key       string
	X         int
	Y         int
	W         int
	H         int
	Visible   bool
	Floating  bool
	Extra     *string
	UpdatedAt time.Time
}

// Note represents a saved note row. Subject groups notes, e.g. the number
// a numerology note is about.
type Note struct {
	ID        string
	Subject   string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Annotation represents a remark attached to a document line.
type Annotation struct {
	ID        string
	DocPath   string
	Line      int
	Body      string
	CreatedAt time.Time
}
