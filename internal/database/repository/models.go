package repository

import "time"

// Dashboard is one tab of the board: a named grid with a column count
// and a stable position among its siblings.
type Dashboard struct {
	ID        string
	Name      string
	Columns   int
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Instance is one widget placed on a dashboard. Options holds the
// widget's configuration values, stored as a JSON object.
type Instance struct {
	ID          string
	DashboardID string
	Kind        string
	Position    int
	Options     map[string]string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
