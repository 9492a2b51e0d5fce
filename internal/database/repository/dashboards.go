package repository

import (
	"context"
	"database/sql"
)

// DashboardRepo handles dashboards.
type DashboardRepo struct {
	db *sql.DB
}

func NewDashboardRepo(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) Create(ctx context.Context, d Dashboard) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO dashboards(id, name, columns, position)
	VALUES (?, ?, ?, ?);
	`, d.ID, d.Name, d.Columns, d.Position)
	return err
}

func (r *DashboardRepo) List(ctx context.Context) ([]Dashboard, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, columns, position, created_at, updated_at
	FROM dashboards ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Dashboard
	for rows.Next() {
		var d Dashboard
		if err := rows.Scan(&d.ID, &d.Name, &d.Columns, &d.Position, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) Get(ctx context.Context, id string) (Dashboard, error) {
	var d Dashboard
	err := r.db.QueryRowContext(ctx, `
	SELECT id, name, columns, position, created_at, updated_at
	FROM dashboards WHERE id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Columns, &d.Position, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *DashboardRepo) Rename(ctx context.Context, id, name string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE dashboards SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, name, id)
	return err
}

func (r *DashboardRepo) SetColumns(ctx context.Context, id string, columns int) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE dashboards SET columns = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, columns, id)
	return err
}

// Reorder persists a new tab order: each dashboard's position becomes
// its index in ids. Dashboards not listed keep their position.
func (r *DashboardRepo) Reorder(ctx context.Context, ids []string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for i, id := range ids {
			if _, err := tx.ExecContext(ctx, `
			UPDATE dashboards SET position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, i, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the dashboard; its widget instances go with it via
// the foreign key cascade.
func (r *DashboardRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dashboards WHERE id = ?`, id)
	return err
}
