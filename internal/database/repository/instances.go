package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// InstanceRepo handles widget instances.
type InstanceRepo struct {
	db *sql.DB
}

func NewInstanceRepo(db *sql.DB) *InstanceRepo {
	return &InstanceRepo{db: db}
}

func (r *InstanceRepo) Insert(ctx context.Context, inst Instance) error {
	opts, err := encodeOptions(inst.Options)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO widget_instances(id, dashboard_id, kind, position, options)
	VALUES (?, ?, ?, ?, ?);
	`, inst.ID, inst.DashboardID, inst.Kind, inst.Position, opts)
	return err
}

func (r *InstanceRepo) ListByDashboard(ctx context.Context, dashboardID string) ([]Instance, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, dashboard_id, kind, position, options, created_at, updated_at
	FROM widget_instances WHERE dashboard_id = ? ORDER BY position, created_at`, dashboardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Instance
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, rows.Err()
}

func (r *InstanceRepo) Get(ctx context.Context, id string) (Instance, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, dashboard_id, kind, position, options, created_at, updated_at
	FROM widget_instances WHERE id = ?`, id)
	return scanInstance(row)
}

// UpdateOptions replaces the stored option set wholesale; options are
// small and the schema form always submits the complete map.
func (r *InstanceRepo) UpdateOptions(ctx context.Context, id string, options map[string]string) error {
	opts, err := encodeOptions(options)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
	UPDATE widget_instances SET options = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, opts, id)
	return err
}

// Move re-homes an instance onto another dashboard, appending it
// after that dashboard's existing widgets.
func (r *InstanceRepo) Move(ctx context.Context, id, dashboardID string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var next int
		if err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position)+1, 0)
		FROM widget_instances WHERE dashboard_id = ?`, dashboardID).Scan(&next); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
		UPDATE widget_instances SET dashboard_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, dashboardID, next, id)
		return err
	})
}

// Reorder persists a new grid order within one dashboard: each
// instance's position becomes its index in ids.
func (r *InstanceRepo) Reorder(ctx context.Context, ids []string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for i, id := range ids {
			if _, err := tx.ExecContext(ctx, `
			UPDATE widget_instances SET position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, i, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *InstanceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM widget_instances WHERE id = ?`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstance(row rowScanner) (Instance, error) {
	var inst Instance
	var opts string
	if err := row.Scan(&inst.ID, &inst.DashboardID, &inst.Kind, &inst.Position, &opts,
		&inst.CreatedAt, &inst.UpdatedAt); err != nil {
		return Instance{}, err
	}
	options, err := decodeOptions(opts)
	if err != nil {
		return Instance{}, fmt.Errorf("instance %s: %w", inst.ID, err)
	}
	inst.Options = options
	return inst, nil
}

func encodeOptions(m map[string]string) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode options: %w", err)
	}
	return string(b), nil
}

func decodeOptions(s string) (map[string]string, error) {
	if s == "" || s == "{}" {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return m, nil
}
