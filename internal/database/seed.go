package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/clockboard/internal/database/repository"
)

// SeedDefaults gives a fresh database its first dashboard: a digital
// clock over a date line. It is idempotent and safe to run on every
// startup; any existing dashboard (including renamed ones) disables
// the seed.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	dashRepo := repository.NewDashboardRepo(db)
	existing, err := dashRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	home := repository.Dashboard{
		ID:      seedID("dashboard:home"),
		Name:    "Home",
		Columns: 1,
	}
	if err := dashRepo.Create(ctx, home); err != nil {
		return err
	}

	instRepo := repository.NewInstanceRepo(db)
	seedInstances := []repository.Instance{
		{
			ID:          seedID("widget:home:clock"),
			DashboardID: home.ID,
			Kind:        "digital",
			Position:    0,
		},
		{
			ID:          seedID("widget:home:date"),
			DashboardID: home.ID,
			Kind:        "datetext",
			Position:    1,
			Options:     map[string]string{"preset": "full"},
		},
	}
	for _, inst := range seedInstances {
		if err := instRepo.Insert(ctx, inst); err != nil {
			return err
		}
	}
	return nil
}

// seedID derives a stable UUID from a fixed name, so reseeding never
// duplicates rows.
func seedID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
