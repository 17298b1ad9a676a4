package migration

import (
	"context"

	"github.com/fieldgridlabs/fieldgrid/pkg/db"
	"go.uber.org/fx"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(h *db.Handle) error {
		conn, err := h.Acquire(context.Background())
		if err != nil {
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
