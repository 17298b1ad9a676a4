package db

import (
	"context"

	"go.uber.org/fx"
)

var Module = fx.Module("db",
	fx.Provide(NewHandle),
	fx.Invoke(func(lc fx.Lifecycle, h *Handle) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				// Warm the connection eagerly; a failure here is logged but
				// not fatal, later requests retry through Acquire.
				_, _ = h.Acquire(ctx)
				return nil
			},
			OnStop: func(context.Context) error {
				return h.Close()
			},
		})
	}),
)
