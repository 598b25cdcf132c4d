package components

import (
	"context"
	"log/slog"
	"time"

	"payconnect/internal/infra/memstore"
	"payconnect/internal/pkg/clock"
	"payconnect/internal/pkg/config"
	"payconnect/internal/usecase/commands"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config, clk clock.Clock) *memstore.PendingStore {
			return memstore.NewPendingStore(cfg.Store.PendingTTL, clk)
		},
		func(s *memstore.PendingStore) commands.PendingStore { return s },
		func(cfg config.Config) *memstore.SuppressionWindow {
			return memstore.NewSuppressionWindow(cfg.Store.SuppressionTTL)
		},
		func(w *memstore.SuppressionWindow) commands.SuppressionWindow { return w },
	),
	fx.Invoke(runStoreJanitor),
)

// runStoreJanitor sweeps expired pending entries for the life of the
// process and tears both in-memory stores down on shutdown.
func runStoreJanitor(lc fx.Lifecycle, cfg config.Config, store *memstore.PendingStore, window *memstore.SuppressionWindow) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Store.PendingSweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						if n := store.SweepExpired(); n > 0 {
							slog.Info("swept expired pending transactions", "dropped", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			window.Close()
			return nil
		},
	})
}
