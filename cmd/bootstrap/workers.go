package bootstrap

import (
	"context"

	"consultbook/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("workers",
	fx.Provide(
		worker.NewSyncWorker,
		worker.NewReclaimer,
	),
	fx.Invoke(
		startSyncWorker,
		startReclaimer,
	),
)

func startSyncWorker(lc fx.Lifecycle, w *worker.SyncWorker) {
	runWorker(lc, w.Run)
}

func startReclaimer(lc fx.Lifecycle, r *worker.Reclaimer) {
	runWorker(lc, r.Run)
}

// runWorker ties a blocking Run loop to the fx lifecycle: the loop gets
// its own cancellable context and OnStop waits for it to drain.
func runWorker(lc fx.Lifecycle, run func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
