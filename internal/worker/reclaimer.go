package worker

import (
	"context"
	"log/slog"
	"time"

	"consultbook/internal/pkg/config"
	"consultbook/internal/usecase/commands"
)

// Reclaimer sweeps pending_payment bookings past the payment timeout
// and releases them, freeing the slot and refunding coupon usage.
type Reclaimer struct {
	release  commands.ReleaseCommands
	interval time.Duration
}

func NewReclaimer(release commands.ReleaseCommands, cfg config.SchedulingConfig) *Reclaimer {
	return &Reclaimer{
		release:  release,
		interval: cfg.ReclaimInterval,
	}
}

// Run blocks until ctx is cancelled.
func (r *Reclaimer) Run(ctx context.Context) {
	slog.Info("reclaimer started", "interval", r.interval.String())
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("reclaimer stopped")
			return
		case <-ticker.C:
			released, err := r.release.ReleaseExpired(ctx)
			if err != nil {
				slog.Error("reclamation sweep failed", "error", err.Error())
				continue
			}
			if released > 0 {
				slog.Info("released expired pending bookings", "count", released)
			}
		}
	}
}
