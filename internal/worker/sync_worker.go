// Package worker holds the recurring background loops: calendar sync
// and pending-payment reclamation.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"consultbook/internal/calendar"
	"consultbook/internal/pkg/config"
	"consultbook/internal/usecase/shared"
)

// SyncWorker periodically mirrors every linked external calendar. Each
// consultant syncs on its own goroutine per cycle; the sync service
// guards against the same consultant/platform pair overlapping itself.
type SyncWorker struct {
	svc      *calendar.SyncService
	uow      shared.UnitOfWork
	interval time.Duration
}

func NewSyncWorker(svc *calendar.SyncService, uow shared.UnitOfWork, cfg config.CalendarConfig) *SyncWorker {
	return &SyncWorker{
		svc:      svc,
		uow:      uow,
		interval: cfg.SyncInterval,
	}
}

// Run blocks until ctx is cancelled. The first cycle starts
// immediately so a fresh process does not serve a cold mirror for a
// full interval.
func (w *SyncWorker) Run(ctx context.Context) {
	slog.Info("calendar sync worker started", "interval", w.interval.String())
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.cycle(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("calendar sync worker stopped")
			return
		case <-ticker.C:
			w.cycle(ctx)
		}
	}
}

func (w *SyncWorker) cycle(ctx context.Context) {
	consultants, err := w.uow.Reads().ConsultantsWithAccounts(ctx)
	if err != nil {
		slog.Error("failed to list consultants for sync", "error", err.Error())
		return
	}

	var wg sync.WaitGroup
	for _, id := range consultants {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.svc.SyncConsultant(ctx, id)
		}()
	}
	wg.Wait()
}
