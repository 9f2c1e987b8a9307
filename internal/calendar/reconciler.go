package calendar

import (
	"context"
	"time"

	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// SyncResult summarizes one reconciliation pass for logs and metrics.
type SyncResult struct {
	Added   int
	Updated int
	Removed int
}

// Reconcile diffs the fetched events against the mirrored rows for one
// consultant and platform, then applies the minimal set of mutations.
// Running it twice with the same input is a no-op the second time.
//
// Rows absent from the fetch are deleted outright. The fetch window
// always covers the full offering horizon, so anything missing is
// either past or genuinely gone from the platform.
func Reconcile(ctx context.Context, tx shared.Tx, consultantID uuid.UUID, platform Platform, fetched []BusyEvent, windowStart, windowEnd time.Time, syncedAt time.Time) (SyncResult, error) {
	var result SyncResult

	mirrored, err := tx.Reads().ExternalBusyIn(ctx, consultantID, windowStart, windowEnd)
	if err != nil {
		return result, err
	}

	existing := make(map[string]shared.ExternalBusySnapshot)
	for _, m := range mirrored {
		if m.Platform == string(platform) {
			existing[m.SourceEventID] = m
		}
	}

	keep := make([]string, 0, len(fetched))
	var unchanged []string
	for _, ev := range fetched {
		keep = append(keep, ev.SourceEventID)

		current, ok := existing[ev.SourceEventID]
		if !ok {
			err := tx.ExternalEvents().Insert(ctx, shared.ExternalEventRecord{
				ConsultantID:  consultantID,
				Platform:      string(platform),
				SourceEventID: ev.SourceEventID,
				Start:         ev.Start,
				End:           ev.End,
				SyncedAt:      syncedAt,
			})
			if err != nil {
				return result, err
			}
			result.Added++
			continue
		}

		if current.Start.Equal(ev.Start) && current.End.Equal(ev.End) {
			unchanged = append(unchanged, ev.SourceEventID)
			continue
		}

		err := tx.ExternalEvents().UpdateInterval(ctx, consultantID, string(platform), ev.SourceEventID, ev.Start, ev.End, syncedAt)
		if err != nil {
			return result, err
		}
		result.Updated++
	}

	if err := tx.ExternalEvents().TouchSynced(ctx, consultantID, string(platform), unchanged, syncedAt); err != nil {
		return result, err
	}

	removed, err := tx.ExternalEvents().DeleteMissing(ctx, consultantID, string(platform), keep)
	if err != nil {
		return result, err
	}
	result.Removed = int(removed)

	return result, nil
}
