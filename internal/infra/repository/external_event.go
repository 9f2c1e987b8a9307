package repository

import (
	"context"
	"time"

	"consultbook/internal/infra"
	"consultbook/internal/infra/db"
	"consultbook/internal/pkg/pgconv"
	"consultbook/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ExternalEventRepository struct {
	db db.DBTX
}

func NewExternalEventRepository(dbtx db.DBTX) *ExternalEventRepository {
	return &ExternalEventRepository{db: dbtx}
}

var _ shared.ExternalEventRepository = (*ExternalEventRepository)(nil)

func (r *ExternalEventRepository) Insert(ctx context.Context, e shared.ExternalEventRecord) error {
	query, args, err := psql.Insert("external_busy_intervals").
		Columns("consultant_id", "platform", "source_event_id", "starts_at", "ends_at", "last_synced_at", "booking_id").
		Values(e.ConsultantID, e.Platform, e.SourceEventID, e.Start, e.End, e.SyncedAt, e.BookingID).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build external event insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("external event already mirrored", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert external event", err)
	}
	return nil
}

func (r *ExternalEventRepository) UpdateInterval(ctx context.Context, consultantID uuid.UUID, platform, sourceEventID string, start, end, syncedAt time.Time) error {
	query, args, err := psql.Update("external_busy_intervals").
		Set("starts_at", start).
		Set("ends_at", end).
		Set("last_synced_at", syncedAt).
		Where(squirrel.Eq{
			"consultant_id":   consultantID,
			"platform":        platform,
			"source_event_id": sourceEventID,
		}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build external event update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update external event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("external event not found", nil, infra.KindNotFound)
	}
	return nil
}

// TouchSynced refreshes last_synced_at on events whose interval did not
// change this cycle, so staleness detection sees them as fresh.
func (r *ExternalEventRepository) TouchSynced(ctx context.Context, consultantID uuid.UUID, platform string, sourceEventIDs []string, syncedAt time.Time) error {
	if len(sourceEventIDs) == 0 {
		return nil
	}
	query, args, err := psql.Update("external_busy_intervals").
		Set("last_synced_at", syncedAt).
		Where(squirrel.Eq{
			"consultant_id":   consultantID,
			"platform":        platform,
			"source_event_id": sourceEventIDs,
		}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build external event touch", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to touch synced external events", err)
	}
	return nil
}

// DeleteMissing drops mirrored events the platform no longer reports.
// An empty keep list removes everything for the platform.
func (r *ExternalEventRepository) DeleteMissing(ctx context.Context, consultantID uuid.UUID, platform string, keepSourceEventIDs []string) (int64, error) {
	builder := psql.Delete("external_busy_intervals").
		Where(squirrel.Eq{
			"consultant_id": consultantID,
			"platform":      platform,
		})
	if len(keepSourceEventIDs) > 0 {
		builder = builder.Where(squirrel.NotEq{"source_event_id": keepSourceEventIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build external event cleanup", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete missing external events", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ExternalEventRepository) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) ([]shared.PushedEventRef, error) {
	query, args, err := psql.Delete("external_busy_intervals").
		Where(squirrel.Eq{"booking_id": bookingID}).
		Suffix("RETURNING platform, source_event_id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build pushed event cleanup", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete pushed events", err)
	}
	defer rows.Close()

	var refs []shared.PushedEventRef
	for rows.Next() {
		var ref shared.PushedEventRef
		if err := rows.Scan(&ref.Platform, &ref.SourceEventID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pushed event ref", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pushed event refs", err)
	}
	return refs, nil
}

func (r *ExternalEventRepository) RecordSyncSuccess(ctx context.Context, consultantID uuid.UUID, platform string, at time.Time) error {
	query, args, err := psql.Insert("sync_status").
		Columns("consultant_id", "platform", "last_success_at", "consecutive_failures").
		Values(consultantID, platform, at, 0).
		Suffix("ON CONFLICT (consultant_id, platform) DO UPDATE SET last_success_at = EXCLUDED.last_success_at, consecutive_failures = 0").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build sync success upsert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to record sync success", err)
	}
	return nil
}

func (r *ExternalEventRepository) RecordSyncFailure(ctx context.Context, consultantID uuid.UUID, platform string, at time.Time) error {
	query, args, err := psql.Insert("sync_status").
		Columns("consultant_id", "platform", "last_failure_at", "consecutive_failures").
		Values(consultantID, platform, at, 1).
		Suffix("ON CONFLICT (consultant_id, platform) DO UPDATE SET last_failure_at = EXCLUDED.last_failure_at, consecutive_failures = sync_status.consecutive_failures + 1").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build sync failure upsert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to record sync failure", err)
	}
	return nil
}
