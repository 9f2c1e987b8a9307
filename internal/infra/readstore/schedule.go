package readstore

import (
	"context"
	"time"

	"consultbook/internal/domain/availability"
	"consultbook/internal/domain/booking"
	"consultbook/internal/infra"
	"consultbook/internal/pkg/pgconv"
	"consultbook/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// TemplateFor returns the template version effective at the given
// instant. Versions never mutate; a new effective_from supersedes.
func (s *ScheduleReadStore) TemplateFor(ctx context.Context, consultantID uuid.UUID, at time.Time) (*shared.TemplateSnapshot, error) {
	query, args, err := psql.Select(
		"id", "consultant_id", "timezone",
		"buffer_before_secs", "buffer_after_secs", "max_per_day", "effective_from",
	).
		From("availability_templates").
		Where(squirrel.Eq{"consultant_id": consultantID}).
		Where(squirrel.LtOrEq{"effective_from": at}).
		OrderBy("effective_from DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build template query", err)
	}

	var (
		snap                      shared.TemplateSnapshot
		bufferBefore, bufferAfter int64
	)
	row := s.db.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&snap.ID, &snap.ConsultantID, &snap.Timezone,
		&bufferBefore, &bufferAfter, &snap.MaxPerDay, &snap.EffectiveFrom,
	); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no availability template in effect", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load availability template", err)
	}
	snap.BufferBefore = time.Duration(bufferBefore) * time.Second
	snap.BufferAfter = time.Duration(bufferAfter) * time.Second

	windows, err := s.templateWindows(ctx, snap.ID)
	if err != nil {
		return nil, err
	}
	snap.Windows = windows
	return &snap, nil
}

func (s *ScheduleReadStore) templateWindows(ctx context.Context, templateID uuid.UUID) (map[time.Weekday][]availability.LocalWindow, error) {
	query, args, err := psql.Select("weekday", "open_min", "close_min").
		From("availability_template_windows").
		Where(squirrel.Eq{"template_id": templateID}).
		OrderBy("weekday", "open_min").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build template windows query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load template windows", err)
	}
	defer rows.Close()

	windows := make(map[time.Weekday][]availability.LocalWindow)
	for rows.Next() {
		var (
			weekday           int
			openMin, closeMin int
		)
		if err := rows.Scan(&weekday, &openMin, &closeMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan template window", err)
		}
		wd := time.Weekday(weekday)
		windows[wd] = append(windows[wd], availability.LocalWindow{OpenMin: openMin, CloseMin: closeMin})
	}
	return windows, rows.Err()
}

func (s *ScheduleReadStore) ExceptionsIn(ctx context.Context, consultantID uuid.UUID, from, to time.Time) ([]shared.ExceptionSnapshot, error) {
	query, args, err := psql.Select("id", "consultant_id", "starts_at", "ends_at", "kind", "reason").
		From("availability_exceptions").
		Where(squirrel.Eq{"consultant_id": consultantID}).
		Where(squirrel.Lt{"starts_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		OrderBy("starts_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build exceptions query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load availability exceptions", err)
	}
	defer rows.Close()

	var out []shared.ExceptionSnapshot
	for rows.Next() {
		var (
			snap shared.ExceptionSnapshot
			kind string
		)
		if err := rows.Scan(&snap.ID, &snap.ConsultantID, &snap.Start, &snap.End, &kind, &snap.Reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability exception", err)
		}
		snap.Kind = availability.ExceptionKind(kind)
		out = append(out, snap)
	}
	return out, rows.Err()
}

// ActiveBookingsIn returns slot-blocking bookings overlapping the
// range. Comparison is on the raw interval; buffers are applied by the
// busy-timeline builder.
func (s *ScheduleReadStore) ActiveBookingsIn(ctx context.Context, consultantID uuid.UUID, from, to time.Time) ([]shared.BookingBusySnapshot, error) {
	query, args, err := psql.Select("id", "starts_at", "ends_at").
		From("bookings").
		Where(squirrel.Eq{
			"consultant_id": consultantID,
			"status":        blockingStatuses(),
		}).
		Where(squirrel.Lt{"starts_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		OrderBy("starts_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build active bookings query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active bookings", err)
	}
	defer rows.Close()

	var out []shared.BookingBusySnapshot
	for rows.Next() {
		var snap shared.BookingBusySnapshot
		if err := rows.Scan(&snap.ID, &snap.Start, &snap.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active booking", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func blockingStatuses() []string {
	var out []string
	for _, st := range booking.ActiveStatuses {
		out = append(out, st.String())
	}
	return out
}

func (s *ScheduleReadStore) ExternalBusyIn(ctx context.Context, consultantID uuid.UUID, from, to time.Time) ([]shared.ExternalBusySnapshot, error) {
	query, args, err := psql.Select("platform", "source_event_id", "starts_at", "ends_at", "last_synced_at").
		From("external_busy_intervals").
		Where(squirrel.Eq{"consultant_id": consultantID}).
		Where(squirrel.Lt{"starts_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		OrderBy("starts_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build external busy query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load external busy intervals", err)
	}
	defer rows.Close()

	var out []shared.ExternalBusySnapshot
	for rows.Next() {
		var snap shared.ExternalBusySnapshot
		if err := rows.Scan(&snap.Platform, &snap.SourceEventID, &snap.Start, &snap.End, &snap.LastSyncedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan external busy interval", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func (s *ScheduleReadStore) SyncHealth(ctx context.Context, consultantID uuid.UUID) ([]shared.PlatformHealth, error) {
	query, args, err := psql.Select("platform", "last_success_at", "consecutive_failures").
		From("sync_status").
		Where(squirrel.Eq{"consultant_id": consultantID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build sync health query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load sync health", err)
	}
	defer rows.Close()

	var out []shared.PlatformHealth
	for rows.Next() {
		var h shared.PlatformHealth
		if err := rows.Scan(&h.Platform, &h.LastSuccessAt, &h.ConsecutiveFailures); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sync health", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
