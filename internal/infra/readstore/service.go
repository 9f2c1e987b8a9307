package readstore

import (
	"context"
	"time"

	"consultbook/internal/infra"
	"consultbook/internal/pkg/pgconv"
	"consultbook/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

func (s *ScheduleReadStore) ServiceByType(ctx context.Context, serviceType string) (*shared.ServiceSnapshot, error) {
	query, args, err := psql.Select("type", "duration_secs", "base_price_cents").
		From("services").
		Where(squirrel.Eq{"type": serviceType, "active": true}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build service query", err)
	}

	var (
		snap         shared.ServiceSnapshot
		durationSecs int64
	)
	row := s.db.QueryRow(ctx, query, args...)
	if err := row.Scan(&snap.Type, &durationSecs, &snap.BasePriceCents); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load service", err)
	}
	snap.Duration = time.Duration(durationSecs) * time.Second
	return &snap, nil
}

func (s *ScheduleReadStore) ExternalAccounts(ctx context.Context, consultantID uuid.UUID) ([]shared.ExternalAccountSnapshot, error) {
	query, args, err := psql.Select("id", "consultant_id", "platform", "account_ref").
		From("external_accounts").
		Where(squirrel.Eq{"consultant_id": consultantID, "active": true}).
		OrderBy("platform").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build external accounts query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load external accounts", err)
	}
	defer rows.Close()

	var out []shared.ExternalAccountSnapshot
	for rows.Next() {
		var snap shared.ExternalAccountSnapshot
		if err := rows.Scan(&snap.ID, &snap.ConsultantID, &snap.Platform, &snap.AccountRef); err != nil {
			return nil, infra.WrapRepoErr("failed to scan external account", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// ConsultantsWithAccounts lists consultants the sync worker should
// visit each cycle.
func (s *ScheduleReadStore) ConsultantsWithAccounts(ctx context.Context) ([]uuid.UUID, error) {
	query, args, err := psql.Select("DISTINCT consultant_id").
		From("external_accounts").
		Where(squirrel.Eq{"active": true}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build consultants query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load consultants with accounts", err)
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan consultant id", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
