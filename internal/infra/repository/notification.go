package repository

import (
	"context"
	"encoding/json"
	"time"

	"consultbook/internal/infra"
	"consultbook/internal/infra/db"
	"consultbook/internal/usecase/shared"
)

// NotificationRepository appends outbox jobs inside the same
// transaction as the state change they announce, so a crash never
// leaves a confirmed booking without its notification.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

var _ shared.NotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload json.RawMessage, runAt time.Time) error {
	query, args, err := psql.Insert("notification_jobs").
		Columns("kind", "topic", "payload", "run_at", "status").
		Values(kind, topic, payload, runAt, "pending").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build notification job insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
