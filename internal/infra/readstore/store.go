package readstore

import (
	"consultbook/internal/infra/db"
	"consultbook/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
)

// ScheduleReadStore serves every snapshot read the scheduling engine
// needs. Backed by the pool for API queries and by the open transaction
// when used inside a commit, so re-validation observes serialized state.
type ScheduleReadStore struct {
	db db.DBTX
}

func New(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

var _ shared.ScheduleReads = (*ScheduleReadStore)(nil)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
