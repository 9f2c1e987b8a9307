package components

import (
	"consultbook/internal/infra/uow"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// NewPostgresUoW already returns shared.UnitOfWork; the tx-scoped
		// repositories and read store hang off it rather than the
		// container.
		uow.NewPostgresUoW,
	),
)
