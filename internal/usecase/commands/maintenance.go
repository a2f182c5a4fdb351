package commands

import (
	"context"

	"tripslot/internal/pkg/errs"
	"tripslot/internal/usecase/shared"
)

type MaintenanceCommands interface {
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewMaintenanceCommands(uow shared.UnitOfWork) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow}
}

// PurgeExpiredIdempotencyKeys drops keys whose TTL has passed. Expired
// processing keys are reclaimable anyway, and expired completed keys no
// longer owe the caller a replay.
func (m *maintenanceCommandsImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		purged, err = tx.Idempotency().DeleteExpired(ctx, tx.DB())
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return purged, nil
}
