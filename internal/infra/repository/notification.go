package repository

import (
	"context"
	"time"

	"tripslot/internal/infra"
	"tripslot/internal/infra/db"
	"tripslot/internal/pkg/pgconv"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	query, args, err := qb.Insert("notification_jobs").
		Columns("kind", "topic", "payload", "run_at").
		Values(kind, topic, payload, pgconv.TimeToPgtype(runAt)).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build notification job query", err)
	}

	if _, err := dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr(classifyPgError(err), "failed to create notification job", err)
	}
	return nil
}
