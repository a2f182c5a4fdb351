package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"tripslot/internal/infra"
	"tripslot/internal/infra/db"
	"tripslot/internal/pkg/pgconv"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert registers the key if unseen. Reports false when another
// request already holds the key; the caller reads the row back to
// decide whether that is a replay or a conflict.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	query, args, err := qb.Insert("idempotency_keys").
		Columns("key", "user_id", "endpoint", "request_hash", "expires_at").
		Values(
			pgconv.UUIDToPgtype(key),
			pgconv.UUIDToPgtype(userID),
			endpoint,
			requestHash,
			pgconv.TimeToPgtype(expiresAt),
		).
		Suffix("ON CONFLICT (key, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to build idempotency insert query", err)
	}

	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr(classifyPgError(err), "failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error {
	query, args, err := qb.Update("idempotency_keys").
		Set("status", "completed").
		Set("response_hash", resultHash).
		Set("result_booking_id", pgconv.UUIDToPgtype(bookingID)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"key": pgconv.UUIDToPgtype(key), "user_id": pgconv.UUIDToPgtype(userID)}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build idempotency update query", err)
	}

	if _, err := dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr(classifyPgError(err), "failed to update idempotency key status", err)
	}
	return nil
}

// ClaimExpiredKey takes over an abandoned processing key. Zero rows means
// another request holds a live claim.
func (r *IdempotencyRepository) ClaimExpiredKey(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	query, args, err := qb.Update("idempotency_keys").
		Set("request_hash", requestHash).
		Set("expires_at", pgconv.TimeToPgtype(expiresAt)).
		Set("response_hash", nil).
		Set("result_booking_id", nil).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{
			"key":     pgconv.UUIDToPgtype(key),
			"user_id": pgconv.UUIDToPgtype(userID),
			"status":  "processing",
		}).
		Where(squirrel.Expr("expires_at < now()")).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to build idempotency claim query", err)
	}

	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr(classifyPgError(err), "failed to claim expired idempotency key", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired removes keys past their TTL, for periodic cleanup.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, dbtx db.DBTX) (int64, error) {
	query, args, err := qb.Delete("idempotency_keys").
		Where(squirrel.Expr("expires_at < now()")).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to build idempotency delete query", err)
	}

	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr(classifyPgError(err), "failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
