package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"tripslot/internal/infra"
	"tripslot/internal/infra/db"
	"tripslot/internal/pkg/pgconv"
	"tripslot/internal/usecase/shared"
)

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(dbtx db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: dbtx}
}

func (s *IdempotencyReadStore) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	query, args, err := qb.Select("key", "user_id", "status", "request_hash", "result_booking_id", "expires_at").
		From("idempotency_keys").
		Where(squirrel.Eq{"key": pgconv.UUIDToPgtype(key), "user_id": pgconv.UUIDToPgtype(userID)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build idempotency query", err)
	}

	var (
		recordKey pgtype.UUID
		recordUID pgtype.UUID
		bookingID pgtype.UUID
		expiresAt pgtype.Timestamptz
		record    shared.IdempotencyRecord
	)
	err = s.db.QueryRow(ctx, query, args...).Scan(&recordKey, &recordUID, &record.Status, &record.RequestHash, &bookingID, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "idempotency key not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find idempotency key", err)
	}

	record.Key = pgconv.UUIDFromPgtype(recordKey)
	record.UserID = pgconv.UUIDFromPgtype(recordUID)
	record.ResultBookingID = pgconv.UUIDPtrFromPgtype(bookingID)
	record.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return &record, nil
}
