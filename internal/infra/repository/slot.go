package repository

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

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

// DecrementSeat is the only write path for remaining_seats. The guard in the
// WHERE clause makes the decrement atomic: two concurrent commits for the
// last seat race on the row lock and the loser matches zero rows.
func (r *SlotRepository) DecrementSeat(ctx context.Context, dbtx db.DBTX, slotID, experienceID uuid.UUID) (*shared.SlotSnapshot, error) {
	query, args, err := qb.Update("slots").
		Set("remaining_seats", squirrel.Expr("remaining_seats - 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": pgconv.UUIDToPgtype(slotID), "experience_id": pgconv.UUIDToPgtype(experienceID)}).
		Where(squirrel.Gt{"remaining_seats": 0}).
		Suffix("RETURNING id, experience_id, to_char(slot_date, 'YYYY-MM-DD'), to_char(slot_time, 'HH24:MI'), remaining_seats, initial_seats").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build slot decrement query", err)
	}

	var (
		id, expID pgtype.UUID
		snapshot  shared.SlotSnapshot
	)
	err = dbtx.QueryRow(ctx, query, args...).Scan(
		&id,
		&expID,
		&snapshot.Date,
		&snapshot.Time,
		&snapshot.RemainingSeats,
		&snapshot.InitialSeats,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no bookable slot matched", err)
		}
		return nil, infra.WrapRepoErr(classifyPgError(err), "failed to decrement slot seat", err)
	}

	snapshot.ID = pgconv.UUIDFromPgtype(id)
	snapshot.ExperienceID = pgconv.UUIDFromPgtype(expID)
	return &snapshot, nil
}
