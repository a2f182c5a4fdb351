package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"tripslot/internal/infra"
	"tripslot/internal/infra/db"
	"tripslot/internal/pkg/pgconv"
	"tripslot/internal/usecase/queries"
)

type ExperienceReadStore struct {
	db db.DBTX
}

func NewExperienceReadStore(dbtx db.DBTX) *ExperienceReadStore {
	return &ExperienceReadStore{db: dbtx}
}

func (s *ExperienceReadStore) FindAll(ctx context.Context, search string) ([]*queries.ExperienceListItem, error) {
	builder := qb.Select("id", "name", "description", "price_cents", "image_url", "location").
		From("experiences").
		OrderBy("name ASC")

	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"location": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build experience list query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list experiences", err)
	}
	defer rows.Close()

	items := make([]*queries.ExperienceListItem, 0)
	for rows.Next() {
		var (
			id   pgtype.UUID
			item queries.ExperienceListItem
		)
		if err := rows.Scan(&id, &item.Name, &item.Description, &item.PriceCents, &item.ImageURL, &item.Location); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan experience row", err)
		}
		item.ID = pgconv.UUIDFromPgtype(id)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read experience rows", err)
	}
	return items, nil
}

func (s *ExperienceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExperienceView, error) {
	query, args, err := qb.Select(
		"id", "name", "description", "long_description",
		"price_cents", "image_url", "location", "created_at", "updated_at",
	).
		From("experiences").
		Where(squirrel.Eq{"id": pgconv.UUIDToPgtype(id)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build experience query", err)
	}

	var (
		expID     pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
		view      queries.ExperienceView
	)
	err = s.db.QueryRow(ctx, query, args...).Scan(
		&expID,
		&view.Name,
		&view.Description,
		&view.LongDescription,
		&view.PriceCents,
		&view.ImageURL,
		&view.Location,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "experience not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find experience", err)
	}

	view.ID = pgconv.UUIDFromPgtype(expID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

// FindSlots returns the bookable slots for an experience ordered by
// (date, time), which is the order the grouped day views rely on.
// Sold out slots are not selectable and never leave the database.
func (s *ExperienceReadStore) FindSlots(ctx context.Context, experienceID uuid.UUID) ([]*queries.SlotView, error) {
	query, args, err := qb.Select(
		"id",
		"experience_id",
		"to_char(slot_date, 'YYYY-MM-DD')",
		"to_char(slot_time, 'HH24:MI')",
		"remaining_seats",
		"initial_seats",
	).
		From("slots").
		Where(squirrel.Eq{"experience_id": pgconv.UUIDToPgtype(experienceID)}).
		Where(squirrel.Gt{"remaining_seats": 0}).
		OrderBy("slot_date ASC", "slot_time ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build slot list query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list slots", err)
	}
	defer rows.Close()

	slots := make([]*queries.SlotView, 0)
	for rows.Next() {
		var (
			id    pgtype.UUID
			expID pgtype.UUID
			slot  queries.SlotView
		)
		if err := rows.Scan(&id, &expID, &slot.Date, &slot.Time, &slot.RemainingSeats, &slot.InitialSeats); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan slot row", err)
		}
		slot.ID = pgconv.UUIDFromPgtype(id)
		slot.ExperienceID = pgconv.UUIDFromPgtype(expID)
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read slot rows", err)
	}
	return slots, nil
}

// FindSlotByID backs the commit path's failure classification.
func (s *ExperienceReadStore) FindSlotByID(ctx context.Context, slotID uuid.UUID) (*queries.SlotView, error) {
	query, args, err := qb.Select(
		"id",
		"experience_id",
		"to_char(slot_date, 'YYYY-MM-DD')",
		"to_char(slot_time, 'HH24:MI')",
		"remaining_seats",
		"initial_seats",
	).
		From("slots").
		Where(squirrel.Eq{"id": pgconv.UUIDToPgtype(slotID)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build slot query", err)
	}

	var (
		id    pgtype.UUID
		expID pgtype.UUID
		slot  queries.SlotView
	)
	err = s.db.QueryRow(ctx, query, args...).Scan(&id, &expID, &slot.Date, &slot.Time, &slot.RemainingSeats, &slot.InitialSeats)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "slot not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find slot", err)
	}

	slot.ID = pgconv.UUIDFromPgtype(id)
	slot.ExperienceID = pgconv.UUIDFromPgtype(expID)
	return &slot, nil
}
