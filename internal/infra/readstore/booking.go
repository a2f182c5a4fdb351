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

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := qb.Select(
		"b.id",
		"b.user_id",
		"b.experience_id",
		"e.name",
		"e.location",
		"b.slot_id",
		"to_char(s.slot_date, 'YYYY-MM-DD')",
		"to_char(s.slot_time, 'HH24:MI')",
		"b.guest_name",
		"b.guest_email",
		"b.guest_phone",
		"b.promo_id",
		"p.code",
		"b.subtotal_cents",
		"b.discount_cents",
		"b.total_cents",
		"b.created_at",
	).
		From("bookings b").
		Join("experiences e ON e.id = b.experience_id").
		Join("slots s ON s.id = b.slot_id").
		LeftJoin("promo_codes p ON p.id = b.promo_id").
		Where(squirrel.Eq{"b.id": pgconv.UUIDToPgtype(id)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build booking query", err)
	}

	var (
		bookingID pgtype.UUID
		userID    pgtype.UUID
		expID     pgtype.UUID
		slotID    pgtype.UUID
		promoID   pgtype.UUID
		promoCode pgtype.Text
		createdAt pgtype.Timestamptz
		view      queries.BookingView
	)
	err = s.db.QueryRow(ctx, query, args...).Scan(
		&bookingID,
		&userID,
		&expID,
		&view.ExperienceName,
		&view.Location,
		&slotID,
		&view.Date,
		&view.Time,
		&view.GuestName,
		&view.GuestEmail,
		&view.GuestPhone,
		&promoID,
		&promoCode,
		&view.SubtotalCents,
		&view.DiscountCents,
		&view.TotalCents,
		&createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}

	view.ID = pgconv.UUIDFromPgtype(bookingID)
	view.UserID = pgconv.UUIDFromPgtype(userID)
	view.ExperienceID = pgconv.UUIDFromPgtype(expID)
	view.SlotID = pgconv.UUIDFromPgtype(slotID)
	view.PromoID = pgconv.UUIDPtrFromPgtype(promoID)
	view.PromoCode = pgconv.StringPtrFromPgtype(promoCode)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

// FindByUserID lists a user's bookings newest first.
func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	query, args, err := qb.Select(
		"b.id",
		"b.experience_id",
		"e.name",
		"e.location",
		"to_char(s.slot_date, 'YYYY-MM-DD')",
		"to_char(s.slot_time, 'HH24:MI')",
		"b.guest_name",
		"b.total_cents",
		"b.created_at",
	).
		From("bookings b").
		Join("experiences e ON e.id = b.experience_id").
		Join("slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"b.user_id": pgconv.UUIDToPgtype(userID)}).
		OrderBy("b.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build booking list query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			bookingID pgtype.UUID
			expID     pgtype.UUID
			createdAt pgtype.Timestamptz
			item      queries.BookingListItem
		)
		if err := rows.Scan(
			&bookingID,
			&expID,
			&item.ExperienceName,
			&item.Location,
			&item.Date,
			&item.Time,
			&item.GuestName,
			&item.TotalCents,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking row", err)
		}
		item.ID = pgconv.UUIDFromPgtype(bookingID)
		item.ExperienceID = pgconv.UUIDFromPgtype(expID)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking rows", err)
	}
	return items, nil
}
