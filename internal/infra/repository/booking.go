package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"tripslot/internal/domain/booking"
	"tripslot/internal/infra"
	"tripslot/internal/infra/db"
	"tripslot/internal/pkg/pgconv"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	guest := b.Guest()

	query, args, err := qb.Insert("bookings").
		Columns(
			"user_id",
			"experience_id",
			"slot_id",
			"guest_name",
			"guest_email",
			"guest_phone",
			"promo_id",
			"subtotal_cents",
			"discount_cents",
			"total_cents",
		).
		Values(
			pgconv.UUIDToPgtype(b.UserID()),
			pgconv.UUIDToPgtype(b.ExperienceID()),
			pgconv.UUIDToPgtype(b.SlotID()),
			guest.Name(),
			guest.Email(),
			guest.Phone(),
			pgconv.UUIDPtrToPgtype(b.PromoID()),
			b.SubtotalCents(),
			b.DiscountCents(),
			b.TotalCents(),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build booking insert query", err)
	}

	var id pgtype.UUID
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr(classifyPgError(err), "failed to insert booking", err)
	}

	return pgconv.UUIDFromPgtype(id), nil
}
