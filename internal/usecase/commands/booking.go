package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tripslot/internal/domain/booking"
	"tripslot/internal/domain/experience"
	"tripslot/internal/domain/promo"
	reqdto "tripslot/internal/handler/dto/request"
	"tripslot/internal/infra"
	"tripslot/internal/pkg/clock"
	"tripslot/internal/pkg/errs"
	"tripslot/internal/pkg/ptr"
	"tripslot/internal/usecase/queries"
	"tripslot/internal/usecase/shared"
)

var (
	ErrExperienceNotFound      = errs.New("experience not found")
	ErrSlotNotFound            = errs.New("slot not found")
	ErrSlotExhausted           = errs.New("slot has no remaining seats")
	ErrSlotMismatch            = errs.New("slot does not belong to experience")
	ErrPromoNotFound           = errs.New("promo code not found")
	ErrInvalidPromo            = errs.New("invalid promo code")
	ErrInvalidContact          = errs.New("invalid guest contact")
	ErrIdempotencyConflict     = errs.New("idempotency key reused with different request")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const idempotencyKeyTTL = 24 * time.Hour

type CommitBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CommitBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CommitBookingResult, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// CommitBooking reserves exactly one seat. Seat decrement, booking insert,
// notification job and idempotency completion share one transaction, so
// either all of them land or none do.
func (b *bookingCommandsImpl) CommitBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CommitBookingResult, error) {
	// Contact validation needs no store access, so it runs before the
	// idempotency key is touched.
	guest, err := req.ToGuestContact()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidContact)
	}

	requestHash := calculateRequestHash(req)
	expiresAt := b.clock.Now().Add(idempotencyKeyTTL)

	replayed, err := b.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CommitBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	view, err := b.commitNewBooking(ctx, req, guest, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CommitBookingResult{Booking: view, IsReplayed: false}, nil
}

func (b *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	var inserted bool
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inserted, err = tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, userID, "POST /bookings", requestHash, expiresAt)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		// Fresh claim on the key, proceed with a new booking.
		return nil, nil
	}

	existing, err := b.uow.CommandReads().IdempotencyByKey(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyConflict
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID != nil {
			// System-level read: the replayed response must match the
			// original regardless of who asks through this key.
			return b.bookingQueries.GetByIDSystem(ctx, *existing.ResultBookingID)
		}
		return nil, errs.New("completed request missing result booking ID")

	case "processing":
		if existing.ExpiresAt.Before(b.clock.Now()) {
			return nil, b.reclaimExpiredKey(ctx, idempotencyKey, userID, requestHash, expiresAt)
		}
		// Another request holds a live claim on this key. Letting the
		// duplicate through would book and decrement twice.
		return nil, ErrIdempotencyConflict

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (b *bookingCommandsImpl) reclaimExpiredKey(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Idempotency().ClaimExpiredKey(ctx, tx.DB(), idempotencyKey, userID, requestHash, expiresAt)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if claimed == 0 {
			return ErrIdempotencyConflict
		}
		return nil
	})
}

func (b *bookingCommandsImpl) commitNewBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	guest booking.GuestContact,
	userID, idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	reads := b.uow.CommandReads()

	experienceEntity, err := b.loadExperience(ctx, reads, req.ExperienceID)
	if err != nil {
		return nil, err
	}

	promoEntity, err := b.loadPromo(ctx, reads, req.GetPromoCode())
	if err != nil {
		return nil, err
	}

	// Price is always recomputed here. Whatever total the client showed the
	// user is advisory only.
	quote := booking.NewQuote(experienceEntity.PriceCents(), promoEntity)

	var promoID *uuid.UUID
	if promoEntity != nil {
		promoID = ptr.To(promoEntity.ID())
	}

	var bookingID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := tx.Slots().DecrementSeat(ctx, tx.DB(), req.SlotID, req.ExperienceID)
		if err != nil {
			return b.classifySlotFailure(ctx, tx, req.SlotID, req.ExperienceID, err)
		}

		bookingEntity, err := booking.NewBooking(
			uuid.Nil, userID, req.ExperienceID, slot.ID,
			guest, promoID, quote, b.clock.Now(),
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidContact)
		}

		bookingID, err = tx.Bookings().Create(ctx, tx.DB(), bookingEntity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := b.enqueueConfirmation(ctx, tx, bookingID, guest.Email()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		resultHash := calculateIDHash(bookingID)
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, resultHash, bookingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write from the read store for the full response shape
	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// classifySlotFailure tells an exhausted slot apart from a missing or
// mismatched one. The decrement query cannot distinguish them on its own
// because all three produce zero rows.
func (b *bookingCommandsImpl) classifySlotFailure(
	ctx context.Context,
	tx shared.Tx,
	slotID, experienceID uuid.UUID,
	cause error,
) error {
	if !infra.IsKind(cause, infra.KindNotFound) {
		return errs.Mark(cause, ErrDatabaseOperationFailed)
	}

	slot, err := tx.Reads().SlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if slot.ExperienceID != experienceID {
		return ErrSlotMismatch
	}
	if slot.RemainingSeats <= 0 {
		return ErrSlotExhausted
	}
	return errs.Mark(cause, ErrDatabaseOperationFailed)
}

func (b *bookingCommandsImpl) loadExperience(
	ctx context.Context,
	reads shared.CommandReads,
	experienceID uuid.UUID,
) (*experience.Experience, error) {
	snapshot, err := reads.ExperienceByID(ctx, experienceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, errs.Mark(err, ErrExperienceNotFound)
	}

	return experience.NewExperience(snapshot.ID, snapshot.Name, snapshot.PriceCents, snapshot.Location)
}

func (b *bookingCommandsImpl) loadPromo(
	ctx context.Context,
	reads shared.CommandReads,
	promoCode *string,
) (*promo.Promo, error) {
	if promoCode == nil {
		return nil, nil
	}

	normalized, err := promo.NewCode(*promoCode)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPromo)
	}

	snapshot, err := reads.PromoByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, errs.Mark(err, ErrPromoNotFound)
	}

	promoEntity, err := promo.NewPromo(snapshot.ID, snapshot.Code, snapshot.DiscountType, snapshot.Value, snapshot.Active)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPromo)
	}

	if err := promoEntity.ValidateUsage(); err != nil {
		return nil, ErrInvalidPromo
	}

	return promoEntity, nil
}

func (b *bookingCommandsImpl) enqueueConfirmation(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, guestEmail string) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":  bookingID,
		"guest_email": guestEmail,
		"type":        "booking_confirmed",
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "booking_confirmed", payload, b.clock.Now())
}

func calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
