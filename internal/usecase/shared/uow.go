package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripslot/internal/domain/booking"
	"tripslot/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ExperienceByID(ctx context.Context, id uuid.UUID) (*ExperienceSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	PromoByCode(ctx context.Context, code string) (*PromoSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// Minimal snapshots for command read operations
type ExperienceSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Location   string
}

type SlotSnapshot struct {
	ID             uuid.UUID
	ExperienceID   uuid.UUID
	Date           string
	Time           string
	RemainingSeats int32
	InitialSeats   int32
}

type PromoSnapshot struct {
	ID           uuid.UUID
	Code         string
	DiscountType string
	Value        int64
	Active       bool
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type SlotRepository interface {
	// DecrementSeat takes one seat off the slot iff seats remain and the slot
	// belongs to the experience. Returns the post-decrement snapshot, or a
	// NOT_FOUND repository error when no row qualified.
	DecrementSeat(ctx context.Context, dbtx db.DBTX, slotID, experienceID uuid.UUID) (*SlotSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key for this request. Reports false when the key
	// already exists, in which case the caller must inspect the stored row.
	TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error
	ClaimExpiredKey(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
	DeleteExpired(ctx context.Context, dbtx db.DBTX) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, dbtx db.DBTX, email, passwordHash, role string) (uuid.UUID, error)
}
