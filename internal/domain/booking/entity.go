package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"tripslot/internal/domain/promo"
)

var (
	ErrNegativeTotal = errors.New("booking total cannot be negative")
)

// Quote is the server-side price computation for one seat. Client-submitted
// totals are never trusted; the commit path always recomputes from the
// experience price and the promo stored in the database.
type Quote struct {
	SubtotalCents int64
	DiscountCents int64
	TotalCents    int64
}

func NewQuote(priceCents int64, p *promo.Promo) Quote {
	q := Quote{SubtotalCents: priceCents, TotalCents: priceCents}
	if p != nil {
		q.DiscountCents = p.DiscountAmount(priceCents)
		q.TotalCents = p.ApplyTo(priceCents)
	}
	return q
}

type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	experienceID  uuid.UUID
	slotID        uuid.UUID
	guest         GuestContact
	promoID       *uuid.UUID
	subtotalCents int64
	discountCents int64
	totalCents    int64
	createdAt     time.Time
}

func NewBooking(
	id, userID, experienceID, slotID uuid.UUID,
	guest GuestContact,
	promoID *uuid.UUID,
	quote Quote,
	createdAt time.Time,
) (*Booking, error) {
	if quote.TotalCents < 0 {
		return nil, ErrNegativeTotal
	}
	return &Booking{
		id:            id,
		userID:        userID,
		experienceID:  experienceID,
		slotID:        slotID,
		guest:         guest,
		promoID:       promoID,
		subtotalCents: quote.SubtotalCents,
		discountCents: quote.DiscountCents,
		totalCents:    quote.TotalCents,
		createdAt:     createdAt,
	}, nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) ExperienceID() uuid.UUID { return b.experienceID }
func (b *Booking) SlotID() uuid.UUID       { return b.slotID }
func (b *Booking) Guest() GuestContact     { return b.guest }
func (b *Booking) PromoID() *uuid.UUID     { return b.promoID }
func (b *Booking) SubtotalCents() int64    { return b.subtotalCents }
func (b *Booking) DiscountCents() int64    { return b.discountCents }
func (b *Booking) TotalCents() int64       { return b.totalCents }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }

func (b *Booking) BelongsTo(userID uuid.UUID) bool {
	return b.userID == userID
}
