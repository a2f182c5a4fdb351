//go:build unit || e2e

package builder

import (
	"time"

	dombooking "tripslot/internal/domain/booking"
	reqdto "tripslot/internal/handler/dto/request"
	"tripslot/internal/usecase/queries"
	"tripslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID         uuid.UUID
	ExperienceID   uuid.UUID
	ExperienceName string
	Location       string
	SlotID         uuid.UUID
	Date           string
	Time           string
	GuestName      string
	GuestEmail     string
	GuestPhone     string
	PromoCode      *string
	PromoID        *uuid.UUID
	PriceCents     int64
	DiscountCents  int64
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:         uuid.New(),
		ExperienceID:   uuid.New(),
		ExperienceName: "Sunset Kayak Tour",
		Location:       "Goa",
		SlotID:         uuid.New(),
		Date:           "2026-09-15",
		Time:           "10:00",
		GuestName:      "Asha Patel",
		GuestEmail:     "asha@example.com",
		GuestPhone:     "9876543210",
		PriceCents:     5000,
		CreatedAt:      time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	guest, err := dombooking.NewGuestContact(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	quote := dombooking.Quote{
		SubtotalCents: b.PriceCents,
		DiscountCents: b.DiscountCents,
		TotalCents:    b.PriceCents - b.DiscountCents,
	}
	return dombooking.NewBooking(uuid.Nil, b.UserID, b.ExperienceID, b.SlotID, guest, b.PromoID, quote, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExperienceID: b.ExperienceID,
		SlotID:       b.SlotID,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		GuestPhone:   b.GuestPhone,
		PromoCode:    b.PromoCode,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             uuid.New(),
		UserID:         b.UserID,
		ExperienceID:   b.ExperienceID,
		ExperienceName: b.ExperienceName,
		Location:       b.Location,
		SlotID:         b.SlotID,
		Date:           b.Date,
		Time:           b.Time,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		GuestPhone:     b.GuestPhone,
		PromoID:        b.PromoID,
		PromoCode:      b.PromoCode,
		SubtotalCents:  b.PriceCents,
		DiscountCents:  b.DiscountCents,
		TotalCents:     b.PriceCents - b.DiscountCents,
		CreatedAt:      b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:             uuid.New(),
		ExperienceID:   b.ExperienceID,
		ExperienceName: b.ExperienceName,
		Location:       b.Location,
		Date:           b.Date,
		Time:           b.Time,
		GuestName:      b.GuestName,
		TotalCents:     b.PriceCents - b.DiscountCents,
		CreatedAt:      b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildExperienceSnapshot() *shared.ExperienceSnapshot {
	return &shared.ExperienceSnapshot{
		ID:         b.ExperienceID,
		Name:       b.ExperienceName,
		PriceCents: b.PriceCents,
		Location:   b.Location,
	}
}

func (b *BookingBuilder) BuildSlotSnapshot(remaining, initial int32) *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:             b.SlotID,
		ExperienceID:   b.ExperienceID,
		Date:           b.Date,
		Time:           b.Time,
		RemainingSeats: remaining,
		InitialSeats:   initial,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithExperienceID(experienceID uuid.UUID) *BookingBuilder {
	b.ExperienceID = experienceID
	return b
}

func (b *BookingBuilder) WithSlotID(slotID uuid.UUID) *BookingBuilder {
	b.SlotID = slotID
	return b
}

func (b *BookingBuilder) WithGuest(name, email, phone string) *BookingBuilder {
	b.GuestName = name
	b.GuestEmail = email
	b.GuestPhone = phone
	return b
}

func (b *BookingBuilder) WithPromoCode(code string) *BookingBuilder {
	b.PromoCode = &code
	return b
}

func (b *BookingBuilder) WithPromoID(id uuid.UUID) *BookingBuilder {
	b.PromoID = &id
	return b
}

func (b *BookingBuilder) WithPriceCents(priceCents int64) *BookingBuilder {
	b.PriceCents = priceCents
	return b
}

func (b *BookingBuilder) WithDiscountCents(discountCents int64) *BookingBuilder {
	b.DiscountCents = discountCents
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}
