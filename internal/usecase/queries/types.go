package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ExperienceListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	ImageURL    string    `json:"image_url"`
	Location    string    `json:"location"`
}

type ExperienceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description"`
	PriceCents      int64     `json:"price_cents"`
	ImageURL        string    `json:"image_url"`
	Location        string    `json:"location"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SlotView struct {
	ID             uuid.UUID `json:"id"`
	ExperienceID   uuid.UUID `json:"experience_id"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	RemainingSeats int32     `json:"remaining_seats"`
	InitialSeats   int32     `json:"initial_seats"`
}

// SlotDayView groups one date's slots, times ascending.
type SlotDayView struct {
	Date  string      `json:"date"`
	Slots []*SlotView `json:"slots"`
}

type PromoQuoteView struct {
	PromoID       uuid.UUID `json:"promo_id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	Value         int64     `json:"value"`
	SubtotalCents int64     `json:"subtotal_cents"`
	DiscountCents int64     `json:"discount_cents"`
	TotalCents    int64     `json:"total_cents"`
}

type BookingView struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	ExperienceID   uuid.UUID  `json:"experience_id"`
	ExperienceName string     `json:"experience_name"`
	Location       string     `json:"location"`
	SlotID         uuid.UUID  `json:"slot_id"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	GuestName      string     `json:"guest_name"`
	GuestEmail     string     `json:"guest_email"`
	GuestPhone     string     `json:"guest_phone"`
	PromoID        *uuid.UUID `json:"promo_id,omitempty"`
	PromoCode      *string    `json:"promo_code,omitempty"`
	SubtotalCents  int64      `json:"subtotal_cents"`
	DiscountCents  int64      `json:"discount_cents"`
	TotalCents     int64      `json:"total_cents"`
	CreatedAt      time.Time  `json:"created_at"`
}

type BookingListItem struct {
	ID             uuid.UUID `json:"id"`
	ExperienceID   uuid.UUID `json:"experience_id"`
	ExperienceName string    `json:"experience_name"`
	Location       string    `json:"location"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	GuestName      string    `json:"guest_name"`
	TotalCents     int64     `json:"total_cents"`
	CreatedAt      time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
