package request

import (
	"strings"

	"github.com/google/uuid"

	"tripslot/internal/domain/booking"
)

type CreateBookingRequest struct {
	ExperienceID uuid.UUID `json:"experience_id" binding:"required"`
	SlotID       uuid.UUID `json:"slot_id" binding:"required"`
	GuestName    string    `json:"guest_name" binding:"required"`
	GuestEmail   string    `json:"guest_email" binding:"required"`
	GuestPhone   string    `json:"guest_phone" binding:"required"`
	PromoCode    *string   `json:"promo_code,omitempty"`
}

func (r CreateBookingRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequest) ToGuestContact() (booking.GuestContact, error) {
	return booking.NewGuestContact(r.GuestName, r.GuestEmail, r.GuestPhone)
}
