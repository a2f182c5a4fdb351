package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"tripslot/internal/usecase/queries"
)

type BookingResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	ExperienceID   uuid.UUID  `json:"experienceId"`
	ExperienceName string     `json:"experienceName"`
	Location       string     `json:"location"`
	SlotID         uuid.UUID  `json:"slotId"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	GuestName      string     `json:"guestName"`
	GuestEmail     string     `json:"guestEmail"`
	GuestPhone     string     `json:"guestPhone"`
	PromoID        *uuid.UUID `json:"promoId,omitempty"`
	PromoCode      *string    `json:"promoCode,omitempty"`
	SubtotalCents  int64      `json:"subtotalCents"`
	DiscountCents  int64      `json:"discountCents"`
	TotalCents     int64      `json:"totalCents"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type BookingListResponse struct {
	ID             uuid.UUID `json:"id"`
	ExperienceID   uuid.UUID `json:"experienceId"`
	ExperienceName string    `json:"experienceName"`
	Location       string    `json:"location"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	GuestName      string    `json:"guestName"`
	TotalCents     int64     `json:"totalCents"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingListItems(items []*queries.BookingListItem) ([]*BookingListResponse, error) {
	resp := make([]*BookingListResponse, 0, len(items))
	if err := copier.Copy(&resp, items); err != nil {
		return nil, err
	}
	return resp, nil
}
