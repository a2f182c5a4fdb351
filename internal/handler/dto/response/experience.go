package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"tripslot/internal/usecase/queries"
)

type ExperienceListResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	ImageURL    string    `json:"imageUrl"`
	Location    string    `json:"location"`
}

type ExperienceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	PriceCents      int64     `json:"priceCents"`
	ImageURL        string    `json:"imageUrl"`
	Location        string    `json:"location"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type SlotResponse struct {
	ID             uuid.UUID `json:"id"`
	ExperienceID   uuid.UUID `json:"experienceId"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	RemainingSeats int32     `json:"remainingSeats"`
	InitialSeats   int32     `json:"initialSeats"`
}

type SlotDayResponse struct {
	Date  string          `json:"date"`
	Slots []*SlotResponse `json:"slots"`
}

func FromExperienceView(view *queries.ExperienceView) (*ExperienceResponse, error) {
	var resp ExperienceResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromExperienceListItems(items []*queries.ExperienceListItem) ([]*ExperienceListResponse, error) {
	resp := make([]*ExperienceListResponse, 0, len(items))
	if err := copier.Copy(&resp, items); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromSlotDayViews(days []*queries.SlotDayView) ([]*SlotDayResponse, error) {
	resp := make([]*SlotDayResponse, 0, len(days))
	if err := copier.Copy(&resp, days); err != nil {
		return nil, err
	}
	return resp, nil
}
