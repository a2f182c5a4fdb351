package response

import (
	"github.com/google/uuid"

	"tripslot/internal/usecase/queries"
)

type PromoQuoteResponse struct {
	PromoID       uuid.UUID `json:"promoId"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discountType"`
	Value         int64     `json:"value"`
	SubtotalCents int64     `json:"subtotalCents"`
	DiscountCents int64     `json:"discountCents"`
	TotalCents    int64     `json:"totalCents"`
}

func FromPromoQuoteView(view *queries.PromoQuoteView) *PromoQuoteResponse {
	return &PromoQuoteResponse{
		PromoID:       view.PromoID,
		Code:          view.Code,
		DiscountType:  view.DiscountType,
		Value:         view.Value,
		SubtotalCents: view.SubtotalCents,
		DiscountCents: view.DiscountCents,
		TotalCents:    view.TotalCents,
	}
}
