package promo

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInactivePromo = errors.New("promo code is not active")
)

type Promo struct {
	id       uuid.UUID
	code     Code
	discount Discount
	active   bool
}

func NewPromo(id uuid.UUID, code string, discountType string, value int64, active bool) (*Promo, error) {
	promoCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(discountType, value)
	if err != nil {
		return nil, err
	}

	return &Promo{
		id:       id,
		code:     promoCode,
		discount: discount,
		active:   active,
	}, nil
}

func (p *Promo) ValidateUsage() error {
	if !p.active {
		return ErrInactivePromo
	}
	return nil
}

// ApplyTo computes the discounted total for a subtotal, clamped at zero.
func (p *Promo) ApplyTo(subtotalCents int64) int64 {
	return p.discount.Apply(subtotalCents)
}

func (p *Promo) DiscountAmount(subtotalCents int64) int64 {
	return p.discount.CalculateDiscountAmount(subtotalCents)
}

func (p *Promo) ID() uuid.UUID      { return p.id }
func (p *Promo) Code() Code         { return p.code }
func (p *Promo) Discount() Discount { return p.discount }
func (p *Promo) IsActive() bool     { return p.active }
