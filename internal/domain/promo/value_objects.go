package promo

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPromoCode      = errors.New("invalid promo code format")
	ErrInvalidDiscountType   = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountValue  = errors.New("discount value cannot be negative")
	ErrInvalidPercentOverMax = errors.New("percentage discount must be between 0 and 100")
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCode normalizes user input: codes are case-insensitive and stored upper-case.
func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !promoCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidPromoCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	kind  DiscountType
	value int64
}

func NewPercentageDiscount(percentOff int64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidPercentOverMax
	}
	return Discount{kind: DiscountPercentage, value: percentOff}, nil
}

func NewFixedDiscount(amountOffCents int64) (Discount, error) {
	if amountOffCents < 0 {
		return Discount{}, ErrInvalidDiscountValue
	}
	return Discount{kind: DiscountFixed, value: amountOffCents}, nil
}

func NewDiscount(discountType string, value int64) (Discount, error) {
	switch DiscountType(discountType) {
	case DiscountPercentage:
		return NewPercentageDiscount(value)
	case DiscountFixed:
		return NewFixedDiscount(value)
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Kind() DiscountType { return d.kind }
func (d Discount) Value() int64       { return d.value }

func (d Discount) IsPercentage() bool {
	return d.kind == DiscountPercentage
}

// CalculateDiscountAmount returns the discount in cents, never more than the subtotal.
func (d Discount) CalculateDiscountAmount(subtotalCents int64) int64 {
	var amount int64
	if d.IsPercentage() {
		amount = subtotalCents * d.value / 100
	} else {
		amount = d.value
	}

	if amount > subtotalCents {
		return subtotalCents
	}
	return amount
}

func (d Discount) Apply(subtotalCents int64) int64 {
	result := subtotalCents - d.CalculateDiscountAmount(subtotalCents)
	if result < 0 {
		return 0
	}
	return result
}
