package queries

import (
	"context"

	"github.com/google/uuid"

	"tripslot/internal/domain/promo"
	"tripslot/internal/infra"
	"tripslot/internal/pkg/errs"
)

var (
	ErrPromoNotFound = errs.New("promo code not found")
	ErrPromoInactive = errs.New("promo code is not active")
	ErrPromoInvalid  = errs.New("promo code is invalid")
)

type PromoRecord struct {
	ID           uuid.UUID
	Code         string
	DiscountType string
	Value        int64
	Active       bool
}

type PromoQueries interface {
	Validate(ctx context.Context, code string, experienceID uuid.UUID) (*PromoQuoteView, error)
}

type PromoViewRepo interface {
	FindByCode(ctx context.Context, code string) (*PromoRecord, error)
}

type promoQueriesImpl struct {
	promos      PromoViewRepo
	experiences ExperienceViewRepo
}

func NewPromoQueries(promos PromoViewRepo, experiences ExperienceViewRepo) PromoQueries {
	return &promoQueriesImpl{
		promos:      promos,
		experiences: experiences,
	}
}

// Validate quotes the discounted price for an experience without reserving
// anything. The commit path recomputes the same quote server-side, so a
// stale quote can never buy a cheaper seat.
func (q *promoQueriesImpl) Validate(ctx context.Context, code string, experienceID uuid.UUID) (*PromoQuoteView, error) {
	normalized, err := promo.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, ErrPromoInvalid)
	}

	experienceView, err := q.experiences.FindByID(ctx, experienceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}

	record, err := q.promos.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}

	promoEntity, err := promo.NewPromo(record.ID, record.Code, record.DiscountType, record.Value, record.Active)
	if err != nil {
		return nil, errs.Mark(err, ErrPromoInvalid)
	}

	if err := promoEntity.ValidateUsage(); err != nil {
		return nil, errs.Mark(err, ErrPromoInactive)
	}

	subtotal := experienceView.PriceCents
	return &PromoQuoteView{
		PromoID:       record.ID,
		Code:          record.Code,
		DiscountType:  record.DiscountType,
		Value:         record.Value,
		SubtotalCents: subtotal,
		DiscountCents: promoEntity.DiscountAmount(subtotal),
		TotalCents:    promoEntity.ApplyTo(subtotal),
	}, nil
}
