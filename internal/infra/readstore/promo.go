package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"

	"tripslot/internal/infra"
	"tripslot/internal/infra/db"
	"tripslot/internal/pkg/pgconv"
	"tripslot/internal/usecase/queries"
)

type PromoReadStore struct {
	db db.DBTX
}

func NewPromoReadStore(dbtx db.DBTX) *PromoReadStore {
	return &PromoReadStore{db: dbtx}
}

func (s *PromoReadStore) FindByCode(ctx context.Context, code string) (*queries.PromoRecord, error) {
	query, args, err := qb.Select("id", "code", "discount_type", "value", "active").
		From("promo_codes").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build promo query", err)
	}

	var (
		id     pgtype.UUID
		record queries.PromoRecord
	)
	err = s.db.QueryRow(ctx, query, args...).Scan(&id, &record.Code, &record.DiscountType, &record.Value, &record.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "promo code not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find promo code", err)
	}

	record.ID = pgconv.UUIDFromPgtype(id)
	return &record, nil
}
