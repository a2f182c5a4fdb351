package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"tripslot/internal/infra"
	"tripslot/internal/infra/db"
	"tripslot/internal/pkg/pgconv"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	query, args, err := qb.Update("users").
		Set("last_login", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": pgconv.UUIDToPgtype(userID)}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build last login query", err)
	}

	if _, err := dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr(classifyPgError(err), "failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, email, passwordHash, role string) (uuid.UUID, error) {
	query, args, err := qb.Insert("users").
		Columns("email", "password_hash", "role").
		Values(email, passwordHash, role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build user insert query", err)
	}

	var id pgtype.UUID
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr(classifyPgError(err), "failed to insert user", err)
	}
	return pgconv.UUIDFromPgtype(id), nil
}
