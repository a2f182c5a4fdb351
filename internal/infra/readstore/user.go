package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"tripslot/internal/infra"
	"tripslot/internal/infra/db"
	"tripslot/internal/pkg/pgconv"
	"tripslot/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	query, args, err := qb.Select("id", "email", "role", "is_active").
		From("users").
		Where(squirrel.Eq{"id": pgconv.UUIDToPgtype(id)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build user query", err)
	}

	var (
		userID pgtype.UUID
		view   queries.AuthorizedUserView
	)
	err = s.db.QueryRow(ctx, query, args...).Scan(&userID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user", err)
	}

	view.ID = pgconv.UUIDFromPgtype(userID)
	return &view, nil
}

// FindByEmail also returns the password hash for credential checks.
// Only active accounts match; email uniqueness is scoped to them.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	query, args, err := qb.Select("id", "email", "role", "is_active", "password_hash").
		From("users").
		Where(squirrel.Eq{"email": email, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to build user query", err)
	}

	var (
		userID       pgtype.UUID
		passwordHash string
		view         queries.AuthorizedUserView
	)
	err = s.db.QueryRow(ctx, query, args...).Scan(&userID, &view.Email, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to find user", err)
	}

	view.ID = pgconv.UUIDFromPgtype(userID)
	return &view, passwordHash, nil
}
