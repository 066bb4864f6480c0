package repository

import (
	"context"

	"bookstore-api/internal/domain/user"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, first_name, last_name, phone, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.PasswordHash(),
		u.FirstName().Value(),
		u.LastName().Value(),
		u.Phone(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, classifyPgErr(err)...)
	}

	return id, nil
}

// FindByEmail also returns the stored password hash so the usecase can
// compare credentials without a second read.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, first_name, last_name, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, query, email.Value()).Scan(
		&view.ID, &view.Email, &view.FirstName, &view.LastName,
		&view.Role, &view.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, first_name, last_name, role, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&view.ID, &view.Email, &view.FirstName, &view.LastName,
		&view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}

	return &view, nil
}

func (r *UserRepository) UpdateLastAccess(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET last_access = now(), updated_at = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(userID)); err != nil {
		return infra.WrapRepoErr("failed to update last access", err)
	}

	return nil
}
