package repository

import (
	"context"
	"errors"

	"bookstore-api/internal/domain/purchase"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PurchaseRepository struct {
	db db.DBTX
}

func NewPurchaseRepository(db db.DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create inserts the purchase. The purchases table carries a unique
// constraint on (user_id, book_id), so a concurrent duplicate comes back as
// KindDuplicateKey instead of a second row.
func (r *PurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) (uuid.UUID, error) {
	const query = `
		INSERT INTO purchases (id, user_id, book_id, amount, method, status, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		pgconv.UUIDToPgtype(p.UserID()),
		pgconv.UUIDToPgtype(p.BookID()),
		pgconv.Float64ToNumeric(p.Amount()),
		p.Method().String(),
		p.Status().String(),
		pgconv.TimeToPgtype(p.PurchasedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create purchase", err, classifyPgErr(err)...)
	}

	return id, nil
}

func (r *PurchaseRepository) Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM purchases
			WHERE user_id = $1 AND book_id = $2
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(userID),
		pgconv.UUIDToPgtype(bookID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check purchase existence", err)
	}

	return exists, nil
}

func classifyPgErr(err error) []infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return []infra.RepositoryErrorKind{infra.KindDuplicateKey}
		case pgForeignKeyViolation:
			return []infra.RepositoryErrorKind{infra.KindForeignKeyViolated}
		}
	}
	return nil
}
