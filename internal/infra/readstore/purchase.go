package readstore

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PurchaseReadStore struct {
	db db.DBTX
}

func NewPurchaseReadStore(db db.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{db: db}
}

func (s *PurchaseReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.PurchaseListItem, error) {
	const query = `
		SELECT p.id, p.book_id, p.amount, p.method, p.purchased_at,
		       b.title, b.author, b.cover_url, b.format, b.category
		FROM purchases p
		JOIN books b ON b.id = p.book_id
		WHERE p.user_id = $1 AND p.status = 'completed'
		ORDER BY p.purchased_at DESC`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchases", err)
	}
	defer rows.Close()

	items := []*queries.PurchaseListItem{}
	for rows.Next() {
		var (
			item        queries.PurchaseListItem
			amount      pgtype.Numeric
			purchasedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.BookID, &amount, &item.Method, &purchasedAt,
			&item.BookTitle, &item.BookAuthor, &item.BookCoverURL,
			&item.BookFormat, &item.BookCategory,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan purchase row", err)
		}

		if item.Amount, err = pgconv.Float64FromNumeric(amount); err != nil {
			return nil, infra.WrapRepoErr("invalid amount value", err)
		}
		item.PurchasedAt = pgconv.TimeFromPgtype(purchasedAt)

		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate purchase rows", err)
	}

	return items, nil
}

// FindByIDForUser is owner-scoped; another user's purchase reads as not found.
func (s *PurchaseReadStore) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*queries.PurchaseView, error) {
	const query = `
		SELECT p.id, p.user_id, p.book_id, p.amount, p.method, p.status, p.purchased_at,
		       b.title, b.author, b.cover_url, b.format, b.category
		FROM purchases p
		JOIN books b ON b.id = p.book_id
		WHERE p.id = $1 AND p.user_id = $2`

	var (
		view        queries.PurchaseView
		amount      pgtype.Numeric
		purchasedAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id), pgconv.UUIDToPgtype(userID)).Scan(
		&view.ID, &view.UserID, &view.BookID, &amount, &view.Method,
		&view.Status, &purchasedAt,
		&view.BookTitle, &view.BookAuthor, &view.BookCoverURL,
		&view.BookFormat, &view.BookCategory,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find purchase", err)
	}

	if view.Amount, err = pgconv.Float64FromNumeric(amount); err != nil {
		return nil, infra.WrapRepoErr("invalid amount value", err)
	}
	view.PurchasedAt = pgconv.TimeFromPgtype(purchasedAt)

	return &view, nil
}

func (s *PurchaseReadStore) FindCompleted(ctx context.Context, userID, bookID uuid.UUID) (*queries.PurchaseCheck, error) {
	const query = `
		SELECT id, purchased_at
		FROM purchases
		WHERE user_id = $1 AND book_id = $2 AND status = 'completed'`

	var (
		id          uuid.UUID
		purchasedAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(userID), pgconv.UUIDToPgtype(bookID)).Scan(&id, &purchasedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return &queries.PurchaseCheck{Purchased: false}, nil
		}
		return nil, infra.WrapRepoErr("failed to check purchase", err)
	}

	at := pgconv.TimeFromPgtype(purchasedAt)
	return &queries.PurchaseCheck{
		Purchased:   true,
		PurchaseID:  &id,
		PurchasedAt: &at,
	}, nil
}

func (s *PurchaseReadStore) HasCompletedPurchase(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM purchases
			WHERE user_id = $1 AND book_id = $2 AND status = 'completed'
		)`

	var exists bool
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(userID), pgconv.UUIDToPgtype(bookID)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check purchase entitlement", err)
	}

	return exists, nil
}
