package queries

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPurchaseNotFound = errs.New("purchase not found")

type PurchaseReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*PurchaseListItem, error)
	// FindByIDForUser is owner-scoped: a purchase belonging to another user
	// reads as not found.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*PurchaseView, error)
	FindCompleted(ctx context.Context, userID, bookID uuid.UUID) (*PurchaseCheck, error)
	HasCompletedPurchase(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
}

type PurchaseQueries interface {
	GetUserPurchases(ctx context.Context, userID uuid.UUID) ([]*PurchaseListItem, error)
	GetPurchase(ctx context.Context, id, userID uuid.UUID) (*PurchaseView, error)
	CheckBookPurchase(ctx context.Context, userID, bookID uuid.UUID) (*PurchaseCheck, error)
	HasPurchased(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
}

type purchaseQueriesImpl struct {
	purchases PurchaseReadStore
}

func NewPurchaseQueries(purchases PurchaseReadStore) PurchaseQueries {
	return &purchaseQueriesImpl{
		purchases: purchases,
	}
}

func (q *purchaseQueriesImpl) GetUserPurchases(ctx context.Context, userID uuid.UUID) ([]*PurchaseListItem, error) {
	purchases, err := q.purchases.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user purchases")
	}

	return purchases, nil
}

func (q *purchaseQueriesImpl) GetPurchase(ctx context.Context, id, userID uuid.UUID) (*PurchaseView, error) {
	view, err := q.purchases.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, errs.Wrap(err, "failed to find purchase")
	}

	return view, nil
}

func (q *purchaseQueriesImpl) CheckBookPurchase(ctx context.Context, userID, bookID uuid.UUID) (*PurchaseCheck, error) {
	check, err := q.purchases.FindCompleted(ctx, userID, bookID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check book purchase")
	}

	return check, nil
}

func (q *purchaseQueriesImpl) HasPurchased(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	purchased, err := q.purchases.HasCompletedPurchase(ctx, userID, bookID)
	if err != nil {
		return false, errs.Wrap(err, "failed to check purchase entitlement")
	}

	return purchased, nil
}
