package queries

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookNotFound = errs.New("book not found")

type ListBooksFilter struct {
	Category    *string
	Promotional *bool
	Page        int32
	Limit       int32
}

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*BookDetailView, error)
	List(ctx context.Context, filter ListBooksFilter) ([]*BookListItem, int64, error)
	FindPromotional(ctx context.Context) ([]*BookListItem, error)
}

type PurchaseEntitlementStore interface {
	HasCompletedPurchase(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
}

type BookQueries interface {
	ListBooks(ctx context.Context, filter ListBooksFilter) (*BookPage, error)
	GetBook(ctx context.Context, id uuid.UUID) (*BookView, error)
	// GetBookDetails includes the ebook URL only when the requesting user
	// has a completed purchase for the book.
	GetBookDetails(ctx context.Context, id, userID uuid.UUID) (*BookDetailView, error)
	GetPromotionalBooks(ctx context.Context) ([]*BookListItem, error)
}

type bookQueriesImpl struct {
	books        BookReadStore
	entitlements PurchaseEntitlementStore
}

func NewBookQueries(books BookReadStore, entitlements PurchaseEntitlementStore) BookQueries {
	return &bookQueriesImpl{
		books:        books,
		entitlements: entitlements,
	}
}

func (q *bookQueriesImpl) ListBooks(ctx context.Context, filter ListBooksFilter) (*BookPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	books, total, err := q.books.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list books")
	}

	totalPages := (total + int64(filter.Limit) - 1) / int64(filter.Limit)

	return &BookPage{
		Books:       books,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
	}, nil
}

func (q *bookQueriesImpl) GetBook(ctx context.Context, id uuid.UUID) (*BookView, error) {
	view, err := q.books.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to find book")
	}

	return view, nil
}

func (q *bookQueriesImpl) GetBookDetails(ctx context.Context, id, userID uuid.UUID) (*BookDetailView, error) {
	detail, err := q.books.FindDetailByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to find book details")
	}

	purchased, err := q.entitlements.HasCompletedPurchase(ctx, userID, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check book entitlement")
	}
	if !purchased {
		detail.EbookURL = nil
	}

	return detail, nil
}

func (q *bookQueriesImpl) GetPromotionalBooks(ctx context.Context) ([]*BookListItem, error) {
	books, err := q.books.FindPromotional(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find promotional books")
	}

	return books, nil
}
