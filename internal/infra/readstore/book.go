package readstore

import (
	"context"
	"fmt"
	"strings"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookReadStore struct {
	db db.DBTX
}

func NewBookReadStore(db db.DBTX) *BookReadStore {
	return &BookReadStore{db: db}
}

func (s *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	const query = `
		SELECT id, title, synopsis, cover_url, author, pages, isbn, publisher,
		       release_date, format, category, price, promotional, discount,
		       final_price, created_at, updated_at
		FROM books
		WHERE id = $1 AND active = true`

	view, err := s.scanBookView(s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (s *BookReadStore) FindDetailByID(ctx context.Context, id uuid.UUID) (*queries.BookDetailView, error) {
	const query = `
		SELECT id, title, synopsis, cover_url, author, pages, isbn, publisher,
		       release_date, format, category, price, promotional, discount,
		       final_price, created_at, updated_at, ebook_url
		FROM books
		WHERE id = $1 AND active = true`

	var (
		view        queries.BookDetailView
		releaseDate pgtype.Timestamptz
		price       pgtype.Numeric
		discount    pgtype.Numeric
		finalPrice  pgtype.Numeric
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
		ebookURL    pgtype.Text
	)
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&view.ID, &view.Title, &view.Synopsis, &view.CoverURL, &view.Author,
		&view.Pages, &view.ISBN, &view.Publisher, &releaseDate, &view.Format,
		&view.Category, &price, &view.Promotional, &discount, &finalPrice,
		&createdAt, &updatedAt, &ebookURL,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book details", err)
	}

	if err := fillBookMoney(&view.BookView, price, discount, finalPrice); err != nil {
		return nil, err
	}
	view.ReleaseDate = pgconv.TimeFromPgtype(releaseDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	view.EbookURL = pgconv.StringPtrFromPgtype(ebookURL)

	return &view, nil
}

// List returns one page of active books plus the unpaginated total for the
// same filter.
func (s *BookReadStore) List(ctx context.Context, filter queries.ListBooksFilter) ([]*queries.BookListItem, int64, error) {
	conditions := []string{"active = true"}
	args := []any{}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("category ILIKE $%d", len(args)))
	}
	if filter.Promotional != nil {
		args = append(args, *filter.Promotional)
		conditions = append(conditions, fmt.Sprintf("promotional = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT count(*) FROM books WHERE ` + where
	var total int64
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count books", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	listQuery := fmt.Sprintf(`
		SELECT id, title, cover_url, author, format, category, price,
		       promotional, discount, final_price, created_at
		FROM books
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	items, err := s.queryListItems(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *BookReadStore) FindPromotional(ctx context.Context) ([]*queries.BookListItem, error) {
	const query = `
		SELECT id, title, cover_url, author, format, category, price,
		       promotional, discount, final_price, created_at
		FROM books
		WHERE active = true AND promotional = true AND discount > 0
		ORDER BY discount DESC, created_at DESC`

	return s.queryListItems(ctx, query)
}

func (s *BookReadStore) queryListItems(ctx context.Context, query string, args ...any) ([]*queries.BookListItem, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	items := []*queries.BookListItem{}
	for rows.Next() {
		var (
			item       queries.BookListItem
			price      pgtype.Numeric
			discount   pgtype.Numeric
			finalPrice pgtype.Numeric
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.Title, &item.CoverURL, &item.Author, &item.Format,
			&item.Category, &price, &item.Promotional, &discount, &finalPrice,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}

		if item.Price, err = pgconv.Float64FromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("invalid price value", err)
		}
		if item.Discount, err = pgconv.Float64FromNumeric(discount); err != nil {
			return nil, infra.WrapRepoErr("invalid discount value", err)
		}
		if item.FinalPrice, err = pgconv.Float64FromNumeric(finalPrice); err != nil {
			return nil, infra.WrapRepoErr("invalid final price value", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)

		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate book rows", err)
	}

	return items, nil
}

func (s *BookReadStore) scanBookView(row interface{ Scan(dest ...any) error }) (*queries.BookView, error) {
	var (
		view        queries.BookView
		releaseDate pgtype.Timestamptz
		price       pgtype.Numeric
		discount    pgtype.Numeric
		finalPrice  pgtype.Numeric
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Title, &view.Synopsis, &view.CoverURL, &view.Author,
		&view.Pages, &view.ISBN, &view.Publisher, &releaseDate, &view.Format,
		&view.Category, &price, &view.Promotional, &discount, &finalPrice,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book", err)
	}

	if err := fillBookMoney(&view, price, discount, finalPrice); err != nil {
		return nil, err
	}
	view.ReleaseDate = pgconv.TimeFromPgtype(releaseDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

func fillBookMoney(view *queries.BookView, price, discount, finalPrice pgtype.Numeric) error {
	var err error
	if view.Price, err = pgconv.Float64FromNumeric(price); err != nil {
		return infra.WrapRepoErr("invalid price value", err)
	}
	if view.Discount, err = pgconv.Float64FromNumeric(discount); err != nil {
		return infra.WrapRepoErr("invalid discount value", err)
	}
	if view.FinalPrice, err = pgconv.Float64FromNumeric(finalPrice); err != nil {
		return infra.WrapRepoErr("invalid final price value", err)
	}
	return nil
}
