package repository

import (
	"context"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookRepository struct {
	db db.DBTX
}

func NewBookRepository(db db.DBTX) *BookRepository {
	return &BookRepository{db: db}
}

const bookColumns = `
	id, title, synopsis, cover_url, author, pages, isbn, publisher,
	release_date, format, category, price, promotional, discount,
	final_price, ebook_url, active, created_at, updated_at`

func (r *BookRepository) Create(ctx context.Context, b *book.Book) (uuid.UUID, error) {
	const query = `
		INSERT INTO books (
			id, title, synopsis, cover_url, author, pages, isbn, publisher,
			release_date, format, category, price, promotional, discount,
			final_price, ebook_url, active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		b.Title(),
		b.Synopsis(),
		b.CoverURL(),
		b.Author(),
		int32(b.Pages()),
		b.ISBN(),
		b.Publisher(),
		pgconv.TimeToPgtype(b.ReleaseDate()),
		b.Format().String(),
		b.Category(),
		pgconv.Float64ToNumeric(b.Price()),
		b.IsPromotional(),
		pgconv.Float64ToNumeric(b.Discount()),
		pgconv.Float64ToNumeric(b.FinalPrice()),
		b.EbookURL(),
		b.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create book", err, classifyPgErr(err)...)
	}

	return id, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	return r.findOne(ctx, query, pgconv.UUIDToPgtype(id))
}

// FindActiveByID reads the book row in one query so callers get a consistent
// snapshot of price, promotional flag and discount.
func (r *BookRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 AND active = true`
	return r.findOne(ctx, query, pgconv.UUIDToPgtype(id))
}

func (r *BookRepository) findOne(ctx context.Context, query string, args ...any) (*book.Book, error) {
	var (
		id          uuid.UUID
		title       string
		synopsis    string
		coverURL    string
		author      string
		pages       int32
		isbn        string
		publisher   string
		releaseDate pgtype.Timestamptz
		format      string
		category    string
		price       pgtype.Numeric
		promotional bool
		discount    pgtype.Numeric
		finalPrice  pgtype.Numeric
		ebookURL    string
		active      bool
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&id, &title, &synopsis, &coverURL, &author, &pages, &isbn, &publisher,
		&releaseDate, &format, &category, &price, &promotional, &discount,
		&finalPrice, &ebookURL, &active, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book", err)
	}

	priceVal, err := pgconv.Float64FromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid price value", err)
	}
	discountVal, err := pgconv.Float64FromNumeric(discount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid discount value", err)
	}
	finalPriceVal, err := pgconv.Float64FromNumeric(finalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid final price value", err)
	}

	return book.ReconstructBook(
		id, title, synopsis, coverURL, author,
		int(pages), isbn, publisher,
		pgconv.TimeFromPgtype(releaseDate),
		book.Format(format), category,
		priceVal, promotional, discountVal, finalPriceVal,
		ebookURL, active,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	const query = `
		UPDATE books SET
			title = $2, synopsis = $3, cover_url = $4, author = $5, pages = $6,
			publisher = $7, release_date = $8, format = $9, category = $10,
			price = $11, promotional = $12, discount = $13, final_price = $14,
			ebook_url = $15, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		b.Title(),
		b.Synopsis(),
		b.CoverURL(),
		b.Author(),
		int32(b.Pages()),
		b.Publisher(),
		pgconv.TimeToPgtype(b.ReleaseDate()),
		b.Format().String(),
		b.Category(),
		pgconv.Float64ToNumeric(b.Price()),
		b.IsPromotional(),
		pgconv.Float64ToNumeric(b.Discount()),
		pgconv.Float64ToNumeric(b.FinalPrice()),
		b.EbookURL(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err, classifyPgErr(err)...)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}

	return nil
}

// Deactivate is a soft delete; purchase rows keep referencing the book.
func (r *BookRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE books SET active = false, updated_at = now() WHERE id = $1 AND active = true`

	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}

	return nil
}
