package request

import (
	"time"

	"bookstore-api/internal/domain/book"
)

type CreateBookRequest struct {
	Title       string    `json:"title" binding:"required"`
	Synopsis    string    `json:"synopsis"`
	CoverURL    string    `json:"cover_url"`
	Author      string    `json:"author" binding:"required"`
	Pages       int       `json:"pages"`
	ISBN        string    `json:"isbn" binding:"required"`
	Publisher   string    `json:"publisher"`
	ReleaseDate time.Time `json:"release_date"`
	Format      string    `json:"format" binding:"required"`
	Category    string    `json:"category"`
	Price       float64   `json:"price" binding:"min=0"`
	Promotional bool      `json:"promotional"`
	Discount    float64   `json:"discount"`
	EbookURL    string    `json:"ebook_url"`
}

func (r CreateBookRequest) ToDomain() (*book.Book, error) {
	format, err := book.NewFormat(r.Format)
	if err != nil {
		return nil, err
	}

	return book.NewBook(
		r.Title,
		r.Synopsis,
		r.CoverURL,
		r.Author,
		r.Pages,
		r.ISBN,
		r.Publisher,
		r.ReleaseDate,
		format,
		r.Category,
		r.Price,
		r.Promotional,
		r.Discount,
		r.EbookURL,
	)
}

// UpdateBookRequest uses pointer fields so absent values leave the stored
// ones untouched.
type UpdateBookRequest struct {
	Title       *string    `json:"title,omitempty"`
	Synopsis    *string    `json:"synopsis,omitempty"`
	CoverURL    *string    `json:"cover_url,omitempty"`
	Author      *string    `json:"author,omitempty"`
	Pages       *int       `json:"pages,omitempty"`
	Publisher   *string    `json:"publisher,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Format      *string    `json:"format,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Promotional *bool      `json:"promotional,omitempty"`
	Discount    *float64   `json:"discount,omitempty"`
	EbookURL    *string    `json:"ebook_url,omitempty"`
}

func (r UpdateBookRequest) ApplyTo(b *book.Book) error {
	format := b.Format()
	if r.Format != nil {
		parsed, err := book.NewFormat(*r.Format)
		if err != nil {
			return err
		}
		format = parsed
	}

	if err := b.UpdateInfo(
		stringOr(r.Title, b.Title()),
		stringOr(r.Synopsis, b.Synopsis()),
		stringOr(r.CoverURL, b.CoverURL()),
		stringOr(r.Author, b.Author()),
		intOr(r.Pages, b.Pages()),
		stringOr(r.Publisher, b.Publisher()),
		timeOr(r.ReleaseDate, b.ReleaseDate()),
		format,
		stringOr(r.Category, b.Category()),
		stringOr(r.EbookURL, b.EbookURL()),
	); err != nil {
		return err
	}

	return b.UpdatePricing(
		floatOr(r.Price, b.Price()),
		boolOr(r.Promotional, b.IsPromotional()),
		floatOr(r.Discount, b.Discount()),
	)
}

func stringOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

func timeOr(v *time.Time, fallback time.Time) time.Time {
	if v != nil {
		return *v
	}
	return fallback
}
