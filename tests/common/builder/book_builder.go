//go:build unit || e2e

package builder

import (
	"time"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	Title       string
	Synopsis    string
	CoverURL    string
	Author      string
	Pages       int
	ISBN        string
	Publisher   string
	ReleaseDate time.Time
	Format      string
	Category    string
	Price       float64
	Promotional bool
	Discount    float64
	EbookURL    string
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		Title:       "The Go Programming Language",
		Synopsis:    "A reference for working Go programmers.",
		CoverURL:    "https://cdn.example.com/covers/gopl.jpg",
		Author:      "Alan Donovan",
		Pages:       380,
		ISBN:        "978-0134190440",
		Publisher:   "Addison-Wesley",
		ReleaseDate: time.Date(2015, 11, 16, 0, 0, 0, 0, time.UTC),
		Format:      "epub",
		Category:    "programming",
		Price:       100.0,
		Promotional: false,
		Discount:    0,
		EbookURL:    "https://cdn.example.com/ebooks/gopl.epub",
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	format, err := book.NewFormat(b.Format)
	if err != nil {
		return nil, err
	}

	return book.NewBook(
		b.Title, b.Synopsis, b.CoverURL, b.Author,
		b.Pages, b.ISBN, b.Publisher,
		b.ReleaseDate, format, b.Category,
		b.Price, b.Promotional, b.Discount,
		b.EbookURL,
	)
}

func (b *BookBuilder) BuildView() *queries.BookView {
	now := time.Now()
	finalPrice := b.Price
	if b.Promotional && b.Discount > 0 {
		finalPrice = b.Price - (b.Price * b.Discount / 100)
	}

	return &queries.BookView{
		ID:          uuid.New(),
		Title:       b.Title,
		Synopsis:    b.Synopsis,
		CoverURL:    b.CoverURL,
		Author:      b.Author,
		Pages:       int32(b.Pages),
		ISBN:        b.ISBN,
		Publisher:   b.Publisher,
		ReleaseDate: b.ReleaseDate,
		Format:      b.Format,
		Category:    b.Category,
		Price:       b.Price,
		Promotional: b.Promotional,
		Discount:    b.Discount,
		FinalPrice:  finalPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.Title = title
	return b
}

func (b *BookBuilder) WithAuthor(author string) *BookBuilder {
	b.Author = author
	return b
}

func (b *BookBuilder) WithISBN(isbn string) *BookBuilder {
	b.ISBN = isbn
	return b
}

func (b *BookBuilder) WithFormat(format string) *BookBuilder {
	b.Format = format
	return b
}

func (b *BookBuilder) WithPrice(price float64) *BookBuilder {
	b.Price = price
	return b
}

func (b *BookBuilder) WithPromotion(discount float64) *BookBuilder {
	b.Promotional = true
	b.Discount = discount
	return b
}

func (b *BookBuilder) WithDiscount(discount float64) *BookBuilder {
	b.Discount = discount
	return b
}
