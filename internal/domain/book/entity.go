package book

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle    = errors.New("title is required")
	ErrInvalidAuthor   = errors.New("author is required")
	ErrInvalidISBN     = errors.New("isbn is required")
	ErrInvalidFormat   = errors.New("invalid book format")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidDiscount = errors.New("discount must be between 0 and 100")
)

type Book struct {
	id          uuid.UUID
	title       string
	synopsis    string
	coverURL    string
	author      string
	pages       int
	isbn        string
	publisher   string
	releaseDate time.Time
	format      Format
	category    string
	price       float64
	promotional bool
	discount    float64
	finalPrice  float64
	ebookURL    string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBook(
	title, synopsis, coverURL, author string,
	pages int,
	isbn, publisher string,
	releaseDate time.Time,
	format Format,
	category string,
	price float64,
	promotional bool,
	discount float64,
	ebookURL string,
) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	isbn = strings.TrimSpace(isbn)

	if title == "" {
		return nil, ErrInvalidTitle
	}
	if author == "" {
		return nil, ErrInvalidAuthor
	}
	if isbn == "" {
		return nil, ErrInvalidISBN
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if discount < 0 || discount > 100 {
		return nil, ErrInvalidDiscount
	}

	b := &Book{
		id:          uuid.New(),
		title:       title,
		synopsis:    strings.TrimSpace(synopsis),
		coverURL:    coverURL,
		author:      author,
		pages:       pages,
		isbn:        isbn,
		publisher:   strings.TrimSpace(publisher),
		releaseDate: releaseDate,
		format:      format,
		category:    strings.TrimSpace(category),
		price:       price,
		promotional: promotional,
		discount:    discount,
		ebookURL:    ebookURL,
		active:      true,
	}
	b.recalculateFinalPrice()

	return b, nil
}

func ReconstructBook(
	id uuid.UUID,
	title, synopsis, coverURL, author string,
	pages int,
	isbn, publisher string,
	releaseDate time.Time,
	format Format,
	category string,
	price float64,
	promotional bool,
	discount, finalPrice float64,
	ebookURL string,
	active bool,
	createdAt, updatedAt time.Time,
) *Book {
	return &Book{
		id:          id,
		title:       title,
		synopsis:    synopsis,
		coverURL:    coverURL,
		author:      author,
		pages:       pages,
		isbn:        isbn,
		publisher:   publisher,
		releaseDate: releaseDate,
		format:      format,
		category:    category,
		price:       price,
		promotional: promotional,
		discount:    discount,
		finalPrice:  finalPrice,
		ebookURL:    ebookURL,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// UpdateInfo replaces the descriptive fields, leaving pricing untouched.
func (b *Book) UpdateInfo(
	title, synopsis, coverURL, author string,
	pages int,
	publisher string,
	releaseDate time.Time,
	format Format,
	category, ebookURL string,
) error {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return ErrInvalidTitle
	}
	if author == "" {
		return ErrInvalidAuthor
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}

	b.title = title
	b.synopsis = strings.TrimSpace(synopsis)
	b.coverURL = coverURL
	b.author = author
	b.pages = pages
	b.publisher = strings.TrimSpace(publisher)
	b.releaseDate = releaseDate
	b.format = format
	b.category = strings.TrimSpace(category)
	b.ebookURL = ebookURL
	return nil
}

// UpdatePricing changes the price-relevant fields and recomputes the final
// price. The final price is never stored independently of its inputs.
func (b *Book) UpdatePricing(price float64, promotional bool, discount float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	if discount < 0 || discount > 100 {
		return ErrInvalidDiscount
	}

	b.price = price
	b.promotional = promotional
	b.discount = discount
	b.recalculateFinalPrice()
	return nil
}

// No rounding is applied: the subtraction keeps full float64 precision.
func (b *Book) recalculateFinalPrice() {
	if b.promotional && b.discount > 0 {
		b.finalPrice = b.price - (b.price * b.discount / 100)
	} else {
		b.finalPrice = b.price
	}
}

func (b *Book) Deactivate() {
	b.active = false
}

func (b *Book) ID() uuid.UUID          { return b.id }
func (b *Book) Title() string          { return b.title }
func (b *Book) Synopsis() string       { return b.synopsis }
func (b *Book) CoverURL() string       { return b.coverURL }
func (b *Book) Author() string         { return b.author }
func (b *Book) Pages() int             { return b.pages }
func (b *Book) ISBN() string           { return b.isbn }
func (b *Book) Publisher() string      { return b.publisher }
func (b *Book) ReleaseDate() time.Time { return b.releaseDate }
func (b *Book) Format() Format         { return b.format }
func (b *Book) Category() string       { return b.category }
func (b *Book) Price() float64         { return b.price }
func (b *Book) IsPromotional() bool    { return b.promotional }
func (b *Book) Discount() float64      { return b.discount }
func (b *Book) FinalPrice() float64    { return b.finalPrice }
func (b *Book) EbookURL() string       { return b.ebookURL }
func (b *Book) IsActive() bool         { return b.active }
func (b *Book) CreatedAt() time.Time   { return b.createdAt }
func (b *Book) UpdatedAt() time.Time   { return b.updatedAt }
