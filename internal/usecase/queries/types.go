package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Synopsis    string    `json:"synopsis"`
	CoverURL    string    `json:"cover_url"`
	Author      string    `json:"author"`
	Pages       int32     `json:"pages"`
	ISBN        string    `json:"isbn"`
	Publisher   string    `json:"publisher"`
	ReleaseDate time.Time `json:"release_date"`
	Format      string    `json:"format"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Promotional bool      `json:"promotional"`
	Discount    float64   `json:"discount"`
	FinalPrice  float64   `json:"final_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookDetailView additionally carries the ebook URL, which is only exposed
// to users who purchased the book.
type BookDetailView struct {
	BookView
	EbookURL *string `json:"ebook_url,omitempty"`
}

type BookListItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	CoverURL    string    `json:"cover_url"`
	Author      string    `json:"author"`
	Format      string    `json:"format"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Promotional bool      `json:"promotional"`
	Discount    float64   `json:"discount"`
	FinalPrice  float64   `json:"final_price"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookPage struct {
	Books       []*BookListItem `json:"books"`
	Total       int64           `json:"total"`
	TotalPages  int64           `json:"total_pages"`
	CurrentPage int32           `json:"current_page"`
}

type PurchaseView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	BookID       uuid.UUID `json:"book_id"`
	Amount       float64   `json:"amount"`
	Method       string    `json:"method"`
	Status       string    `json:"status"`
	PurchasedAt  time.Time `json:"purchased_at"`
	BookTitle    string    `json:"book_title"`
	BookAuthor   string    `json:"book_author"`
	BookCoverURL string    `json:"book_cover_url"`
	BookFormat   string    `json:"book_format"`
	BookCategory string    `json:"book_category"`
}

type PurchaseListItem struct {
	ID           uuid.UUID `json:"id"`
	BookID       uuid.UUID `json:"book_id"`
	Amount       float64   `json:"amount"`
	Method       string    `json:"method"`
	PurchasedAt  time.Time `json:"purchased_at"`
	BookTitle    string    `json:"book_title"`
	BookAuthor   string    `json:"book_author"`
	BookCoverURL string    `json:"book_cover_url"`
	BookFormat   string    `json:"book_format"`
	BookCategory string    `json:"book_category"`
}

type PurchaseCheck struct {
	Purchased   bool       `json:"purchased"`
	PurchaseID  *uuid.UUID `json:"purchase_id,omitempty"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}
