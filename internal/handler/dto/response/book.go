package response

import (
	"time"

	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookResponse struct {
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
	EbookURL    *string   `json:"ebook_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookListResponse struct {
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

type BookPageResponse struct {
	Books       []*BookListResponse `json:"books"`
	Total       int64               `json:"total"`
	TotalPages  int64               `json:"total_pages"`
	CurrentPage int32               `json:"current_page"`
}

func FromBookView(bm *queries.BookView) *BookResponse {
	return &BookResponse{
		ID:          bm.ID,
		Title:       bm.Title,
		Synopsis:    bm.Synopsis,
		CoverURL:    bm.CoverURL,
		Author:      bm.Author,
		Pages:       bm.Pages,
		ISBN:        bm.ISBN,
		Publisher:   bm.Publisher,
		ReleaseDate: bm.ReleaseDate,
		Format:      bm.Format,
		Category:    bm.Category,
		Price:       bm.Price,
		Promotional: bm.Promotional,
		Discount:    bm.Discount,
		FinalPrice:  bm.FinalPrice,
		CreatedAt:   bm.CreatedAt,
		UpdatedAt:   bm.UpdatedAt,
	}
}

func FromBookDetailView(bm *queries.BookDetailView) *BookResponse {
	resp := FromBookView(&bm.BookView)
	resp.EbookURL = bm.EbookURL
	return resp
}

func FromBookListItem(bm *queries.BookListItem) *BookListResponse {
	return &BookListResponse{
		ID:          bm.ID,
		Title:       bm.Title,
		CoverURL:    bm.CoverURL,
		Author:      bm.Author,
		Format:      bm.Format,
		Category:    bm.Category,
		Price:       bm.Price,
		Promotional: bm.Promotional,
		Discount:    bm.Discount,
		FinalPrice:  bm.FinalPrice,
		CreatedAt:   bm.CreatedAt,
	}
}

func FromBookPage(page *queries.BookPage) *BookPageResponse {
	books := make([]*BookListResponse, 0, len(page.Books))
	for _, b := range page.Books {
		books = append(books, FromBookListItem(b))
	}
	return &BookPageResponse{
		Books:       books,
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	}
}
