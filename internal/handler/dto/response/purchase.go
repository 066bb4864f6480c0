package response

import (
	"time"

	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseResponse struct {
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

type PurchaseListResponse struct {
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

type PurchaseCheckResponse struct {
	Purchased   bool       `json:"purchased"`
	PurchaseID  *uuid.UUID `json:"purchase_id,omitempty"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
}

func FromPurchaseView(pm *queries.PurchaseView) *PurchaseResponse {
	return &PurchaseResponse{
		ID:           pm.ID,
		UserID:       pm.UserID,
		BookID:       pm.BookID,
		Amount:       pm.Amount,
		Method:       pm.Method,
		Status:       pm.Status,
		PurchasedAt:  pm.PurchasedAt,
		BookTitle:    pm.BookTitle,
		BookAuthor:   pm.BookAuthor,
		BookCoverURL: pm.BookCoverURL,
		BookFormat:   pm.BookFormat,
		BookCategory: pm.BookCategory,
	}
}

func FromPurchaseListItem(pm *queries.PurchaseListItem) *PurchaseListResponse {
	return &PurchaseListResponse{
		ID:           pm.ID,
		BookID:       pm.BookID,
		Amount:       pm.Amount,
		Method:       pm.Method,
		PurchasedAt:  pm.PurchasedAt,
		BookTitle:    pm.BookTitle,
		BookAuthor:   pm.BookAuthor,
		BookCoverURL: pm.BookCoverURL,
		BookFormat:   pm.BookFormat,
		BookCategory: pm.BookCategory,
	}
}

func FromPurchaseCheck(pm *queries.PurchaseCheck) *PurchaseCheckResponse {
	return &PurchaseCheckResponse{
		Purchased:   pm.Purchased,
		PurchaseID:  pm.PurchaseID,
		PurchasedAt: pm.PurchasedAt,
	}
}
