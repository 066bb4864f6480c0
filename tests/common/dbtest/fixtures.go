//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE purchases, books, users CASCADE")
	return err
}

type BookFixture struct {
	ID          uuid.UUID
	Title       string
	Author      string
	ISBN        string
	Format      string
	Category    string
	Price       float64
	Promotional bool
	Discount    float64
	FinalPrice  float64
	EbookURL    string
	Active      bool
}

func NewBookFixture() *BookFixture {
	price := 100.0
	return &BookFixture{
		ID:          uuid.New(),
		Title:       "The Go Programming Language",
		Author:      "Alan Donovan",
		ISBN:        "978-" + uuid.New().String()[:10],
		Format:      "epub",
		Category:    "programming",
		Price:       price,
		Promotional: false,
		Discount:    0,
		FinalPrice:  price,
		EbookURL:    "https://cdn.example.com/ebooks/gopl.epub",
		Active:      true,
	}
}

func (f *BookFixture) WithPromotion(discount float64) *BookFixture {
	f.Promotional = true
	f.Discount = discount
	f.FinalPrice = f.Price - (f.Price * discount / 100)
	return f
}

func (f *BookFixture) AsInactive() *BookFixture {
	f.Active = false
	return f
}

// Insert writes the fixture straight into the books table, bypassing the API.
func (f *BookFixture) Insert(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO books (
			id, title, synopsis, cover_url, author, pages, isbn, publisher,
			release_date, format, category, price, promotional, discount,
			final_price, ebook_url, active
		)
		VALUES ($1, $2, '', '', $3, 0, $4, '', now(), $5, $6, $7, $8, $9, $10, $11, $12)`,
		f.ID, f.Title, f.Author, f.ISBN, f.Format, f.Category,
		f.Price, f.Promotional, f.Discount, f.FinalPrice, f.EbookURL, f.Active,
	)
	return err
}

// InsertPurchase writes a purchase row directly, bypassing the orchestrator.
func InsertPurchase(pool *pgxpool.Pool, userID, bookID uuid.UUID, amount float64, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO purchases (user_id, book_id, amount, method, status)
		VALUES ($1, $2, $3, 'card', $4)`,
		userID, bookID, amount, status,
	)
	return err
}

// UserIDByEmail looks up a registered user's generated ID.
func UserIDByEmail(pool *pgxpool.Pool, email string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var id uuid.UUID
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	return id, err
}

// PromoteToAdmin flips an already registered user's role.
func PromoteToAdmin(pool *pgxpool.Pool, email string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "UPDATE users SET role = 'admin' WHERE email = $1", email)
	return err
}
