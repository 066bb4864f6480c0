package purchase

import (
	"errors"
	"time"

	"bookstore-api/internal/domain/payment"

	"github.com/google/uuid"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Purchase records a completed sale. The amount is a snapshot of the book's
// final price at purchase time and is never recomputed afterwards; records
// are immutable once created and never deleted. At most one purchase may
// ever exist per (user, book) pair.
type Purchase struct {
	id          uuid.UUID
	userID      uuid.UUID
	bookID      uuid.UUID
	amount      float64
	method      payment.Method
	status      Status
	purchasedAt time.Time
}

func NewPurchase(userID, bookID uuid.UUID, amount float64, method payment.Method, now time.Time) (*Purchase, error) {
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	if !method.IsValid() {
		return nil, payment.ErrUnsupportedMethod
	}

	return &Purchase{
		id:          uuid.New(),
		userID:      userID,
		bookID:      bookID,
		amount:      amount,
		method:      method,
		status:      StatusCompleted,
		purchasedAt: now,
	}, nil
}

func ReconstructPurchase(
	id, userID, bookID uuid.UUID,
	amount float64,
	method payment.Method,
	status Status,
	purchasedAt time.Time,
) *Purchase {
	return &Purchase{
		id:          id,
		userID:      userID,
		bookID:      bookID,
		amount:      amount,
		method:      method,
		status:      status,
		purchasedAt: purchasedAt,
	}
}

func (p *Purchase) ID() uuid.UUID          { return p.id }
func (p *Purchase) UserID() uuid.UUID      { return p.userID }
func (p *Purchase) BookID() uuid.UUID      { return p.bookID }
func (p *Purchase) Amount() float64        { return p.amount }
func (p *Purchase) Method() payment.Method { return p.method }
func (p *Purchase) Status() Status         { return p.status }
func (p *Purchase) PurchasedAt() time.Time { return p.purchasedAt }

func (p *Purchase) IsCompleted() bool {
	return p.status == StatusCompleted
}
