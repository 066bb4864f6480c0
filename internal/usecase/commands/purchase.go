package commands

import (
	"context"
	"log/slog"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/payment"
	"bookstore-api/internal/domain/purchase"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrBookIDRequired          = errs.New("book id is required")
	ErrPaymentMethodRequired   = errs.New("payment method is required")
	ErrUnsupportedMethod       = errs.New("unsupported payment method")
	ErrBookNotFound            = errs.New("book not found")
	ErrAlreadyPurchased        = errs.New("book already purchased")
	ErrInvalidInstrument       = errs.New("invalid payment instrument")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookRepository interface {
	// FindActiveByID reads the book in a single query so the orchestrator
	// captures a consistent price snapshot, never separate field reads.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*book.Book, error)
}

type PurchaseRepository interface {
	Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
	// Create is the only write of the purchase flow. The storage layer
	// enforces (user_id, book_id) uniqueness at the point of insert, so a
	// lost race surfaces as KindDuplicateKey rather than a second success.
	Create(ctx context.Context, p *purchase.Purchase) (uuid.UUID, error)
}

type PurchaseCommands interface {
	CreatePurchase(ctx context.Context, req reqdto.CreatePurchaseRequest, userID uuid.UUID) (*queries.PurchaseView, error)
}

type purchaseCommandsImpl struct {
	purchaseRepo    PurchaseRepository
	bookRepo        BookRepository
	purchaseQueries queries.PurchaseQueries
	clock           clock.Clock
}

func NewPurchaseCommands(
	purchaseRepo PurchaseRepository,
	bookRepo BookRepository,
	purchaseQueries queries.PurchaseQueries,
	clock clock.Clock,
) PurchaseCommands {
	return &purchaseCommandsImpl{
		purchaseRepo:    purchaseRepo,
		bookRepo:        bookRepo,
		purchaseQueries: purchaseQueries,
		clock:           clock,
	}
}

func (c *purchaseCommandsImpl) CreatePurchase(
	ctx context.Context,
	req reqdto.CreatePurchaseRequest,
	userID uuid.UUID,
) (*queries.PurchaseView, error) {
	if req.BookID == nil {
		return nil, ErrBookIDRequired
	}
	if req.Method == nil || *req.Method == "" {
		return nil, ErrPaymentMethodRequired
	}

	method, err := payment.NewMethod(*req.Method)
	if err != nil {
		return nil, ErrUnsupportedMethod
	}

	bookEntity, err := c.findActiveBook(ctx, *req.BookID)
	if err != nil {
		return nil, err
	}

	// Fast pre-check for a friendly error. The unique constraint enforced
	// by the repository insert remains the authoritative guard under races.
	exists, err := c.purchaseRepo.Exists(ctx, userID, bookEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrAlreadyPurchased
	}

	cardInfo, err := req.ToInstrument(method).Validate(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInstrument)
	}

	purchaseEntity, err := purchase.NewPurchase(userID, bookEntity.ID(), bookEntity.FinalPrice(), method, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInstrument)
	}

	c.logProcessing(purchaseEntity, cardInfo)

	purchaseID, err := c.purchaseRepo.Create(ctx, purchaseEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the race: the insert's atomic check is authoritative.
			return nil, ErrAlreadyPurchased
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.purchaseQueries.GetPurchase(ctx, purchaseID, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *purchaseCommandsImpl) findActiveBook(ctx context.Context, bookID uuid.UUID) (*book.Book, error) {
	bookEntity, err := c.bookRepo.FindActiveByID(ctx, bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return bookEntity, nil
}

// Only network and last4 are ever logged; the full number and cvv stay out
// of logs and errors.
func (c *purchaseCommandsImpl) logProcessing(p *purchase.Purchase, cardInfo *payment.CardInfo) {
	attrs := []any{
		"method", p.Method().String(),
		"amount", p.Amount(),
		"user_id", p.UserID().String(),
		"book_id", p.BookID().String(),
	}
	if cardInfo != nil {
		attrs = append(attrs, "network", cardInfo.Network.String(), "last4", cardInfo.Last4)
	}
	slog.Info("processing payment", attrs...)
}
