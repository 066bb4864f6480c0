//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/purchase"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"
	"bookstore-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookRepo struct {
	mock.Mock
}

func (m *mockBookRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*book.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPurchaseRepo struct {
	mock.Mock
}

func (m *mockPurchaseRepo) Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, bookID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPurchaseRepo) Create(ctx context.Context, p *purchase.Purchase) (uuid.UUID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockPurchaseQueries struct {
	mock.Mock
}

func (m *mockPurchaseQueries) GetUserPurchases(ctx context.Context, userID uuid.UUID) ([]*queries.PurchaseListItem, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*queries.PurchaseListItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPurchaseQueries) GetPurchase(ctx context.Context, id, userID uuid.UUID) (*queries.PurchaseView, error) {
	args := m.Called(ctx, id, userID)
	if v := args.Get(0); v != nil {
		return v.(*queries.PurchaseView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPurchaseQueries) CheckBookPurchase(ctx context.Context, userID, bookID uuid.UUID) (*queries.PurchaseCheck, error) {
	args := m.Called(ctx, userID, bookID)
	if v := args.Get(0); v != nil {
		return v.(*queries.PurchaseCheck), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPurchaseQueries) HasPurchased(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, bookID)
	return args.Bool(0), args.Error(1)
}

type purchaseFixture struct {
	bookRepo     *mockBookRepo
	purchaseRepo *mockPurchaseRepo
	queries      *mockPurchaseQueries
	clock        *clock.MockClock
	commands     commands.PurchaseCommands
	userID       uuid.UUID
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()

	f := &purchaseFixture{
		bookRepo:     &mockBookRepo{},
		purchaseRepo: &mockPurchaseRepo{},
		queries:      &mockPurchaseQueries{},
		clock:        clock.NewMockClock(time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)),
		userID:       uuid.New(),
	}
	f.commands = commands.NewPurchaseCommands(f.purchaseRepo, f.bookRepo, f.queries, f.clock)
	return f
}

func (f *purchaseFixture) assertExpectations(t *testing.T) {
	f.bookRepo.AssertExpectations(t)
	f.purchaseRepo.AssertExpectations(t)
	f.queries.AssertExpectations(t)
}

func promotionalBook(t *testing.T) *book.Book {
	t.Helper()
	b, err := builder.NewBookBuilder().WithPrice(100).WithPromotion(20).BuildDomain()
	require.NoError(t, err)
	return b
}

func TestCreatePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("success: completed purchase at the discounted price", func(t *testing.T) {
		f := newPurchaseFixture(t)
		b := promotionalBook(t)
		req := builder.NewPurchaseRequestBuilder().WithBookID(b.ID()).BuildDTO()
		purchaseID := uuid.New()
		view := &queries.PurchaseView{ID: purchaseID, Amount: 80}

		f.bookRepo.On("FindActiveByID", ctx, b.ID()).Return(b, nil)
		f.purchaseRepo.On("Exists", ctx, f.userID, b.ID()).Return(false, nil)
		f.purchaseRepo.On("Create", ctx, mock.MatchedBy(func(p *purchase.Purchase) bool {
			return p.Amount() == 80 &&
				p.UserID() == f.userID &&
				p.BookID() == b.ID() &&
				p.IsCompleted() &&
				p.PurchasedAt() == f.clock.Now()
		})).Return(purchaseID, nil)
		f.queries.On("GetPurchase", ctx, purchaseID, f.userID).Return(view, nil)

		got, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
		f.assertExpectations(t)
	})

	t.Run("missing book id", func(t *testing.T) {
		f := newPurchaseFixture(t)
		req := builder.NewPurchaseRequestBuilder().WithoutBookID().BuildDTO()

		_, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.ErrorIs(t, err, commands.ErrBookIDRequired)
	})

	t.Run("missing method", func(t *testing.T) {
		f := newPurchaseFixture(t)
		req := builder.NewPurchaseRequestBuilder().WithoutMethod().BuildDTO()

		_, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.ErrorIs(t, err, commands.ErrPaymentMethodRequired)
	})

	t.Run("unsupported method", func(t *testing.T) {
		f := newPurchaseFixture(t)
		req := builder.NewPurchaseRequestBuilder().WithMethod("crypto").BuildDTO()

		_, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.ErrorIs(t, err, commands.ErrUnsupportedMethod)
	})

	t.Run("book not found or inactive", func(t *testing.T) {
		f := newPurchaseFixture(t)
		req := builder.NewPurchaseRequestBuilder().BuildDTO()

		f.bookRepo.On("FindActiveByID", ctx, *req.BookID).
			Return(nil, infra.WrapRepoErr("book not found", nil, infra.KindNotFound))

		_, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.ErrorIs(t, err, commands.ErrBookNotFound)
		f.assertExpectations(t)
	})

	t.Run("already purchased via pre-check", func(t *testing.T) {
		f := newPurchaseFixture(t)
		b := promotionalBook(t)
		req := builder.NewPurchaseRequestBuilder().WithBookID(b.ID()).BuildDTO()

		f.bookRepo.On("FindActiveByID", ctx, b.ID()).Return(b, nil)
		f.purchaseRepo.On("Exists", ctx, f.userID, b.ID()).Return(true, nil)

		_, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.ErrorIs(t, err, commands.ErrAlreadyPurchased)
		f.purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("invalid instrument never reaches the ledger", func(t *testing.T) {
		f := newPurchaseFixture(t)
		b := promotionalBook(t)
		req := builder.NewPurchaseRequestBuilder().
			WithBookID(b.ID()).
			WithCard(&reqdto.CardPayload{
				Number:     "4539148803436468", // checksum failure
				Expiry:     "12/30",
				CVV:        "123",
				HolderName: "JOHN DOE",
			}).
			BuildDTO()

		f.bookRepo.On("FindActiveByID", ctx, b.ID()).Return(b, nil)
		f.purchaseRepo.On("Exists", ctx, f.userID, b.ID()).Return(false, nil)

		_, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.ErrorIs(t, err, commands.ErrInvalidInstrument)
		f.purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("expired card against the injected clock", func(t *testing.T) {
		f := newPurchaseFixture(t)
		b := promotionalBook(t)
		req := builder.NewPurchaseRequestBuilder().
			WithBookID(b.ID()).
			WithCard(&reqdto.CardPayload{
				Number:     "4539148803436467",
				Expiry:     "02/25",
				CVV:        "123",
				HolderName: "JOHN DOE",
			}).
			BuildDTO()

		f.bookRepo.On("FindActiveByID", ctx, b.ID()).Return(b, nil)
		f.purchaseRepo.On("Exists", ctx, f.userID, b.ID()).Return(false, nil)

		_, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.ErrorIs(t, err, commands.ErrInvalidInstrument)
		f.assertExpectations(t)
	})

	t.Run("lost insert race maps to already purchased", func(t *testing.T) {
		f := newPurchaseFixture(t)
		b := promotionalBook(t)
		req := builder.NewPurchaseRequestBuilder().WithBookID(b.ID()).BuildDTO()

		f.bookRepo.On("FindActiveByID", ctx, b.ID()).Return(b, nil)
		f.purchaseRepo.On("Exists", ctx, f.userID, b.ID()).Return(false, nil)
		f.purchaseRepo.On("Create", ctx, mock.Anything).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate purchase", nil, infra.KindDuplicateKey))

		_, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.ErrorIs(t, err, commands.ErrAlreadyPurchased)
		f.assertExpectations(t)
	})

	t.Run("paypal purchase", func(t *testing.T) {
		f := newPurchaseFixture(t)
		b := promotionalBook(t)
		req := builder.NewPurchaseRequestBuilder().
			WithBookID(b.ID()).
			AsPayPal("buyer@example.com").
			BuildDTO()
		purchaseID := uuid.New()

		f.bookRepo.On("FindActiveByID", ctx, b.ID()).Return(b, nil)
		f.purchaseRepo.On("Exists", ctx, f.userID, b.ID()).Return(false, nil)
		f.purchaseRepo.On("Create", ctx, mock.Anything).Return(purchaseID, nil)
		f.queries.On("GetPurchase", ctx, purchaseID, f.userID).
			Return(&queries.PurchaseView{ID: purchaseID}, nil)

		_, err := f.commands.CreatePurchase(ctx, req, f.userID)
		require.NoError(t, err)
		f.assertExpectations(t)
	})
}
