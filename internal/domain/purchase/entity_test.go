//go:build unit

package purchase_test

import (
	"testing"
	"time"

	"bookstore-api/internal/domain/payment"
	"bookstore-api/internal/domain/purchase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchase(t *testing.T) {
	userID := uuid.New()
	bookID := uuid.New()
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		p, err := purchase.NewPurchase(userID, bookID, 79.99, payment.MethodCard, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, userID, p.UserID())
		assert.Equal(t, bookID, p.BookID())
		assert.Equal(t, 79.99, p.Amount())
		assert.Equal(t, payment.MethodCard, p.Method())
		assert.Equal(t, purchase.StatusCompleted, p.Status())
		assert.True(t, p.IsCompleted())
		assert.Equal(t, now, p.PurchasedAt())
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		p, err := purchase.NewPurchase(userID, bookID, 0, payment.MethodPayPal, now)
		require.NoError(t, err)
		assert.Equal(t, 0.0, p.Amount())
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := purchase.NewPurchase(userID, bookID, -0.01, payment.MethodCard, now)
		require.ErrorIs(t, err, purchase.ErrNegativeAmount)
	})

	t.Run("unsupported method", func(t *testing.T) {
		_, err := purchase.NewPurchase(userID, bookID, 10, payment.Method("crypto"), now)
		require.ErrorIs(t, err, payment.ErrUnsupportedMethod)
	})
}
