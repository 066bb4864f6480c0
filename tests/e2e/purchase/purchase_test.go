//go:build e2e

package purchase_test

import (
	"net/http"
	"sync/atomic"
	"testing"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/tests/common/builder"
	"bookstore-api/tests/common/dbtest"
	"bookstore-api/tests/common/httptest"
	"bookstore-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	registerURL  = "/api/auth/register"
	loginURL     = "/api/auth/login"
	purchasesURL = "/api/purchases"
)

type purchaseSuite struct {
	e2e.SharedSuite
}

func TestPurchaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(purchaseSuite))
}

// registerAndLogin creates a fresh account through the API and returns its
// access token.
func (s *purchaseSuite) registerAndLogin(email string) string {
	t := s.T()

	registerReq := reqdto.RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "Reader",
	}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, registerReq, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	loginReq := reqdto.LoginRequest{Email: email, Password: "password123"}
	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, loginReq, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loginResp resdto.LoginResponse
	httptest.DecodeResponse(t, rec, &loginResp)
	require.NotEmpty(t, loginResp.AccessToken)

	return loginResp.AccessToken
}

func (s *purchaseSuite) cardPurchaseRequest(fixture *dbtest.BookFixture) reqdto.CreatePurchaseRequest {
	return builder.NewPurchaseRequestBuilder().WithBookID(fixture.ID).BuildDTO()
}

func (s *purchaseSuite) TestPurchaseFlow() {
	s.Run("buying at the promotional price unlocks the ebook", func() {
		t := s.T()
		token := s.registerAndLogin("buyer@example.com")

		fixture := dbtest.NewBookFixture().WithPromotion(20)
		require.NoError(t, fixture.Insert(s.DB))

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, s.cardPurchaseRequest(fixture), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created resdto.PurchaseResponse
		httptest.DecodeResponse(t, rec, &created)
		require.Equal(t, fixture.ID, created.BookID)
		require.Equal(t, 80.0, created.Amount)
		require.Equal(t, "completed", created.Status)

		// The buyer sees the ebook URL on the detail read.
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/books/"+fixture.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		var detail resdto.BookResponse
		httptest.DecodeResponse(t, rec, &detail)
		require.NotNil(t, detail.EbookURL)

		// An anonymous reader does not.
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/books/"+fixture.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var anonDetail resdto.BookResponse
		httptest.DecodeResponse(t, rec, &anonDetail)
		require.Nil(t, anonDetail.EbookURL)
	})

	s.Run("second purchase of the same book is rejected", func() {
		t := s.T()
		token := s.registerAndLogin("repeat@example.com")

		fixture := dbtest.NewBookFixture()
		require.NoError(t, fixture.Insert(s.DB))

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, s.cardPurchaseRequest(fixture), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, s.cardPurchaseRequest(fixture), token)
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	})

	s.Run("invalid card leaves no purchase behind", func() {
		t := s.T()
		token := s.registerAndLogin("declined@example.com")

		fixture := dbtest.NewBookFixture()
		require.NoError(t, fixture.Insert(s.DB))

		req := builder.NewPurchaseRequestBuilder().
			WithBookID(fixture.ID).
			WithCard(&reqdto.CardPayload{
				Number:     "4539148803436468",
				Expiry:     "12/30",
				CVV:        "123",
				HolderName: "JOHN DOE",
			}).
			BuildDTO()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, req, token)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

		var errResp httperr.Response
		httptest.DecodeResponse(t, rec, &errResp)
		require.Equal(t, "Invalid payment data", errResp.Error.Message)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, purchasesURL, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		var purchases []resdto.PurchaseListResponse
		httptest.DecodeResponse(t, rec, &purchases)
		require.Empty(t, purchases)
	})

	s.Run("listing only shows completed purchases", func() {
		t := s.T()
		token := s.registerAndLogin("pending@example.com")

		bought := dbtest.NewBookFixture()
		require.NoError(t, bought.Insert(s.DB))
		abandoned := dbtest.NewBookFixture()
		require.NoError(t, abandoned.Insert(s.DB))

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, s.cardPurchaseRequest(bought), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		userID, err := dbtest.UserIDByEmail(s.DB, "pending@example.com")
		require.NoError(t, err)
		require.NoError(t, dbtest.InsertPurchase(s.DB, userID, abandoned.ID, abandoned.FinalPrice, "pending"))

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, purchasesURL, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		var purchases []resdto.PurchaseListResponse
		httptest.DecodeResponse(t, rec, &purchases)
		require.Len(t, purchases, 1)
		require.Equal(t, bought.ID, purchases[0].BookID)
	})

	s.Run("fractional promotional price is charged without rounding", func() {
		t := s.T()
		token := s.registerAndLogin("precise@example.com")

		fixture := dbtest.NewBookFixture()
		fixture.Price = 10.99
		fixture.WithPromotion(15)
		require.NoError(t, fixture.Insert(s.DB))

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, s.cardPurchaseRequest(fixture), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created resdto.PurchaseResponse
		httptest.DecodeResponse(t, rec, &created)
		require.Equal(t, fixture.FinalPrice, created.Amount)
		require.InDelta(t, 9.3415, created.Amount, 1e-9)

		// The stored snapshot keeps the full precision on re-read.
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, purchasesURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		var fetched resdto.PurchaseResponse
		httptest.DecodeResponse(t, rec, &fetched)
		require.Equal(t, fixture.FinalPrice, fetched.Amount)
	})

	s.Run("inactive book cannot be bought", func() {
		t := s.T()
		token := s.registerAndLogin("late@example.com")

		fixture := dbtest.NewBookFixture().AsInactive()
		require.NoError(t, fixture.Insert(s.DB))

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, s.cardPurchaseRequest(fixture), token)
		require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})

	s.Run("purchase requires authentication", func() {
		t := s.T()

		fixture := dbtest.NewBookFixture()
		require.NoError(t, fixture.Insert(s.DB))

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, s.cardPurchaseRequest(fixture), "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// Concurrent submissions must collapse to exactly one stored purchase, with
// the rest observing the conflict.
func (s *purchaseSuite) TestConcurrentPurchases() {
	s.Run("exactly one of N concurrent purchases succeeds", func() {
		t := s.T()
		token := s.registerAndLogin("racer@example.com")

		fixture := dbtest.NewBookFixture()
		require.NoError(t, fixture.Insert(s.DB))
		req := s.cardPurchaseRequest(fixture)

		const workers = 8
		var created, conflicted atomic.Int32

		var g errgroup.Group
		for range workers {
			g.Go(func() error {
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, req, token)
				switch rec.Code {
				case http.StatusCreated:
					created.Add(1)
				case http.StatusConflict:
					conflicted.Add(1)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, int32(1), created.Load(), "exactly one submission must win")
		require.Equal(t, int32(workers-1), conflicted.Load())

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM purchases WHERE book_id = $1", fixture.ID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

// A later catalog price change must not rewrite history.
func (s *purchaseSuite) TestAmountImmutability() {
	s.Run("recorded amount survives a price change", func() {
		t := s.T()
		token := s.registerAndLogin("archivist@example.com")

		fixture := dbtest.NewBookFixture().WithPromotion(20)
		require.NoError(t, fixture.Insert(s.DB))

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, s.cardPurchaseRequest(fixture), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created resdto.PurchaseResponse
		httptest.DecodeResponse(t, rec, &created)
		require.Equal(t, 80.0, created.Amount)

		_, err := s.DB.Exec(t.Context(),
			"UPDATE books SET price = 500, final_price = 500, promotional = false, discount = 0 WHERE id = $1",
			fixture.ID)
		require.NoError(t, err)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, purchasesURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		var fetched resdto.PurchaseResponse
		httptest.DecodeResponse(t, rec, &fetched)
		require.Equal(t, 80.0, fetched.Amount)
	})
}

// Purchases are owner-scoped: another user's record reads as not found.
func (s *purchaseSuite) TestOwnerScoping() {
	s.Run("foreign purchase is invisible", func() {
		t := s.T()
		ownerToken := s.registerAndLogin("owner@example.com")
		otherToken := s.registerAndLogin("other@example.com")

		fixture := dbtest.NewBookFixture()
		require.NoError(t, fixture.Insert(s.DB))

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchasesURL, s.cardPurchaseRequest(fixture), ownerToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created resdto.PurchaseResponse
		httptest.DecodeResponse(t, rec, &created)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, purchasesURL+"/"+created.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, purchasesURL+"/check/"+fixture.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusOK, rec.Code)
		var check resdto.PurchaseCheckResponse
		httptest.DecodeResponse(t, rec, &check)
		require.False(t, check.Purchased)
	})
}
