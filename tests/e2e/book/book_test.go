//go:build e2e

package book_test

import (
	"net/http"
	"testing"
	"time"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/tests/common/dbtest"
	"bookstore-api/tests/common/httptest"
	"bookstore-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const booksURL = "/api/books"

type bookSuite struct {
	e2e.SharedSuite
}

func TestBookSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookSuite))
}

// adminToken registers a user, promotes it and logs in again so the token
// carries the admin role.
func (s *bookSuite) adminToken(email string) string {
	t := s.T()

	registerReq := reqdto.RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Store",
		LastName:  "Admin",
	}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", registerReq, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NoError(t, dbtest.PromoteToAdmin(s.DB, email))

	loginReq := reqdto.LoginRequest{Email: email, Password: "password123"}
	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", loginReq, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loginResp resdto.LoginResponse
	httptest.DecodeResponse(t, rec, &loginResp)
	return loginResp.AccessToken
}

func createBookRequest(isbn string) reqdto.CreateBookRequest {
	return reqdto.CreateBookRequest{
		Title:       "Designing Data-Intensive Applications",
		Author:      "Martin Kleppmann",
		ISBN:        isbn,
		Publisher:   "O'Reilly",
		ReleaseDate: time.Date(2017, 3, 16, 0, 0, 0, 0, time.UTC),
		Format:      "pdf",
		Category:    "databases",
		Price:       45.0,
		EbookURL:    "https://cdn.example.com/ebooks/ddia.pdf",
	}
}

func (s *bookSuite) TestAdminCatalog() {
	s.Run("create, reprice and deactivate a book", func() {
		t := s.T()
		token := s.adminToken("catalog@example.com")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, booksURL, createBookRequest("978-1449373320"), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created resdto.BookResponse
		httptest.DecodeResponse(t, rec, &created)
		require.Equal(t, 45.0, created.FinalPrice)

		// Putting the book on promotion recomputes the final price.
		price := 50.0
		promotional := true
		discount := 10.0
		updateReq := reqdto.UpdateBookRequest{Price: &price, Promotional: &promotional, Discount: &discount}
		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, booksURL+"/"+created.ID.String(), updateReq, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var updated resdto.BookResponse
		httptest.DecodeResponse(t, rec, &updated)
		require.Equal(t, 45.0, updated.FinalPrice)
		require.Equal(t, 50.0, updated.Price)

		rec = httptest.PerformRequest(t, s.Router, http.MethodDelete, booksURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, rec.Code)

		// Deactivated books disappear from public reads.
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, booksURL+"/"+created.ID.String(), nil, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	s.Run("duplicate isbn is rejected", func() {
		t := s.T()
		token := s.adminToken("dupe@example.com")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, booksURL, createBookRequest("978-0000000001"), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, booksURL, createBookRequest("978-0000000001"), token)
		require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	})

	s.Run("non-admin cannot manage the catalog", func() {
		t := s.T()

		registerReq := reqdto.RegisterRequest{
			Email:     "reader@example.com",
			Password:  "password123",
			FirstName: "Plain",
			LastName:  "Reader",
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", registerReq, "")
		require.Equal(t, http.StatusCreated, rec.Code)

		loginReq := reqdto.LoginRequest{Email: "reader@example.com", Password: "password123"}
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", loginReq, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var loginResp resdto.LoginResponse
		httptest.DecodeResponse(t, rec, &loginResp)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, booksURL, createBookRequest("978-0000000002"), loginResp.AccessToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func (s *bookSuite) TestPublicListing() {
	s.Run("category filter and promotions endpoint", func() {
		t := s.T()

		promo := dbtest.NewBookFixture().WithPromotion(30)
		promo.Category = "databases"
		require.NoError(t, promo.Insert(s.DB))

		plain := dbtest.NewBookFixture()
		require.NoError(t, plain.Insert(s.DB))

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, booksURL+"?category=databases", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var page resdto.BookPageResponse
		httptest.DecodeResponse(t, rec, &page)
		require.Equal(t, int64(1), page.Total)
		require.Len(t, page.Books, 1)
		require.Equal(t, promo.ID, page.Books[0].ID)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, booksURL+"/promotions", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var promos []resdto.BookListResponse
		httptest.DecodeResponse(t, rec, &promos)
		require.Len(t, promos, 1)
		require.Equal(t, promo.ID, promos[0].ID)
	})
}
