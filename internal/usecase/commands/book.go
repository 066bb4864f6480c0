package commands

import (
	"context"

	"bookstore-api/internal/domain/book"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrISBNTaken      = errs.New("isbn is already registered")
	ErrBookValidation = errs.New("book validation failed")
)

type BookWriteRepository interface {
	Create(ctx context.Context, b *book.Book) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error)
	Update(ctx context.Context, b *book.Book) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type BookCommands interface {
	CreateBook(ctx context.Context, req reqdto.CreateBookRequest) (*queries.BookView, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookRequest) (*queries.BookView, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

type bookCommandsImpl struct {
	bookRepo    BookWriteRepository
	bookQueries queries.BookQueries
}

func NewBookCommands(bookRepo BookWriteRepository, bookQueries queries.BookQueries) BookCommands {
	return &bookCommandsImpl{
		bookRepo:    bookRepo,
		bookQueries: bookQueries,
	}
}

func (c *bookCommandsImpl) CreateBook(ctx context.Context, req reqdto.CreateBookRequest) (*queries.BookView, error) {
	bookEntity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrBookValidation)
	}

	bookID, err := c.bookRepo.Create(ctx, bookEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrISBNTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.bookQueries.GetBook(ctx, bookID)
}

func (c *bookCommandsImpl) UpdateBook(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookRequest) (*queries.BookView, error) {
	bookEntity, err := c.bookRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := req.ApplyTo(bookEntity); err != nil {
		return nil, errs.Mark(err, ErrBookValidation)
	}

	if err := c.bookRepo.Update(ctx, bookEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrISBNTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.bookQueries.GetBook(ctx, id)
}

func (c *bookCommandsImpl) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if err := c.bookRepo.Deactivate(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}
