package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/bookinstance"
)

// Repository is the book-copy data-access contract.
type Repository interface {
	Create(ctx context.Context, i *bookinstance.BookInstance) (*bookinstance.BookInstance, error)

	// GetByID returns the raw document without resolving the book
	// reference. Returns bookinstance.ErrInstanceNotFound on a miss.
	GetByID(ctx context.Context, id primitive.ObjectID) (*bookinstance.BookInstance, error)

	// GetByIDWithBook resolves the book reference. A copy whose book no
	// longer exists cannot render and also yields ErrInstanceNotFound.
	GetByIDWithBook(ctx context.Context, id primitive.ObjectID) (*bookinstance.WithBook, error)

	// GetAllWithBooks returns every copy with its book resolved,
	// unordered. A dangling book reference surfaces as a lookup error.
	GetAllWithBooks(ctx context.Context) ([]bookinstance.WithBook, error)

	// FindByBook returns the copies of one book, unordered.
	FindByBook(ctx context.Context, bookID primitive.ObjectID) ([]bookinstance.BookInstance, error)

	Replace(ctx context.Context, i *bookinstance.BookInstance) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)

	// CountByStatus counts copies in the given status.
	CountByStatus(ctx context.Context, status bookinstance.Status) (int64, error)
}
