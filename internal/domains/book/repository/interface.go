package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/book"
)

// Repository is the book data-access contract. The *WithAuthors/Detail
// reads perform the reference-resolution joins; everything else works on
// the raw documents.
type Repository interface {
	Create(ctx context.Context, b *book.Book) (*book.Book, error)

	// GetByID returns the raw document without resolving references.
	// Returns book.ErrBookNotFound when no document matches.
	GetByID(ctx context.Context, id primitive.ObjectID) (*book.Book, error)

	// GetDetail returns the book with author and genre references
	// resolved. A missing book yields book.ErrBookNotFound; a dangling
	// author reference surfaces as a lookup error.
	GetDetail(ctx context.Context, id primitive.ObjectID) (*book.Detail, error)

	// GetAllWithAuthors projects every book to title+author and resolves
	// each author reference.
	GetAllWithAuthors(ctx context.Context) ([]book.WithAuthor, error)

	// GetTitles projects every book to identity+title, for populating
	// the copy form's book selector.
	GetTitles(ctx context.Context) ([]book.Book, error)

	// FindByAuthor projects the author's books to title+summary.
	FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]book.Book, error)

	// FindByGenre projects the genre's books to title+summary.
	FindByGenre(ctx context.Context, genreID primitive.ObjectID) ([]book.Book, error)

	Replace(ctx context.Context, b *book.Book) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
