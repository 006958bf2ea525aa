package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/book"
	"locallibrary/internal/domains/genre"
)

// DetailView is the view model for the genre detail page: the genre plus
// its books projected to title+summary.
type DetailView struct {
	Genre genre.Genre
	Books []book.Book
}

// DeleteView is the view model for the delete confirmation page.
type DeleteView struct {
	Genre *genre.Genre
	Books []book.Book
}

type Service interface {
	// List returns every genre sorted by name.
	List(ctx context.Context) ([]genre.Genre, error)

	// Detail fans out the genre read and the books-in-genre read; a
	// missing genre yields genre.ErrGenreNotFound.
	Detail(ctx context.Context, id primitive.ObjectID) (*DetailView, error)

	Get(ctx context.Context, id primitive.ObjectID) (*genre.Genre, error)

	// Create persists a new genre unless one with the same name already
	// exists, in which case the existing genre is returned unchanged.
	Create(ctx context.Context, f genre.Form) (*genre.Genre, error)

	Update(ctx context.Context, id primitive.ObjectID, f genre.Form) (*genre.Genre, error)

	DeleteView(ctx context.Context, id primitive.ObjectID) (*DeleteView, error)

	// Delete removes the genre unless books still reference it, in which
	// case it returns genre.ErrGenreHasBooks.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
