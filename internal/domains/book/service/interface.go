package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/author"
	"locallibrary/internal/domains/book"
	"locallibrary/internal/domains/bookinstance"
	"locallibrary/internal/domains/genre"
)

// DetailView is the view model for the book detail page.
type DetailView struct {
	Book       book.Detail
	GenreCount int
	Instances  []bookinstance.BookInstance
}

// FormData carries the selectable options for the book form: every
// author (sorted by family name) and every genre.
type FormData struct {
	Authors []author.Author
	Genres  []genre.Genre
}

// DeleteView is the view model for the delete confirmation page. Book is
// nil when the target no longer exists; Instances are the copies that
// block deletion.
type DeleteView struct {
	Book      *book.Book
	Instances []bookinstance.BookInstance
}

// Service aggregates the reads and guards the mutations for book pages.
type Service interface {
	// List returns every book with its author resolved, sorted by title.
	List(ctx context.Context) ([]book.WithAuthor, error)

	// Detail fans out the book read and the copies read; a missing book
	// yields book.ErrBookNotFound.
	Detail(ctx context.Context, id primitive.ObjectID) (*DetailView, error)

	// FormData fans out the author and genre reads for the create form.
	FormData(ctx context.Context) (*FormData, error)

	// UpdateFormData additionally resolves the book being edited; a
	// missing book yields book.ErrBookNotFound.
	UpdateFormData(ctx context.Context, id primitive.ObjectID) (*book.Detail, *FormData, error)

	// Create persists a new book built from a validated form.
	Create(ctx context.Context, f book.Form) (*book.Book, error)

	// Update replaces the book with the given identity; the identity is
	// reused, never reallocated.
	Update(ctx context.Context, id primitive.ObjectID, f book.Form) (*book.Book, error)

	// DeleteView fans out the book and blocking-copies reads. A missing
	// book is reported with a nil Book, not an error.
	DeleteView(ctx context.Context, id primitive.ObjectID) (*DeleteView, error)

	// Delete removes the book unless copies still reference it, in which
	// case it returns book.ErrBookHasInstances.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
