package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/book"
	"locallibrary/internal/domains/bookinstance"
)

// FormData carries the selectable books for the copy form, projected to
// identity+title and sorted by title.
type FormData struct {
	Books []book.Book
}

// Service aggregates the reads and guards the mutations for copy pages.
type Service interface {
	// List returns every copy with its book resolved. Intentionally
	// unsorted, unlike the book list.
	List(ctx context.Context) ([]bookinstance.WithBook, error)

	// Detail resolves one copy with its book; a missing copy (or a copy
	// whose book is gone) yields bookinstance.ErrInstanceNotFound.
	Detail(ctx context.Context, id primitive.ObjectID) (*bookinstance.WithBook, error)

	// FormData fetches the book options for the create form.
	FormData(ctx context.Context) (*FormData, error)

	// UpdateFormData additionally fetches the copy being edited; a
	// missing copy yields ErrInstanceNotFound.
	UpdateFormData(ctx context.Context, id primitive.ObjectID) (*bookinstance.BookInstance, *FormData, error)

	Create(ctx context.Context, f bookinstance.Form) (*bookinstance.BookInstance, error)
	Update(ctx context.Context, id primitive.ObjectID, f bookinstance.Form) (*bookinstance.BookInstance, error)

	// DeleteView returns the copy for the confirmation page; a missing
	// copy is reported as nil, not an error.
	DeleteView(ctx context.Context, id primitive.ObjectID) (*bookinstance.WithBook, error)

	Delete(ctx context.Context, id primitive.ObjectID) error
}
