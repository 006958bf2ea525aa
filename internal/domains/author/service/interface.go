package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/author"
	"locallibrary/internal/domains/book"
)

// DetailView is the view model for the author detail page: the author
// plus their books projected to title+summary.
type DetailView struct {
	Author author.Author
	Books  []book.Book
}

// DeleteView is the view model for the delete confirmation page. Author
// is nil when the target no longer exists; Books block deletion.
type DeleteView struct {
	Author *author.Author
	Books  []book.Book
}

type Service interface {
	// List returns every author sorted by family name.
	List(ctx context.Context) ([]author.Author, error)

	// Detail fans out the author read and the books-by-author read; a
	// missing author yields author.ErrAuthorNotFound.
	Detail(ctx context.Context, id primitive.ObjectID) (*DetailView, error)

	// Get fetches one author, for prefilling the update form.
	Get(ctx context.Context, id primitive.ObjectID) (*author.Author, error)

	Create(ctx context.Context, f author.Form) (*author.Author, error)
	Update(ctx context.Context, id primitive.ObjectID, f author.Form) (*author.Author, error)

	// DeleteView fans out the author and blocking-books reads; a missing
	// author is reported with a nil Author, not an error.
	DeleteView(ctx context.Context, id primitive.ObjectID) (*DeleteView, error)

	// Delete removes the author unless books still reference them, in
	// which case it returns author.ErrAuthorHasBooks.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
