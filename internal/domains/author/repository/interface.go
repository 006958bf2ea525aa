package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/author"
)

// Repository is the author data-access contract.
type Repository interface {
	// Create inserts the author, assigning a fresh identity when the
	// entity carries none.
	Create(ctx context.Context, a *author.Author) (*author.Author, error)

	// GetByID returns author.ErrAuthorNotFound when no document matches.
	GetByID(ctx context.Context, id primitive.ObjectID) (*author.Author, error)

	// GetAll returns every author, unordered. Empty result is not an error.
	GetAll(ctx context.Context) ([]author.Author, error)

	// Replace overwrites the document with the same identity.
	Replace(ctx context.Context, a *author.Author) error

	// Delete removes the author by identity.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Count returns the total number of authors.
	Count(ctx context.Context) (int64, error)
}
