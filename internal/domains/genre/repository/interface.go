package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/genre"
)

// Repository is the genre data-access contract.
type Repository interface {
	Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error)

	// GetByID returns genre.ErrGenreNotFound when no document matches.
	GetByID(ctx context.Context, id primitive.ObjectID) (*genre.Genre, error)

	// GetByName performs a case-insensitive exact-name lookup, used for
	// the duplicate check on create. Returns ErrGenreNotFound on a miss.
	GetByName(ctx context.Context, name string) (*genre.Genre, error)

	GetAll(ctx context.Context) ([]genre.Genre, error)
	Replace(ctx context.Context, g *genre.Genre) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
