package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"locallibrary/internal/domains/author"
	"locallibrary/internal/domains/book"
	"locallibrary/internal/domains/genre"
	"locallibrary/pkg/logger"
)

type mongoRepository struct {
	books   *mongo.Collection
	authors *mongo.Collection
	genres  *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		books:   db.Collection("books"),
		authors: db.Collection("authors"),
		genres:  db.Collection("genres"),
	}
}

func (r *mongoRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.GenreIDs == nil {
		b.GenreIDs = []primitive.ObjectID{}
	}

	if _, err := r.books.InsertOne(ctx, b); err != nil {
		logger.Error("book create: database error", err)
		return nil, fmt.Errorf("insert book: %w", err)
	}
	return b, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*book.Book, error) {
	var b book.Book
	err := r.books.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		logger.Error("book get: database error", err)
		return nil, fmt.Errorf("find book %s: %w", id.Hex(), err)
	}
	return &b, nil
}

// GetDetail is the "populate author and genre" read: one book fetch, then
// one fetch per referenced collection.
func (r *mongoRepository) GetDetail(ctx context.Context, id primitive.ObjectID) (*book.Detail, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var a author.Author
	err = r.authors.FindOne(ctx, bson.M{"_id": b.AuthorID}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// A dangling author reference is a data fault, not a missing page.
		return nil, fmt.Errorf("book %s: author %s: %w", id.Hex(), b.AuthorID.Hex(), author.ErrAuthorNotFound)
	}
	if err != nil {
		logger.Error("book detail: author lookup error", err)
		return nil, fmt.Errorf("resolve author %s: %w", b.AuthorID.Hex(), err)
	}

	genres := []genre.Genre{}
	if len(b.GenreIDs) > 0 {
		cur, err := r.genres.Find(ctx, bson.M{"_id": bson.M{"$in": b.GenreIDs}})
		if err != nil {
			logger.Error("book detail: genre lookup error", err)
			return nil, fmt.Errorf("resolve genres: %w", err)
		}
		if err := cur.All(ctx, &genres); err != nil {
			return nil, fmt.Errorf("decode genres: %w", err)
		}
	}

	return &book.Detail{Book: *b, Author: a, Genres: genres}, nil
}

func (r *mongoRepository) GetAllWithAuthors(ctx context.Context) ([]book.WithAuthor, error) {
	opts := options.Find().SetProjection(bson.M{"title": 1, "author": 1})
	cur, err := r.books.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("book list: database error", err)
		return nil, fmt.Errorf("find books: %w", err)
	}

	books := []book.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}

	authorsByID, err := r.resolveAuthors(ctx, books)
	if err != nil {
		return nil, err
	}

	list := make([]book.WithAuthor, 0, len(books))
	for _, b := range books {
		a, ok := authorsByID[b.AuthorID]
		if !ok {
			return nil, fmt.Errorf("book %s: author %s: %w", b.ID.Hex(), b.AuthorID.Hex(), author.ErrAuthorNotFound)
		}
		list = append(list, book.WithAuthor{Book: b, Author: a})
	}
	return list, nil
}

// resolveAuthors batches the author join for a page of books.
func (r *mongoRepository) resolveAuthors(ctx context.Context, books []book.Book) (map[primitive.ObjectID]author.Author, error) {
	seen := map[primitive.ObjectID]struct{}{}
	ids := []primitive.ObjectID{}
	for _, b := range books {
		if _, ok := seen[b.AuthorID]; ok {
			continue
		}
		seen[b.AuthorID] = struct{}{}
		ids = append(ids, b.AuthorID)
	}
	if len(ids) == 0 {
		return map[primitive.ObjectID]author.Author{}, nil
	}

	cur, err := r.authors.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.Error("book list: author lookup error", err)
		return nil, fmt.Errorf("resolve authors: %w", err)
	}

	authors := []author.Author{}
	if err := cur.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}

	byID := make(map[primitive.ObjectID]author.Author, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}
	return byID, nil
}

func (r *mongoRepository) GetTitles(ctx context.Context) ([]book.Book, error) {
	opts := options.Find().SetProjection(bson.M{"title": 1})
	cur, err := r.books.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("book titles: database error", err)
		return nil, fmt.Errorf("find book titles: %w", err)
	}

	books := []book.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode book titles: %w", err)
	}
	return books, nil
}

func (r *mongoRepository) FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]book.Book, error) {
	return r.findProjected(ctx, bson.M{"author": authorID})
}

func (r *mongoRepository) FindByGenre(ctx context.Context, genreID primitive.ObjectID) ([]book.Book, error) {
	return r.findProjected(ctx, bson.M{"genre": genreID})
}

func (r *mongoRepository) findProjected(ctx context.Context, filter bson.M) ([]book.Book, error) {
	opts := options.Find().SetProjection(bson.M{"title": 1, "summary": 1})
	cur, err := r.books.Find(ctx, filter, opts)
	if err != nil {
		logger.Error("book find: database error", err)
		return nil, fmt.Errorf("find books: %w", err)
	}

	books := []book.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}

func (r *mongoRepository) Replace(ctx context.Context, b *book.Book) error {
	if b.GenreIDs == nil {
		b.GenreIDs = []primitive.ObjectID{}
	}

	res, err := r.books.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		logger.Error("book replace: database error", err)
		return fmt.Errorf("replace book %s: %w", b.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.books.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		logger.Error("book delete: database error", err)
		return fmt.Errorf("delete book %s: %w", id.Hex(), err)
	}
	return nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.books.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error("book count: database error", err)
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}
