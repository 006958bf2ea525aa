package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"locallibrary/internal/domains/book"
	"locallibrary/internal/domains/bookinstance"
	"locallibrary/pkg/logger"
)

type mongoRepository struct {
	instances *mongo.Collection
	books     *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		instances: db.Collection("bookinstances"),
		books:     db.Collection("books"),
	}
}

func (r *mongoRepository) Create(ctx context.Context, i *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	if i.ID.IsZero() {
		i.ID = primitive.NewObjectID()
	}

	if _, err := r.instances.InsertOne(ctx, i); err != nil {
		logger.Error("bookinstance create: database error", err)
		return nil, fmt.Errorf("insert book copy: %w", err)
	}
	return i, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*bookinstance.BookInstance, error) {
	var i bookinstance.BookInstance
	err := r.instances.FindOne(ctx, bson.M{"_id": id}).Decode(&i)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, bookinstance.ErrInstanceNotFound
	}
	if err != nil {
		logger.Error("bookinstance get: database error", err)
		return nil, fmt.Errorf("find book copy %s: %w", id.Hex(), err)
	}
	return &i, nil
}

func (r *mongoRepository) GetByIDWithBook(ctx context.Context, id primitive.ObjectID) (*bookinstance.WithBook, error) {
	i, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var b book.Book
	err = r.books.FindOne(ctx, bson.M{"_id": i.BookID}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// A copy without its book cannot render meaningfully.
		return nil, bookinstance.ErrInstanceNotFound
	}
	if err != nil {
		logger.Error("bookinstance detail: book lookup error", err)
		return nil, fmt.Errorf("resolve book %s: %w", i.BookID.Hex(), err)
	}

	return &bookinstance.WithBook{BookInstance: *i, Book: b}, nil
}

func (r *mongoRepository) GetAllWithBooks(ctx context.Context) ([]bookinstance.WithBook, error) {
	cur, err := r.instances.Find(ctx, bson.M{})
	if err != nil {
		logger.Error("bookinstance list: database error", err)
		return nil, fmt.Errorf("find book copies: %w", err)
	}

	instances := []bookinstance.BookInstance{}
	if err := cur.All(ctx, &instances); err != nil {
		return nil, fmt.Errorf("decode book copies: %w", err)
	}

	booksByID, err := r.resolveBooks(ctx, instances)
	if err != nil {
		return nil, err
	}

	list := make([]bookinstance.WithBook, 0, len(instances))
	for _, i := range instances {
		b, ok := booksByID[i.BookID]
		if !ok {
			return nil, fmt.Errorf("book copy %s: book %s: %w", i.ID.Hex(), i.BookID.Hex(), book.ErrBookNotFound)
		}
		list = append(list, bookinstance.WithBook{BookInstance: i, Book: b})
	}
	return list, nil
}

// resolveBooks batches the book join for a page of copies.
func (r *mongoRepository) resolveBooks(ctx context.Context, instances []bookinstance.BookInstance) (map[primitive.ObjectID]book.Book, error) {
	seen := map[primitive.ObjectID]struct{}{}
	ids := []primitive.ObjectID{}
	for _, i := range instances {
		if _, ok := seen[i.BookID]; ok {
			continue
		}
		seen[i.BookID] = struct{}{}
		ids = append(ids, i.BookID)
	}
	if len(ids) == 0 {
		return map[primitive.ObjectID]book.Book{}, nil
	}

	cur, err := r.books.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.Error("bookinstance list: book lookup error", err)
		return nil, fmt.Errorf("resolve books: %w", err)
	}

	books := []book.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}

	byID := make(map[primitive.ObjectID]book.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	return byID, nil
}

func (r *mongoRepository) FindByBook(ctx context.Context, bookID primitive.ObjectID) ([]bookinstance.BookInstance, error) {
	cur, err := r.instances.Find(ctx, bson.M{"book": bookID})
	if err != nil {
		logger.Error("bookinstance find: database error", err)
		return nil, fmt.Errorf("find copies of book %s: %w", bookID.Hex(), err)
	}

	instances := []bookinstance.BookInstance{}
	if err := cur.All(ctx, &instances); err != nil {
		return nil, fmt.Errorf("decode book copies: %w", err)
	}
	return instances, nil
}

func (r *mongoRepository) Replace(ctx context.Context, i *bookinstance.BookInstance) error {
	res, err := r.instances.ReplaceOne(ctx, bson.M{"_id": i.ID}, i)
	if err != nil {
		logger.Error("bookinstance replace: database error", err)
		return fmt.Errorf("replace book copy %s: %w", i.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return bookinstance.ErrInstanceNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.instances.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		logger.Error("bookinstance delete: database error", err)
		return fmt.Errorf("delete book copy %s: %w", id.Hex(), err)
	}
	return nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.instances.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error("bookinstance count: database error", err)
		return 0, fmt.Errorf("count book copies: %w", err)
	}
	return n, nil
}

func (r *mongoRepository) CountByStatus(ctx context.Context, status bookinstance.Status) (int64, error) {
	n, err := r.instances.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		logger.Error("bookinstance count by status: database error", err)
		return 0, fmt.Errorf("count book copies by status: %w", err)
	}
	return n, nil
}
