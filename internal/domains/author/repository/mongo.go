package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"locallibrary/internal/domains/author"
	"locallibrary/pkg/logger"
)

type mongoRepository struct {
	authors *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		authors: db.Collection("authors"),
	}
}

func (r *mongoRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}

	if _, err := r.authors.InsertOne(ctx, a); err != nil {
		logger.Error("author create: database error", err)
		return nil, fmt.Errorf("insert author: %w", err)
	}
	return a, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*author.Author, error) {
	var a author.Author
	err := r.authors.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		logger.Error("author get: database error", err)
		return nil, fmt.Errorf("find author %s: %w", id.Hex(), err)
	}
	return &a, nil
}

func (r *mongoRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	cur, err := r.authors.Find(ctx, bson.M{})
	if err != nil {
		logger.Error("author list: database error", err)
		return nil, fmt.Errorf("find authors: %w", err)
	}

	authors := []author.Author{}
	if err := cur.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	return authors, nil
}

func (r *mongoRepository) Replace(ctx context.Context, a *author.Author) error {
	res, err := r.authors.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		logger.Error("author replace: database error", err)
		return fmt.Errorf("replace author %s: %w", a.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.authors.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		logger.Error("author delete: database error", err)
		return fmt.Errorf("delete author %s: %w", id.Hex(), err)
	}
	return nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.authors.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error("author count: database error", err)
		return 0, fmt.Errorf("count authors: %w", err)
	}
	return n, nil
}
