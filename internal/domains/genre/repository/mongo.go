package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"locallibrary/internal/domains/genre"
	"locallibrary/pkg/logger"
)

type mongoRepository struct {
	genres *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		genres: db.Collection("genres"),
	}
}

func (r *mongoRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}

	if _, err := r.genres.InsertOne(ctx, g); err != nil {
		logger.Error("genre create: database error", err)
		return nil, fmt.Errorf("insert genre: %w", err)
	}
	return g, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*genre.Genre, error) {
	var g genre.Genre
	err := r.genres.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, genre.ErrGenreNotFound
	}
	if err != nil {
		logger.Error("genre get: database error", err)
		return nil, fmt.Errorf("find genre %s: %w", id.Hex(), err)
	}
	return &g, nil
}

func (r *mongoRepository) GetByName(ctx context.Context, name string) (*genre.Genre, error) {
	filter := bson.M{"name": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}}

	var g genre.Genre
	err := r.genres.FindOne(ctx, filter).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, genre.ErrGenreNotFound
	}
	if err != nil {
		logger.Error("genre lookup by name: database error", err)
		return nil, fmt.Errorf("find genre %q: %w", name, err)
	}
	return &g, nil
}

func (r *mongoRepository) GetAll(ctx context.Context) ([]genre.Genre, error) {
	cur, err := r.genres.Find(ctx, bson.M{})
	if err != nil {
		logger.Error("genre list: database error", err)
		return nil, fmt.Errorf("find genres: %w", err)
	}

	genres := []genre.Genre{}
	if err := cur.All(ctx, &genres); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	return genres, nil
}

func (r *mongoRepository) Replace(ctx context.Context, g *genre.Genre) error {
	res, err := r.genres.ReplaceOne(ctx, bson.M{"_id": g.ID}, g)
	if err != nil {
		logger.Error("genre replace: database error", err)
		return fmt.Errorf("replace genre %s: %w", g.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return genre.ErrGenreNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.genres.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		logger.Error("genre delete: database error", err)
		return fmt.Errorf("delete genre %s: %w", id.Hex(), err)
	}
	return nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.genres.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error("genre count: database error", err)
		return 0, fmt.Errorf("count genres: %w", err)
	}
	return n, nil
}
