package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/domains/book"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/genre"
	genreRepo "locallibrary/internal/domains/genre/repository"
	"locallibrary/internal/shared/utils"
)

type genreService struct {
	genres genreRepo.Repository
	books  bookRepo.Repository
}

func NewService(genres genreRepo.Repository, books bookRepo.Repository) Service {
	return &genreService{genres: genres, books: books}
}

func (s *genreService) List(ctx context.Context) ([]genre.Genre, error) {
	genres, err := s.genres.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	utils.SortByKey(genres, func(g genre.Genre) string { return g.Name })
	return genres, nil
}

func (s *genreService) Detail(ctx context.Context, id primitive.ObjectID) (*DetailView, error) {
	var (
		g     *genre.Genre
		books []book.Book
	)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		g, err = s.genres.GetByID(ctx, id)
		return err
	})
	grp.Go(func() error {
		var err error
		books, err = s.books.FindByGenre(ctx, id)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return &DetailView{Genre: *g, Books: books}, nil
}

func (s *genreService) Get(ctx context.Context, id primitive.ObjectID) (*genre.Genre, error) {
	return s.genres.GetByID(ctx, id)
}

func (s *genreService) Create(ctx context.Context, f genre.Form) (*genre.Genre, error) {
	// A genre with the same name (case-insensitive) already satisfies
	// the submission; reuse it instead of inserting a duplicate.
	existing, err := s.genres.GetByName(ctx, f.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, genre.ErrGenreNotFound) {
		return nil, err
	}

	return s.genres.Create(ctx, f.ToEntity(primitive.NilObjectID))
}

func (s *genreService) Update(ctx context.Context, id primitive.ObjectID, f genre.Form) (*genre.Genre, error) {
	g := f.ToEntity(id)
	if err := s.genres.Replace(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *genreService) DeleteView(ctx context.Context, id primitive.ObjectID) (*DeleteView, error) {
	var (
		target *genre.Genre
		books  []book.Book
	)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		g, err := s.genres.GetByID(ctx, id)
		if errors.Is(err, genre.ErrGenreNotFound) {
			return nil
		}
		target = g
		return err
	})
	grp.Go(func() error {
		var err error
		books, err = s.books.FindByGenre(ctx, id)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return &DeleteView{Genre: target, Books: books}, nil
}

func (s *genreService) Delete(ctx context.Context, id primitive.ObjectID) error {
	books, err := s.books.FindByGenre(ctx, id)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return genre.ErrGenreHasBooks
	}
	return s.genres.Delete(ctx, id)
}
