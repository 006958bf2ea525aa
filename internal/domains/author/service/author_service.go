package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/domains/author"
	authorRepo "locallibrary/internal/domains/author/repository"
	"locallibrary/internal/domains/book"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/shared/utils"
)

type authorService struct {
	authors authorRepo.Repository
	books   bookRepo.Repository
}

func NewService(authors authorRepo.Repository, books bookRepo.Repository) Service {
	return &authorService{authors: authors, books: books}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	authors, err := s.authors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	utils.SortByKey(authors, func(a author.Author) string { return a.FamilyName })
	return authors, nil
}

func (s *authorService) Detail(ctx context.Context, id primitive.ObjectID) (*DetailView, error) {
	var (
		a     *author.Author
		books []book.Book
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = s.authors.GetByID(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.FindByAuthor(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DetailView{Author: *a, Books: books}, nil
}

func (s *authorService) Get(ctx context.Context, id primitive.ObjectID) (*author.Author, error) {
	return s.authors.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, f author.Form) (*author.Author, error) {
	a, err := f.ToEntity(primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	return s.authors.Create(ctx, a)
}

func (s *authorService) Update(ctx context.Context, id primitive.ObjectID, f author.Form) (*author.Author, error) {
	a, err := f.ToEntity(id)
	if err != nil {
		return nil, err
	}
	if err := s.authors.Replace(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) DeleteView(ctx context.Context, id primitive.ObjectID) (*DeleteView, error) {
	var (
		target *author.Author
		books  []book.Book
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.authors.GetByID(ctx, id)
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil
		}
		target = a
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.FindByAuthor(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DeleteView{Author: target, Books: books}, nil
}

func (s *authorService) Delete(ctx context.Context, id primitive.ObjectID) error {
	books, err := s.books.FindByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return author.ErrAuthorHasBooks
	}
	return s.authors.Delete(ctx, id)
}
